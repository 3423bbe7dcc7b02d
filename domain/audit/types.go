package audit

import "strings"

// Status is the traffic-light rating assigned to a single ingredient or claim
type Status string

const (
	StatusRed    Status = "RED"
	StatusYellow Status = "YELLOW"
	StatusGreen  Status = "GREEN"
)

// NormalizeStatus maps free-form model output onto the three allowed values.
// Anything unrecognized defaults to YELLOW (caution), never to an error.
func NormalizeStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "RED":
		return StatusRed
	case "GREEN":
		return StatusGreen
	case "YELLOW":
		return StatusYellow
	default:
		return StatusYellow
	}
}

// Score returns the numeric contribution of a status to the scorecard
func (s Status) Score() float64 {
	switch s {
	case StatusGreen:
		return 100
	case StatusRed:
		return 0
	default:
		return 50
	}
}

// AgentVerdict is one classifier agent's opinion on one item
type AgentVerdict struct {
	Status      Status `json:"status"`
	Explanation string `json:"explanation"`
}

// FinalVerdict is the resolved, report-ready judgment for one item.
// Consensus is true when the agents agreed on their own; false means the
// arbiter had to rule.
type FinalVerdict struct {
	Item        string `json:"item"`
	Status      Status `json:"status"`
	Explanation string `json:"explanation"`
	Consensus   bool   `json:"consensus"`
}

// ExtractedLabel is the structured output of the vision/extraction step.
// Barcode only arrives through manual entry; label photos rarely carry a
// machine-readable code the vision model can transcribe.
type ExtractedLabel struct {
	Category    string   `json:"product_category"`
	Ingredients []string `json:"ingredients"`
	Claims      []string `json:"claims"`
	OriginInfo  string   `json:"origin_info"`
	Barcode     string   `json:"barcode,omitempty"`
}

// Alternative is a better-rated substitute product suggestion
type Alternative struct {
	Name    string `json:"product_name"`
	Summary string `json:"better_ingredients_summary"`
}

// Scorecard holds the weighted sub-scores for one audit.
// Environment carries 40% of the total, Social and Governance 30% each.
type Scorecard struct {
	Environment int      `json:"environment_score"`
	Social      int      `json:"social_score"`
	Governance  int      `json:"governance_score"`
	Total       int      `json:"final_total_score"`
	Notes       []string `json:"breakdown_notes"`
}

// LogisticsReport is the food-miles assessment for a product's origin
type LogisticsReport struct {
	Origin      string `json:"origin_identified"`
	ScoreAdjust int    `json:"distance_score_adj"`
	IsLocal     bool   `json:"is_local"`
	Remark      string `json:"roast_line"`
}

// UnknownLogistics is the neutral result used when no origin text is available
// or the logistics analyzer is unreachable
func UnknownLogistics() LogisticsReport {
	return LogisticsReport{Origin: "Unknown", ScoreAdjust: 0, IsLocal: false, Remark: "Origin is a mystery."}
}

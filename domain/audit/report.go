package audit

import "time"

// NothingToAnalyze is the fixed narrative for an empty item set. Empty input is
// a terminal state, not an error: no classifier is ever invoked for it.
const NothingToAnalyze = "No items to analyze."

// SummaryUnavailable is the fallback narrative when the summarizer is unreachable
const SummaryUnavailable = "Summary unavailable."

// AuditReport is the complete output of one audit request.
// Immutable after construction; the core never mutates a returned report.
type AuditReport struct {
	ID           string          `json:"id"`
	Category     Category        `json:"category"`
	Verdicts     []FinalVerdict  `json:"verdicts"`
	Scorecard    Scorecard       `json:"scorecard"`
	Logistics    LogisticsReport `json:"logistics"`
	Alternatives []Alternative   `json:"alternatives"`
	Summary      string          `json:"summary"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EmptyReport builds the terminal report for label data with no auditable items
func EmptyReport(id string, category Category) AuditReport {
	return AuditReport{
		ID:           id,
		Category:     category,
		Verdicts:     []FinalVerdict{},
		Scorecard:    Scorecard{Notes: []string{}},
		Logistics:    UnknownLogistics(),
		Alternatives: []Alternative{},
		Summary:      NothingToAnalyze,
		CreatedAt:    time.Now().UTC(),
	}
}

// ConsensusRate reports the fraction of verdicts the agents settled without
// arbitration. Returns 1.0 for an empty report.
func (r AuditReport) ConsensusRate() float64 {
	if len(r.Verdicts) == 0 {
		return 1.0
	}
	agreed := 0
	for _, v := range r.Verdicts {
		if v.Consensus {
			agreed++
		}
	}
	return float64(agreed) / float64(len(r.Verdicts))
}

// CountByStatus tallies verdicts per status
func (r AuditReport) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 3)
	for _, v := range r.Verdicts {
		counts[v.Status]++
	}
	return counts
}

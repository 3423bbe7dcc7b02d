package consensus

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"ecoscan/domain/audit"
)

// Sub-score weights: environment carries 40% of the total, social and
// governance 30% each.
const (
	weightEnvironment = 0.4
	weightSocial      = 0.3
	weightGovernance  = 0.3
)

// bannedAdditivePenalty is docked from the total per registry match
const bannedAdditivePenalty = 15

// Aggregate reduces the resolved verdict list into the report scorecard.
// It is a pure function of the verdicts plus the logistics and banned-additive
// adjustments; the advisory notes come from the LLM scorecard call but every
// number is recomputed here so the scorecard cannot contradict the per-item
// report.
func Aggregate(verdicts []audit.FinalVerdict, advisory *audit.Scorecard, logistics audit.LogisticsReport, banned []string) audit.Scorecard {
	itemScores := make([]float64, 0, len(verdicts))
	for _, v := range verdicts {
		itemScores = append(itemScores, v.Status.Score())
	}

	base := 50.0 // neutral when nothing was scored
	if len(itemScores) > 0 {
		if mean, err := stats.Mean(itemScores); err == nil {
			base = mean
		}
	}

	card := audit.Scorecard{
		Environment: int(base),
		Social:      int(base),
		Governance:  int(base),
		Notes:       []string{},
	}

	// The advisory scorecard may shade the social/governance axes the verdict
	// list cannot see (labor claims, certification governance); its numbers
	// are blended per-axis, never trusted for the total.
	if advisory != nil {
		card.Social = blend(base, advisory.Social)
		card.Governance = blend(base, advisory.Governance)
		card.Notes = append(card.Notes, advisory.Notes...)
	}

	total := weightEnvironment*float64(card.Environment) +
		weightSocial*float64(card.Social) +
		weightGovernance*float64(card.Governance)
	total += float64(logistics.ScoreAdjust)
	total -= float64(bannedAdditivePenalty * len(banned))

	card.Total = clampScore(int(total))
	card.Environment = clampScore(card.Environment)
	card.Social = clampScore(card.Social)
	card.Governance = clampScore(card.Governance)

	if logistics.ScoreAdjust != 0 {
		card.Notes = append(card.Notes, fmt.Sprintf("Origin %s: %+d food-miles adjustment.", logistics.Origin, logistics.ScoreAdjust))
	}
	for _, additive := range banned {
		card.Notes = append(card.Notes, fmt.Sprintf("Banned additive %s: -%d.", additive, bannedAdditivePenalty))
	}

	return card
}

// blend averages the verdict-derived baseline with an advisory axis score
func blend(base float64, advisory int) int {
	if advisory <= 0 {
		return int(base)
	}
	return int((base + float64(advisory)) / 2)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

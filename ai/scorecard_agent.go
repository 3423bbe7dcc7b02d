package ai

import (
	"context"
	"strings"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// ScorecardAgent asks the judge model for a category-aware ESG scorecard.
// Only its notes survive into the report; totals are recomputed downstream
// from the consensus verdicts so the two can never disagree.
type ScorecardAgent struct {
	client *StructuredClient[audit.Scorecard]
}

func NewScorecardAgent(llmClient ports.LLMClient, model string, maxTokens int) *ScorecardAgent {
	return &ScorecardAgent{
		client: NewStructuredClient[audit.Scorecard](llmClient, model, 0, maxTokens),
	}
}

func (a *ScorecardAgent) Score(ctx context.Context, category audit.Category, label audit.ExtractedLabel) (*audit.Scorecard, error) {
	prompt := RenderPrompt(ScorerPrompt, map[string]string{
		"CATEGORY":    string(category),
		"INGREDIENTS": strings.Join(label.Ingredients, ", "),
		"CLAIMS":      strings.Join(label.Claims, ", "),
		"ORIGIN":      label.OriginInfo,
	})

	card, err := a.client.GetJSONResponse(ctx, "", prompt)
	if err != nil {
		return nil, errors.ScoringError(err)
	}
	return card, nil
}

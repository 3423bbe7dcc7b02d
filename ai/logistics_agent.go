package ai

import (
	"context"
	"strings"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// LogisticsAgent estimates food-miles impact from a product's origin text
type LogisticsAgent struct {
	client *StructuredClient[audit.LogisticsReport]
}

func NewLogisticsAgent(llmClient ports.LLMClient, model string, maxTokens int) *LogisticsAgent {
	return &LogisticsAgent{
		client: NewStructuredClient[audit.LogisticsReport](llmClient, model, 0, maxTokens),
	}
}

func (a *LogisticsAgent) AnalyzeOrigin(ctx context.Context, originText string) (*audit.LogisticsReport, error) {
	// No origin text is a defined neutral outcome, not a model call
	trimmed := strings.TrimSpace(originText)
	if trimmed == "" || strings.EqualFold(trimmed, "unknown") {
		report := audit.UnknownLogistics()
		return &report, nil
	}

	report, err := a.client.GetJSONResponse(ctx, LogisticsPrompt, "Product Text: "+trimmed)
	if err != nil {
		return nil, errors.LogisticsError(err)
	}

	// Keep the adjustment inside the band the prompt promises
	if report.ScoreAdjust > 10 {
		report.ScoreAdjust = 10
	}
	if report.ScoreAdjust < -15 {
		report.ScoreAdjust = -15
	}
	return report, nil
}

package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// SummarizerAgent writes the one-line narrative verdict. It runs at a raised
// temperature; everything else in the pipeline runs at zero.
type SummarizerAgent struct {
	client      ports.LLMClient
	model       string
	temperature float64
	maxTokens   int
}

func NewSummarizerAgent(llmClient ports.LLMClient, model string, maxTokens int) *SummarizerAgent {
	return &SummarizerAgent{
		client:      llmClient,
		model:       model,
		temperature: 0.8,
		maxTokens:   maxTokens,
	}
}

func (a *SummarizerAgent) Summarize(ctx context.Context, verdicts []audit.FinalVerdict, scorecard audit.Scorecard, logistics audit.LogisticsReport, category audit.Category, language string) (string, error) {
	logisticsStatus := "Imported"
	if logistics.IsLocal {
		logisticsStatus = "Local"
	}

	system := RenderPrompt(SummaryPrompt, map[string]string{
		"SCORE":            strconv.Itoa(scorecard.Total),
		"CATEGORY":         string(category),
		"NOTES":            strings.Join(scorecard.Notes, "; "),
		"MILES":            logistics.Remark,
		"LOGISTICS_STATUS": logisticsStatus,
		"LANGUAGE":         audit.NormalizeLanguage(language),
	})

	lines := make([]string, 0, len(verdicts))
	for _, v := range verdicts {
		lines = append(lines, fmt.Sprintf("%s: %s", v.Item, v.Status))
	}

	content, err := a.client.ChatCompletion(ctx, ports.ChatRequest{
		Model:       a.model,
		System:      system,
		Prompt:      "Data: [" + strings.Join(lines, ", ") + "]",
		Temperature: a.temperature,
		MaxTokens:   a.maxTokens,
	})
	if err != nil {
		return "", errors.SummaryError(err)
	}
	return strings.TrimSpace(content), nil
}

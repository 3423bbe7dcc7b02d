package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"ecoscan/domain/audit"
	"ecoscan/ports"
)

// LabelExtractor reads a label photo with a vision-capable model and returns
// structured label data. This is the only pipeline step whose failure is
// surfaced to the caller as a hard error.
type LabelExtractor struct {
	client *StructuredClient[audit.ExtractedLabel]
}

func NewLabelExtractor(llmClient ports.LLMClient, model string, maxTokens int) *LabelExtractor {
	return &LabelExtractor{
		client: NewStructuredClient[audit.ExtractedLabel](llmClient, model, 0, maxTokens),
	}
}

func (e *LabelExtractor) ExtractLabel(ctx context.Context, imageData []byte) (*audit.ExtractedLabel, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	encoded := base64.StdEncoding.EncodeToString(imageData)
	label, err := e.client.GetJSONResponseWithImage(ctx, VisionPrompt, encoded)
	if err != nil {
		return nil, fmt.Errorf("vision extraction failed: %w", err)
	}

	if label.Ingredients == nil {
		label.Ingredients = []string{}
	}
	if label.Claims == nil {
		label.Claims = []string{}
	}
	if label.OriginInfo == "" {
		label.OriginInfo = "Unknown"
	}

	log.Printf("[LabelExtractor] extracted %d ingredients, %d claims, origin=%q",
		len(label.Ingredients), len(label.Claims), label.OriginInfo)
	return label, nil
}

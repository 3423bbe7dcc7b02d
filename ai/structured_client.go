package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ecoscan/ports"
)

// StructuredClient provides typed JSON responses from LLM calls
type StructuredClient[T any] struct {
	Client      ports.LLMClient
	Model       string
	Temperature float64
	MaxTokens   int
}

// NewStructuredClient creates a typed client bound to one model role
func NewStructuredClient[T any](client ports.LLMClient, model string, temperature float64, maxTokens int) *StructuredClient[T] {
	return &StructuredClient[T]{
		Client:      client,
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}

// GetJSONResponse makes a typed LLM call in JSON mode and parses the result
func (c *StructuredClient[T]) GetJSONResponse(ctx context.Context, system, prompt string) (*T, error) {
	return c.getJSON(ctx, ports.ChatRequest{
		Model:       c.Model,
		System:      system,
		Prompt:      prompt,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		JSONMode:    true,
	})
}

// GetJSONResponseWithImage makes a typed vision call with an attached label photo
func (c *StructuredClient[T]) GetJSONResponseWithImage(ctx context.Context, prompt, imageB64 string) (*T, error) {
	return c.getJSON(ctx, ports.ChatRequest{
		Model:       c.Model,
		Prompt:      prompt,
		ImageB64:    imageB64,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
		JSONMode:    true,
	})
}

func (c *StructuredClient[T]) getJSON(ctx context.Context, req ports.ChatRequest) (*T, error) {
	content, err := c.Client.ChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm call failed: %w", err)
	}

	content = CleanJSONContent(content)

	var result T
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		log.Printf("[StructuredClient] ERROR: Failed to unmarshal JSON content: %v", err)
		return nil, fmt.Errorf("failed to parse JSON content into result type: %w\nCleaned content: %s", err, content)
	}

	return &result, nil
}

// CleanJSONContent removes markdown code blocks and conversational chatter
// that some models emit around their JSON payload
func CleanJSONContent(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	// Drop prefix chatter ("Here is the JSON...") ahead of the first brace
	if strings.Contains(content, "\n{") {
		parts := strings.SplitN(content, "\n{", 2)
		if len(parts) == 2 && !strings.Contains(parts[0], "{") && !strings.Contains(parts[0], "[") {
			content = "{" + parts[1]
		}
	} else if strings.Contains(content, "\n[") {
		parts := strings.SplitN(content, "\n[", 2)
		if len(parts) == 2 && !strings.Contains(parts[0], "{") && !strings.Contains(parts[0], "[") {
			content = "[" + parts[1]
		}
	}

	return strings.TrimSpace(content)
}

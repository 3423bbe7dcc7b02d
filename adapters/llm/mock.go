package llm

import (
	"context"

	"ecoscan/ports"
)

// MockLLMClient is a canned-response LLM client for testing
type MockLLMClient struct {
	Response  string // Set this for testing
	Error     error  // Set this to simulate errors
	Requests  []ports.ChatRequest
	Responses map[string]string // optional per-model responses
}

func (m *MockLLMClient) ChatCompletion(ctx context.Context, req ports.ChatRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Error != nil {
		return "", m.Error
	}
	if m.Responses != nil {
		if resp, ok := m.Responses[req.Model]; ok {
			return resp, nil
		}
	}
	if m.Response != "" {
		return m.Response, nil
	}
	// Default mock response: a single consensus-friendly verdict
	return `{
		"Palm Oil": {
			"status": "RED",
			"explanation": "High deforestation footprint in major producing regions."
		}
	}`, nil
}

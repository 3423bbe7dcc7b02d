package ports

import "context"

// ChatRequest describes a single chat-completion call to an LLM provider.
// ImageB64, when set, is attached to the user message as a data-URL image part
// so vision-capable models can read label photos.
type ChatRequest struct {
	Model       string
	System      string
	Prompt      string
	ImageB64    string
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// LLMClient interface for chat-completion providers
type LLMClient interface {
	ChatCompletion(ctx context.Context, req ChatRequest) (string, error)
}

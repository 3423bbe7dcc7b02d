package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ecoscan/ports"
)

// Config holds provider connection settings
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a chat client for any OpenAI-compatible endpoint
// (Groq being the default upstream)
func NewClient(config Config) (ports.LLMClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("missing LLM API key")
	}

	baseURL := strings.TrimSpace(config.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &ChatClient{
		APIKey:  config.APIKey,
		BaseURL: baseURL,
		Timeout: timeout,
	}, nil
}

// ChatClient implements ports.LLMClient over the OpenAI chat-completions wire format
type ChatClient struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// responseFormat forces structured output when JSON mode is requested
type responseFormat struct {
	Type string `json:"type"`
}

func (c *ChatClient) ChatCompletion(ctx context.Context, req ports.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Model) == "" {
		return "", fmt.Errorf("missing model")
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}

	type msg struct {
		Role    string      `json:"role"`
		Content interface{} `json:"content"`
	}
	type reqBody struct {
		Model          string          `json:"model"`
		Messages       []msg           `json:"messages"`
		Temperature    float64         `json:"temperature"`
		MaxTokens      int             `json:"max_tokens,omitempty"`
		ResponseFormat *responseFormat `json:"response_format,omitempty"`
	}

	// Image requests carry a multi-part user message; plain requests keep the
	// minimal one system + one user shape.
	var userContent interface{} = req.Prompt
	if req.ImageB64 != "" {
		type imageURL struct {
			URL string `json:"url"`
		}
		type part struct {
			Type     string    `json:"type"`
			Text     string    `json:"text,omitempty"`
			ImageURL *imageURL `json:"image_url,omitempty"`
		}
		userContent = []part{
			{Type: "text", Text: req.Prompt},
			{Type: "image_url", ImageURL: &imageURL{URL: "data:image/jpeg;base64," + req.ImageB64}},
		}
	}

	messages := make([]msg, 0, 2)
	if req.System != "" {
		messages = append(messages, msg{Role: "system", Content: req.System})
	}
	messages = append(messages, msg{Role: "user", Content: userContent})

	body := reqBody{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
	}
	if req.JSONMode {
		body.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	client := &http.Client{Timeout: c.Timeout}
	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("llm request timeout after %v: %w", c.Timeout, err)
		}
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm http %d: %s", resp.StatusCode, string(respRaw))
	}

	type choice struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}
	type respBody struct {
		Choices []choice `json:"choices"`
	}
	var decoded respBody
	if err := json.Unmarshal(respRaw, &decoded); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("llm response missing choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscan/adapters/llm"
)

func TestCleanJSONContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain json untouched",
			input:    `{"status": "RED"}`,
			expected: `{"status": "RED"}`,
		},
		{
			name:     "json markdown wrapper",
			input:    "```json\n{\"status\": \"RED\"}\n```",
			expected: `{"status": "RED"}`,
		},
		{
			name:     "bare markdown wrapper",
			input:    "```\n{\"status\": \"RED\"}\n```",
			expected: `{"status": "RED"}`,
		},
		{
			name:     "prefix chatter before object",
			input:    "Here is the analysis you asked for:\n{\"status\": \"RED\"}",
			expected: `{"status": "RED"}`,
		},
		{
			name:     "prefix chatter before array",
			input:    "Sure thing!\n[{\"status\": \"RED\"}]",
			expected: `[{"status": "RED"}]`,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n\n  {\"a\": 1}  \n",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONContent(tt.input))
		})
	}
}

func TestStructuredClient_ParsesTypedResponse(t *testing.T) {
	type ruling struct {
		FinalStatus string `json:"final_status"`
	}

	mockClient := &llm.MockLLMClient{Response: "```json\n{\"final_status\": \"GREEN\"}\n```"}
	client := NewStructuredClient[ruling](mockClient, "test-model", 0, 512)

	result, err := client.GetJSONResponse(context.Background(), "system", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "GREEN", result.FinalStatus)

	// JSON mode is requested on the wire
	require.Len(t, mockClient.Requests, 1)
	assert.True(t, mockClient.Requests[0].JSONMode)
	assert.Equal(t, "test-model", mockClient.Requests[0].Model)
}

func TestStructuredClient_MalformedJSONIsAnError(t *testing.T) {
	type ruling struct {
		FinalStatus string `json:"final_status"`
	}

	mockClient := &llm.MockLLMClient{Response: "I'd rather chat than emit JSON."}
	client := NewStructuredClient[ruling](mockClient, "test-model", 0, 512)

	_, err := client.GetJSONResponse(context.Background(), "system", "prompt")
	assert.Error(t, err)
}

func TestRenderPrompt(t *testing.T) {
	out := RenderPrompt("Item: {ITEM}, A: {STATUS_A}", map[string]string{
		"ITEM":     "Palm Oil",
		"STATUS_A": "RED",
	})
	assert.Equal(t, "Item: Palm Oil, A: RED", out)
}

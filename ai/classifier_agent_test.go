package ai

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoscan/adapters/llm"
	"ecoscan/domain/audit"
)

func TestOrderedVerdicts_PreservesResponseOrder(t *testing.T) {
	payload := `{
		"Coconut Oil": {"status": "YELLOW", "explanation": "imported"},
		"Palm Oil": {"status": "RED", "explanation": "deforestation"},
		"Oats": {"status": "GREEN", "explanation": "plant-based"}
	}`

	var decoded orderedVerdicts
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))

	require.Len(t, decoded.Entries, 3)
	assert.Equal(t, "Coconut Oil", decoded.Entries[0].Key)
	assert.Equal(t, "Palm Oil", decoded.Entries[1].Key)
	assert.Equal(t, "Oats", decoded.Entries[2].Key)
}

func TestOrderedVerdicts_RejectsNonObject(t *testing.T) {
	var decoded orderedVerdicts
	assert.Error(t, json.Unmarshal([]byte(`["not", "an", "object"]`), &decoded))
}

func TestMatchVerdict_BidirectionalSubstring(t *testing.T) {
	entries := []keyedVerdict{
		{Key: "Sustainable Palm Oil", Verdict: rawVerdict{Status: "RED", Explanation: "x"}},
	}

	// item contained in key
	_, ok := matchVerdict("palm oil", entries)
	assert.True(t, ok)

	// key contained in item
	entries = []keyedVerdict{{Key: "Sugar", Verdict: rawVerdict{Status: "YELLOW"}}}
	_, ok = matchVerdict("Cane Sugar", entries)
	assert.True(t, ok)

	_, ok = matchVerdict("Wheat", entries)
	assert.False(t, ok)
}

func TestMatchVerdict_FirstMatchWinsInResponseOrder(t *testing.T) {
	entries := []keyedVerdict{
		{Key: "Palm Oil", Verdict: rawVerdict{Status: "RED"}},
		{Key: "Coconut Oil", Verdict: rawVerdict{Status: "GREEN"}},
	}

	// "Oil" is ambiguous; the earlier response entry claims it
	found, ok := matchVerdict("Oil", entries)
	require.True(t, ok)
	assert.Equal(t, "RED", found.Status)
}

func TestClassifierAgent_MapsVerdictsBackToItems(t *testing.T) {
	mockClient := &llm.MockLLMClient{
		Response: `{
			"Palm Oil (refined)": {"status": "red", "explanation": "deforestation"},
			"100% Natural claim": {"status": "sorta fine?", "explanation": ""}
		}`,
	}

	agent := NewClassifierAgent(mockClient, "scientist", ScientistPrompt, "test-model", 1024)
	report, err := agent.Classify(context.Background(), []string{"Palm Oil", "100% Natural", "Unlisted"})
	require.NoError(t, err)

	require.Len(t, report, 2)
	// status normalized to the enum, lowercase accepted
	assert.Equal(t, audit.StatusRed, report["Palm Oil"].Status)
	// unrecognized status and empty explanation both get defaults
	assert.Equal(t, audit.StatusYellow, report["100% Natural"].Status)
	assert.Equal(t, "Analyzed", report["100% Natural"].Explanation)
	// items the agent never mentioned are absent, not defaulted
	_, ok := report["Unlisted"]
	assert.False(t, ok)
}

func TestClassifierAgent_EmptyItemSetSkipsCall(t *testing.T) {
	mockClient := &llm.MockLLMClient{}

	agent := NewClassifierAgent(mockClient, "critic", CriticPrompt, "test-model", 1024)
	report, err := agent.Classify(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, report)
	assert.Empty(t, mockClient.Requests)
}

func TestClassifierAgent_PropagatesClientError(t *testing.T) {
	mockClient := &llm.MockLLMClient{Error: assert.AnError}

	agent := NewClassifierAgent(mockClient, "scientist", ScientistPrompt, "test-model", 1024)
	_, err := agent.Classify(context.Background(), []string{"Palm Oil"})

	assert.Error(t, err)
}

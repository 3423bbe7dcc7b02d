package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// rawVerdict is the wire shape each agent emits per item. Status is free-form
// at this boundary and normalized before it leaves the adapter.
type rawVerdict struct {
	Status      string `json:"status"`
	Explanation string `json:"explanation"`
}

// keyedVerdict pairs a model-invented item name with its verdict
type keyedVerdict struct {
	Key     string
	Verdict rawVerdict
}

// orderedVerdicts decodes the agent's JSON object while preserving key order.
// Plain map decoding would randomize iteration and make the first-match scan
// below nondeterministic across runs of the same response.
type orderedVerdicts struct {
	Entries []keyedVerdict
}

func (o *orderedVerdicts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}

		var v rawVerdict
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode verdict for %q: %w", key, err)
		}
		o.Entries = append(o.Entries, keyedVerdict{Key: key, Verdict: v})
	}

	return nil
}

// ClassifierAgent is one LLM-backed classifier role (scientist or critic)
type ClassifierAgent struct {
	name   string
	system string
	client *StructuredClient[orderedVerdicts]
}

// NewClassifierAgent creates an agent bound to a role prompt and model
func NewClassifierAgent(llmClient ports.LLMClient, name, systemPrompt, model string, maxTokens int) *ClassifierAgent {
	return &ClassifierAgent{
		name:   name,
		system: systemPrompt,
		client: NewStructuredClient[orderedVerdicts](llmClient, model, 0, maxTokens),
	}
}

func (a *ClassifierAgent) Name() string { return a.name }

// Classify sends the full item set to the agent and maps its answers back onto
// the original item strings
func (a *ClassifierAgent) Classify(ctx context.Context, items []string) (map[string]audit.AgentVerdict, error) {
	if len(items) == 0 {
		return map[string]audit.AgentVerdict{}, nil
	}

	prompt := "Analyze: [" + strings.Join(items, ", ") + "]"

	result, err := a.client.GetJSONResponse(ctx, a.system, prompt)
	if err != nil {
		return nil, errors.ClassifierError(a.name, err)
	}

	report := make(map[string]audit.AgentVerdict, len(items))
	for _, item := range items {
		if found, ok := matchVerdict(item, result.Entries); ok {
			report[item] = audit.AgentVerdict{
				Status:      audit.NormalizeStatus(found.Status),
				Explanation: explanationOrDefault(found.Explanation),
			}
		}
	}

	log.Printf("[ClassifierAgent:%s] matched %d/%d items", a.name, len(report), len(items))
	return report, nil
}

// matchVerdict resolves a model-invented key back to an original item by
// case-insensitive bidirectional substring containment, first match wins over
// the agent's response order.
//
// The containment test is deliberately loose ("Oil" would claim both "Palm
// Oil" and "Coconut Oil"); with response order preserved the outcome is at
// least stable for a fixed agent response.
func matchVerdict(item string, entries []keyedVerdict) (rawVerdict, bool) {
	itemLower := strings.ToLower(item)
	for _, entry := range entries {
		keyLower := strings.ToLower(entry.Key)
		if strings.Contains(keyLower, itemLower) || strings.Contains(itemLower, keyLower) {
			return entry.Verdict, true
		}
	}
	return rawVerdict{}, false
}

func explanationOrDefault(explanation string) string {
	if strings.TrimSpace(explanation) == "" {
		return "Analyzed"
	}
	return explanation
}

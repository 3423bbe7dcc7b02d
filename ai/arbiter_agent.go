package ai

import (
	"context"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
	"ecoscan/ports"
)

// arbiterRuling is the wire shape of the arbiter's decision
type arbiterRuling struct {
	FinalStatus      string `json:"final_status"`
	FinalExplanation string `json:"final_explanation"`
}

// ArbiterAgent is the third classifier that rules when the two agents disagree
type ArbiterAgent struct {
	client *StructuredClient[arbiterRuling]
}

func NewArbiterAgent(llmClient ports.LLMClient, model string, maxTokens int) *ArbiterAgent {
	return &ArbiterAgent{
		client: NewStructuredClient[arbiterRuling](llmClient, model, 0, maxTokens),
	}
}

// Arbitrate asks the judge model to rule on one contested item. Errors are
// returned as-is; the fallback-to-YELLOW policy belongs to the caller.
func (a *ArbiterAgent) Arbitrate(ctx context.Context, item string, verdictA, verdictB audit.AgentVerdict) (audit.AgentVerdict, error) {
	prompt := RenderPrompt(ArbiterPrompt, map[string]string{
		"ITEM":     item,
		"STATUS_A": string(verdictA.Status),
		"REASON_A": verdictA.Explanation,
		"STATUS_B": string(verdictB.Status),
		"REASON_B": verdictB.Explanation,
	})

	ruling, err := a.client.GetJSONResponse(ctx, "", prompt)
	if err != nil {
		return audit.AgentVerdict{}, errors.ArbiterError(item, err)
	}

	return audit.AgentVerdict{
		Status:      audit.NormalizeStatus(ruling.FinalStatus),
		Explanation: explanationOrDefault(ruling.FinalExplanation),
	}, nil
}

package ports

import (
	"context"

	"ecoscan/domain/audit"
)

// Classifier is one independently-configured agent that rates a set of items.
// The returned map is keyed by the original item strings; items the agent did
// not cover are simply absent. A failed call returns an error and no map; the
// caller decides how to degrade.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, items []string) (map[string]audit.AgentVerdict, error)
}

// Arbiter rules on a single item when two agents disagree
type Arbiter interface {
	Arbitrate(ctx context.Context, item string, a, b audit.AgentVerdict) (audit.AgentVerdict, error)
}

package consensus

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/semaphore"

	"ecoscan/domain/audit"
	"ecoscan/ports"
)

// ArbiterUnavailable is the explanation attached to the fixed YELLOW fallback
// when the arbiter cannot be reached. Fail to caution, never fail to crash: an
// audit tool degrades to "uncertain" rather than abort.
const ArbiterUnavailable = "Arbiter unavailable; defaulting to caution."

// defaultArbiterConcurrency bounds how many contested items are arbitrated at
// once. Items are independent, so the bound only protects the upstream API.
const defaultArbiterConcurrency = 4

// Resolver runs the multi-agent consensus protocol: it fans the same item set
// out to two independent classifier agents, merges their verdicts per item,
// and calls the arbiter on every disagreement.
type Resolver struct {
	primary    ports.Classifier
	secondary  ports.Classifier
	arbiter    ports.Arbiter
	arbiterSem *semaphore.Weighted
}

// NewResolver creates a resolver over two agents and a tie-breaking arbiter
func NewResolver(primary, secondary ports.Classifier, arbiter ports.Arbiter) *Resolver {
	return &Resolver{
		primary:    primary,
		secondary:  secondary,
		arbiter:    arbiter,
		arbiterSem: semaphore.NewWeighted(defaultArbiterConcurrency),
	}
}

// Resolve produces one FinalVerdict per item the agents covered, in item-set
// order. Items neither agent returned a verdict for are dropped, not defaulted.
func (r *Resolver) Resolve(ctx context.Context, items []string) []audit.FinalVerdict {
	if len(items) == 0 {
		return []audit.FinalVerdict{}
	}

	reportA, reportB := r.classifyParallel(ctx, items)

	// Per-item merge. A slot filled by only one agent is backfilled into the
	// other: a single opinion counts as consensus by default.
	type pending struct {
		index int
		item  string
		a, b  audit.AgentVerdict
	}

	verdicts := make([]*audit.FinalVerdict, len(items))
	var contested []pending

	for i, item := range items {
		a, okA := reportA[item]
		b, okB := reportB[item]

		if !okA && !okB {
			continue // both agents silent, item dropped
		}
		if !okA {
			a = b
		}
		if !okB {
			b = a
		}

		if a.Status == b.Status {
			verdicts[i] = &audit.FinalVerdict{
				Item:        item,
				Status:      a.Status,
				Explanation: a.Explanation,
				Consensus:   true,
			}
			continue
		}

		log.Printf("[Resolver] conflict on %q: %s says %s, %s says %s",
			item, r.primary.Name(), a.Status, r.secondary.Name(), b.Status)
		contested = append(contested, pending{index: i, item: item, a: a, b: b})
	}

	// Contested items are independent; arbitrate them concurrently under a
	// bounded semaphore and write results back by index to keep output order.
	var wg sync.WaitGroup
	for _, p := range contested {
		wg.Add(1)
		go func(p pending) {
			defer wg.Done()
			ruling := r.arbitrate(ctx, p.item, p.a, p.b)
			verdicts[p.index] = &audit.FinalVerdict{
				Item:        p.item,
				Status:      ruling.Status,
				Explanation: ruling.Explanation,
				Consensus:   false,
			}
		}(p)
	}
	wg.Wait()

	final := make([]audit.FinalVerdict, 0, len(items))
	for _, v := range verdicts {
		if v != nil {
			final = append(final, *v)
		}
	}
	return final
}

// classifyParallel issues both agent calls concurrently. A failed agent
// contributes an empty report rather than failing the request.
func (r *Resolver) classifyParallel(ctx context.Context, items []string) (map[string]audit.AgentVerdict, map[string]audit.AgentVerdict) {
	var wg sync.WaitGroup
	var reportA, reportB map[string]audit.AgentVerdict

	run := func(agent ports.Classifier, dest *map[string]audit.AgentVerdict) {
		defer wg.Done()
		report, err := agent.Classify(ctx, items)
		if err != nil {
			log.Printf("[Resolver] agent %s failed: %v", agent.Name(), err)
			report = map[string]audit.AgentVerdict{}
		}
		*dest = report
	}

	wg.Add(2)
	go run(r.primary, &reportA)
	go run(r.secondary, &reportB)
	wg.Wait()

	return reportA, reportB
}

func (r *Resolver) arbitrate(ctx context.Context, item string, a, b audit.AgentVerdict) audit.AgentVerdict {
	if err := r.arbiterSem.Acquire(ctx, 1); err != nil {
		log.Printf("[Resolver] arbiter slot unavailable for %q: %v", item, err)
		return audit.AgentVerdict{Status: audit.StatusYellow, Explanation: ArbiterUnavailable}
	}
	defer r.arbiterSem.Release(1)

	ruling, err := r.arbiter.Arbitrate(ctx, item, a, b)
	if err != nil {
		log.Printf("[Resolver] arbiter failed for %q: %v", item, err)
		return audit.AgentVerdict{Status: audit.StatusYellow, Explanation: ArbiterUnavailable}
	}
	return ruling
}

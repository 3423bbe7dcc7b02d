package ports

import "context"

// AdditiveRegistry matches audited items against a curated list of banned
// additives. Each match docks the final score; a failed lookup degrades to
// zero matches.
type AdditiveRegistry interface {
	MatchBanned(ctx context.Context, items []string) ([]string, error)
}

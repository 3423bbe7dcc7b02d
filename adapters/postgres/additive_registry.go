package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"ecoscan/ports"
)

// AdditiveRegistryImpl implements AdditiveRegistry over a curated
// banned_additives table
type AdditiveRegistryImpl struct {
	db *sqlx.DB
}

// NewAdditiveRegistry creates a PostgreSQL banned-additive registry
func NewAdditiveRegistry(db *sqlx.DB) ports.AdditiveRegistry {
	return &AdditiveRegistryImpl{db: db}
}

// EnsureSchema creates the banned_additives table if it does not exist.
// The table is curated out of band; no rows are seeded here.
func (r *AdditiveRegistryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS banned_additives (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`)
	if err != nil {
		return fmt.Errorf("create banned_additives table: %w", err)
	}
	return nil
}

// MatchBanned returns every banned additive whose name appears in the item
// text, case-insensitive
func (r *AdditiveRegistryImpl) MatchBanned(ctx context.Context, items []string) ([]string, error) {
	if len(items) == 0 {
		return []string{}, nil
	}

	var names []string
	if err := r.db.SelectContext(ctx, &names, `SELECT name FROM banned_additives`); err != nil {
		return nil, fmt.Errorf("load banned additives: %w", err)
	}

	return matchBannedNames(names, items), nil
}

// matchBannedNames scans the joined item text for each registered name.
// Substring containment mirrors how additive names appear inside longer
// ingredient phrases ("Sodium Benzoate (preservative)").
func matchBannedNames(names, items []string) []string {
	text := strings.ToLower(strings.Join(items, " | "))

	matches := []string{}
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(trimmed)) {
			matches = append(matches, trimmed)
		}
	}
	return matches
}

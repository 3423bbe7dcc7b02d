package ports

import (
	"context"

	"ecoscan/domain/audit"
)

// AlternativesFinder suggests better-rated substitute products for a scanned
// barcode. An empty barcode is a defined no-op, not an error.
type AlternativesFinder interface {
	FindAlternatives(ctx context.Context, barcode string) ([]audit.Alternative, error)
}

package ports

import (
	"context"

	"ecoscan/domain/audit"
)

// Extractor turns a raw label photo into structured label data.
// Extraction failure is the one upstream error that aborts an audit: without
// extracted data there is nothing to score.
type Extractor interface {
	ExtractLabel(ctx context.Context, imageData []byte) (*audit.ExtractedLabel, error)
}

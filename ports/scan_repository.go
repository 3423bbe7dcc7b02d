package ports

import (
	"context"

	"github.com/google/uuid"

	"ecoscan/domain/audit"
)

// ScanRecord is one persisted audit, as stored in scan history
type ScanRecord struct {
	ID       uuid.UUID
	Category string
	Score    int
	Summary  string
	Report   audit.AuditReport
}

// ScanRepository persists audit reports for history and export.
// The pipeline itself never depends on this; persistence is best-effort and a
// storage failure must not fail an audit.
type ScanRepository interface {
	Save(ctx context.Context, record *ScanRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*ScanRecord, error)
	List(ctx context.Context, limit, offset int) ([]*ScanRecord, error)
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"ecoscan/domain/audit"
	"ecoscan/ports"
)

// ScanRepositoryImpl implements ScanRepository for PostgreSQL
type ScanRepositoryImpl struct {
	db *sqlx.DB
}

// NewScanRepository creates a new PostgreSQL scan-history repository
func NewScanRepository(db *sqlx.DB) ports.ScanRepository {
	return &ScanRepositoryImpl{db: db}
}

// EnsureSchema creates the scans table if it does not exist
func (r *ScanRepositoryImpl) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS scans (
			id UUID PRIMARY KEY,
			category TEXT NOT NULL,
			score INT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			report JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create scans table: %w", err)
	}
	return nil
}

// Save inserts or updates one scan record
func (r *ScanRepositoryImpl) Save(ctx context.Context, record *ports.ScanRecord) error {
	reportJSON, err := json.Marshal(record.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO scans (id, category, score, summary, report, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			category = EXCLUDED.category,
			score = EXCLUDED.score,
			summary = EXCLUDED.summary,
			report = EXCLUDED.report`,
		record.ID, record.Category, record.Score, record.Summary, reportJSON)
	return err
}

// GetByID retrieves one scan by its identifier
func (r *ScanRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*ports.ScanRecord, error) {
	var (
		record     ports.ScanRecord
		reportJSON []byte
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, category, score, summary, report
		FROM scans WHERE id = $1`, id).
		Scan(&record.ID, &record.Category, &record.Score, &record.Summary, &reportJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scan %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query scan: %w", err)
	}

	var report audit.AuditReport
	if err := json.Unmarshal(reportJSON, &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	record.Report = report

	return &record, nil
}

// List returns recent scans, newest first
func (r *ScanRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*ports.ScanRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category, score, summary, report
		FROM scans
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var records []*ports.ScanRecord
	for rows.Next() {
		var (
			record     ports.ScanRecord
			reportJSON []byte
		)
		if err := rows.Scan(&record.ID, &record.Category, &record.Score, &record.Summary, &reportJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal(reportJSON, &record.Report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}

// Package runlog persists the audit trail of import runs.
package runlog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/mohammadpnp/admin-console/internal/domain/transaction"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/db/models"
)

type Repository struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func New(db *gorm.DB, pool *pgxpool.Pool) *Repository {
	return &Repository{db: db, pool: pool}
}

// RecordRun writes one import_runs row and bulk-inserts the run's error
// messages. The error list can be large (up to the report cap plus server
// errors), so it goes through COPY rather than row-at-a-time inserts.
func (r *Repository) RecordRun(ctx context.Context, rec transaction.ImportRunRecord) error {
	runID := uuid.NewString()

	run := models.ImportRun{
		ID:           runID,
		Filename:     rec.Filename,
		TotalRows:    rec.TotalRows,
		ValidRows:    rec.ValidRows,
		SuccessCount: rec.SuccessCount,
		ErrorCount:   len(rec.Errors),
		DurationMs:   rec.Duration.Milliseconds(),
	}
	if err := r.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("create import run: %w", err)
	}

	if len(rec.Errors) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(rec.Errors))
	for i, message := range rec.Errors {
		rows = append(rows, []any{runID, int64(i), message})
	}

	if _, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"import_run_errors"},
		[]string{"run_id", "position", "message"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("copy import run errors: %w", err)
	}

	return nil
}

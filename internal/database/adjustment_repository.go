package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// AdjustmentRepository persists the confidence adjustment snapshot so
// feedback-learned deltas survive restarts.
type AdjustmentRepository struct {
	db *sqlx.DB
}

// NewAdjustmentRepository creates a new adjustment repository.
func NewAdjustmentRepository(db *sqlx.DB) *AdjustmentRepository {
	return &AdjustmentRepository{db: db}
}

// UpsertAdjustment adds step to the stored delta for a domain/subdomain key.
// The addition happens in SQL so concurrent feedback submissions commute
// regardless of the order their writes land. The ON CONFLICT form is
// supported by both sqlite and postgres.
func (r *AdjustmentRepository) UpsertAdjustment(ctx context.Context, key string, step float64) error {
	query := r.db.Rebind(`
		INSERT INTO confidence_adjustments (key, delta, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			delta = confidence_adjustments.delta + excluded.delta,
			updated_at = excluded.updated_at
	`)

	if _, err := r.db.ExecContext(ctx, query, key, step, time.Now()); err != nil {
		return fmt.Errorf("upsert adjustment %s: %w", key, err)
	}
	return nil
}

// LoadAll returns every persisted adjustment delta, keyed by
// "domain/subdomain". Used to restore state at startup.
func (r *AdjustmentRepository) LoadAll(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, delta FROM confidence_adjustments`)
	if err != nil {
		return nil, fmt.Errorf("load adjustments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	deltas := make(map[string]float64)
	for rows.Next() {
		var key string
		var delta float64
		if err := rows.Scan(&key, &delta); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		deltas[key] = delta
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate adjustments: %w", err)
	}
	return deltas, nil
}

package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/praj33/Law-Agent-by-Grok-sub003/internal/domain"
)

// FeedbackRepository handles the append-only feedback log.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// InsertFeedback appends one feedback record. Records are never updated.
func (r *FeedbackRepository) InsertFeedback(ctx context.Context, record *domain.FeedbackRecord) error {
	query := r.db.Rebind(`
		INSERT INTO feedback_records
			(id, query_text, query_signature, domain, subdomain, confidence,
			 feedback_text, rating, polarity, applied, step, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.QueryText,
		record.QuerySignature,
		record.Domain,
		record.Subdomain,
		record.Confidence,
		record.FeedbackText,
		record.Rating,
		record.Polarity,
		record.Applied,
		record.Step,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert feedback record: %w", err)
	}
	return nil
}

// ListRecent returns the most recent feedback records, newest first.
func (r *FeedbackRepository) ListRecent(ctx context.Context, limit int) ([]domain.FeedbackRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := r.db.Rebind(`
		SELECT id, query_text, query_signature, domain, subdomain, confidence,
		       feedback_text, rating, polarity, applied, step, created_at
		FROM feedback_records
		ORDER BY created_at DESC
		LIMIT ?
	`)

	var records []domain.FeedbackRecord
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("list feedback records: %w", err)
	}
	return records, nil
}

// CountByPolarity returns feedback counts keyed by polarity.
func (r *FeedbackRepository) CountByPolarity(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT polarity, COUNT(*)
		FROM feedback_records
		GROUP BY polarity
	`)
	if err != nil {
		return nil, fmt.Errorf("count feedback records: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	counts := make(map[string]int)
	for rows.Next() {
		var polarity string
		var count int
		if err := rows.Scan(&polarity, &count); err != nil {
			return nil, fmt.Errorf("scan feedback count: %w", err)
		}
		counts[polarity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback counts: %w", err)
	}
	return counts, nil
}

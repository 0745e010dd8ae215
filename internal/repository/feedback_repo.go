package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mindvibe/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback domain.RecommendationFeedback) error
}

type PgFeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepository(pool *pgxpool.Pool) *PgFeedbackRepository {
	return &PgFeedbackRepository{pool: pool}
}

func (r *PgFeedbackRepository) Create(ctx context.Context, feedback domain.RecommendationFeedback) error {
	const query = `
		INSERT INTO recommendation_feedback (id, entry_id, helpful, tags, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	tags, err := json.Marshal(feedback.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		feedback.ID,
		feedback.EntryID,
		feedback.Helpful,
		tags,
		feedback.CreatedAt,
	)
	return err
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mindvibe/internal/domain"
)

type MoodEntryRepository interface {
	Create(ctx context.Context, entry domain.MoodAnalysis) error
	ListRecent(ctx context.Context, limit int) ([]domain.MoodAnalysis, error)
}

type PgMoodEntryRepository struct {
	pool *pgxpool.Pool
}

func NewPgMoodEntryRepository(pool *pgxpool.Pool) *PgMoodEntryRepository {
	return &PgMoodEntryRepository{pool: pool}
}

func (r *PgMoodEntryRepository) Create(ctx context.Context, entry domain.MoodAnalysis) error {
	const query = `
		INSERT INTO mood_entries
			(id, user_id, text, mood_score, mood_category, sentiment_label,
			 sentiment_score, emotions, color, recommendations,
			 personalization_tags, crisis_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	emotions, err := json.Marshal(entry.Emotions)
	if err != nil {
		return fmt.Errorf("marshal emotions: %w", err)
	}
	recommendations, err := json.Marshal(entry.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	tags, err := json.Marshal(entry.PersonalizationTags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	var userID interface{}
	if entry.UserID != "" {
		userID = entry.UserID
	}

	_, err = r.pool.Exec(ctx, query,
		entry.ID,
		userID,
		entry.Text,
		entry.MoodScore,
		entry.MoodCategory,
		entry.SentimentLabel,
		entry.SentimentScore,
		emotions,
		entry.Color,
		recommendations,
		tags,
		entry.CrisisLevel,
		entry.Timestamp,
	)
	return err
}

func (r *PgMoodEntryRepository) ListRecent(ctx context.Context, limit int) ([]domain.MoodAnalysis, error) {
	const query = `
		SELECT id, user_id, mood_score, mood_category, sentiment_label,
		       sentiment_score, emotions, color, recommendations,
		       personalization_tags, crisis_level, created_at
		FROM mood_entries
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.MoodAnalysis
	for rows.Next() {
		var entry domain.MoodAnalysis
		var userID *string
		var emotions, recommendations, tags []byte

		err = rows.Scan(
			&entry.ID,
			&userID,
			&entry.MoodScore,
			&entry.MoodCategory,
			&entry.SentimentLabel,
			&entry.SentimentScore,
			&emotions,
			&entry.Color,
			&recommendations,
			&tags,
			&entry.CrisisLevel,
			&entry.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		if userID != nil {
			entry.UserID = *userID
		}
		if len(emotions) > 0 {
			if err := json.Unmarshal(emotions, &entry.Emotions); err != nil {
				return nil, fmt.Errorf("unmarshal emotions: %w", err)
			}
		}
		if len(recommendations) > 0 {
			if err := json.Unmarshal(recommendations, &entry.Recommendations); err != nil {
				return nil, fmt.Errorf("unmarshal recommendations: %w", err)
			}
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &entry.PersonalizationTags); err != nil {
				return nil, fmt.Errorf("unmarshal tags: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

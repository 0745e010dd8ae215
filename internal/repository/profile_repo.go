package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"mindvibe/internal/domain"
)

type UserProfileRepository interface {
	Create(ctx context.Context, profile domain.UserProfile) error
	GetByID(ctx context.Context, id string) (domain.UserProfile, error)
}

type PgUserProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserProfileRepository(pool *pgxpool.Pool) *PgUserProfileRepository {
	return &PgUserProfileRepository{pool: pool}
}

func (r *PgUserProfileRepository) Create(ctx context.Context, profile domain.UserProfile) error {
	const query = `
		INSERT INTO user_profiles
			(id, name, gender, age, self_knowledge, bottling_feelings,
			 overthinking, anxiety_moments, referred_by_professional,
			 support_areas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	supportAreas, err := json.Marshal(profile.SupportAreas)
	if err != nil {
		return fmt.Errorf("marshal support areas: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Gender,
		profile.Age,
		profile.SelfKnowledge,
		profile.BottlingFeelings,
		profile.Overthinking,
		profile.AnxietyMoments,
		profile.ReferredByProfessional,
		supportAreas,
		profile.CreatedAt,
	)
	return err
}

func (r *PgUserProfileRepository) GetByID(ctx context.Context, id string) (domain.UserProfile, error) {
	const query = `
		SELECT id, name, gender, age, self_knowledge, bottling_feelings,
		       overthinking, anxiety_moments, referred_by_professional,
		       support_areas, created_at
		FROM user_profiles
		WHERE id = $1
	`

	var profile domain.UserProfile
	var supportAreas []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Gender,
		&profile.Age,
		&profile.SelfKnowledge,
		&profile.BottlingFeelings,
		&profile.Overthinking,
		&profile.AnxietyMoments,
		&profile.ReferredByProfessional,
		&supportAreas,
		&profile.CreatedAt,
	)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if len(supportAreas) > 0 {
		if err := json.Unmarshal(supportAreas, &profile.SupportAreas); err != nil {
			return domain.UserProfile{}, fmt.Errorf("unmarshal support areas: %w", err)
		}
	}
	return profile, nil
}

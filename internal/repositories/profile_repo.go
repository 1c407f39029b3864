package repositories

import (
	"context"
	"errors"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, org_name, org_objectives, updated_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.OrgName, &p.OrgObjectives, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) Update(ctx context.Context, p *models.Profile) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles SET org_name = $1, org_objectives = $2, updated_at = now()
		WHERE user_id = $3
	`, p.OrgName, p.OrgObjectives, p.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

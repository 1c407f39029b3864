package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (user_id, title, objectives)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.UserID, c.Title, c.Objectives).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, objectives, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.UserID, &c.Title, &c.Objectives, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		UPDATE campaigns SET title = $1, objectives = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at
	`, c.Title, c.Objectives, c.ID).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}

// Delete removes the campaign; child items go with it via the FK cascade.
func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CampaignFilter scopes a listing. Query is matched case-insensitively
// as a substring of title or objectives.
type CampaignFilter struct {
	UserID uuid.UUID
	Query  string
	Limit  int
	Offset int
}

// List returns one page of the user's campaigns, most recently updated
// first, plus the total match count for pagination metadata.
func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, int, error) {
	where := "user_id = $1"
	args := []any{f.UserID}
	argIdx := 2

	if f.Query != "" {
		where += fmt.Sprintf(" AND (title ILIKE $%d OR objectives ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+f.Query+"%")
		argIdx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM campaigns WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`
		SELECT id, user_id, title, objectives, created_at, updated_at
		FROM campaigns WHERE %s
		ORDER BY updated_at DESC LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Objectives, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, total, rows.Err()
}

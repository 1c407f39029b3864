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

type CampaignItemRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignItemRepo(pool *pgxpool.Pool) *CampaignItemRepo {
	return &CampaignItemRepo{pool: pool}
}

const itemColumns = `
	id, campaign_id, title, input_content,
	linkedin_content, x_content, facebook_content, instagram_content,
	youtube_content, quora_content, reddit_content, blog_content,
	image_prompt, video_prompt, image_path, video_path,
	created_at, updated_at
`

func scanItem(row pgx.Row, i *models.CampaignItem) error {
	return row.Scan(
		&i.ID, &i.CampaignID, &i.Title, &i.InputContent,
		&i.LinkedInContent, &i.XContent, &i.FacebookContent, &i.InstagramContent,
		&i.YouTubeContent, &i.QuoraContent, &i.RedditContent, &i.BlogContent,
		&i.ImagePrompt, &i.VideoPrompt, &i.ImagePath, &i.VideoPath,
		&i.CreatedAt, &i.UpdatedAt,
	)
}

// Create inserts the item and refreshes the parent campaign's updated_at
// in the same transaction, so a saved item always re-surfaces its
// campaign at the top of listings.
func (r *CampaignItemRepo) Create(ctx context.Context, i *models.CampaignItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO campaign_items (
			campaign_id, title, input_content,
			linkedin_content, x_content, facebook_content, instagram_content,
			youtube_content, quora_content, reddit_content, blog_content,
			image_prompt, video_prompt, image_path, video_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`, i.CampaignID, i.Title, i.InputContent,
		i.LinkedInContent, i.XContent, i.FacebookContent, i.InstagramContent,
		i.YouTubeContent, i.QuoraContent, i.RedditContent, i.BlogContent,
		i.ImagePrompt, i.VideoPrompt, i.ImagePath, i.VideoPath,
	).Scan(&i.ID, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return err
	}

	if err := touchCampaign(ctx, tx, i.CampaignID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update rewrites the item and bubbles the parent timestamp, atomically.
func (r *CampaignItemRepo) Update(ctx context.Context, i *models.CampaignItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		UPDATE campaign_items SET
			title = $1, input_content = $2,
			linkedin_content = $3, x_content = $4, facebook_content = $5,
			instagram_content = $6, youtube_content = $7, quora_content = $8,
			reddit_content = $9, blog_content = $10,
			image_prompt = $11, video_prompt = $12,
			image_path = $13, video_path = $14,
			updated_at = now()
		WHERE id = $15
		RETURNING updated_at
	`, i.Title, i.InputContent,
		i.LinkedInContent, i.XContent, i.FacebookContent,
		i.InstagramContent, i.YouTubeContent, i.QuoraContent,
		i.RedditContent, i.BlogContent,
		i.ImagePrompt, i.VideoPrompt,
		i.ImagePath, i.VideoPath, i.ID,
	).Scan(&i.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := touchCampaign(ctx, tx, i.CampaignID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func touchCampaign(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE campaigns SET updated_at = now() WHERE id = $1`, campaignID)
	return err
}

func (r *CampaignItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignItem, error) {
	var i models.CampaignItem
	err := scanItem(r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM campaign_items WHERE id = $1`, id), &i)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *CampaignItemRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+` FROM campaign_items
		WHERE campaign_id = $1 ORDER BY created_at
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CampaignItem
	for rows.Next() {
		var i models.CampaignItem
		if err := scanItem(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *CampaignItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

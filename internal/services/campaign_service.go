package services

import (
	"context"
	"strings"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/models"
	"github.com/contentgen/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignStore is the persistence surface the campaign service needs.
// *repositories.CampaignRepo is the production implementation.
type CampaignStore interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	Update(ctx context.Context, c *models.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f repositories.CampaignFilter) ([]models.Campaign, int, error)
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type CampaignService struct {
	campaigns CampaignStore
	items     CampaignItemStore
	log       *zap.Logger
}

func NewCampaignService(campaigns CampaignStore, items CampaignItemStore, log *zap.Logger) *CampaignService {
	return &CampaignService{campaigns: campaigns, items: items, log: log}
}

// authorizeOwner is the single ownership check every protected campaign
// and item operation goes through. Denial is reported as access denied,
// not masked as not found.
func authorizeOwner(c *models.Campaign, userID uuid.UUID) error {
	if c.UserID != userID {
		return apperrors.ErrAccessDenied
	}
	return nil
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, title, objectives string) (*models.Campaign, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidation("title", "is required")
	}
	if strings.TrimSpace(objectives) == "" {
		return nil, apperrors.NewValidation("objectives", "is required")
	}

	c := &models.Campaign{UserID: userID, Title: title, Objectives: objectives}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the campaign with its items for the detail view.
func (s *CampaignService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(c, userID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return c, nil
}

// List returns one page of the user's campaigns ordered by updated_at
// descending. An out-of-range page yields an empty list, not an error.
func (s *CampaignService) List(ctx context.Context, userID uuid.UUID, query string, page, pageSize int) ([]models.Campaign, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return s.campaigns.List(ctx, repositories.CampaignFilter{
		UserID: userID,
		Query:  strings.TrimSpace(query),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	})
}

func (s *CampaignService) Update(ctx context.Context, id, userID uuid.UUID, title, objectives string) (*models.Campaign, error) {
	existing, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(existing, userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, apperrors.NewValidation("title", "is required")
	}
	if strings.TrimSpace(objectives) == "" {
		return nil, apperrors.NewValidation("objectives", "is required")
	}

	existing.Title = title
	existing.Objectives = objectives
	if err := s.campaigns.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the campaign and, through the store's cascade, all of
// its items.
func (s *CampaignService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	existing, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(existing, userID); err != nil {
		return err
	}

	return s.campaigns.Delete(ctx, id)
}

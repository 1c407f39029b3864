package services

import (
	"context"
	"errors"
	"strings"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignItemStore is the persistence surface for items. Create and
// Update are expected to refresh the parent campaign's updated_at in the
// same transaction as the item write.
type CampaignItemStore interface {
	Create(ctx context.Context, i *models.CampaignItem) error
	Update(ctx context.Context, i *models.CampaignItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CampaignItem, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]models.CampaignItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfileStore supplies the org context for generation calls.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
}

// ItemInput carries the user-editable fields of an item write. Media
// paths are nil when no new file was uploaded.
type ItemInput struct {
	Title        string
	InputContent string
	ImagePath    *string
	VideoPath    *string
}

type CampaignItemService struct {
	items     CampaignItemStore
	campaigns CampaignStore
	profiles  ProfileStore
	generator ContentGenerator
	log       *zap.Logger
}

func NewCampaignItemService(
	items CampaignItemStore,
	campaigns CampaignStore,
	profiles ProfileStore,
	generator ContentGenerator,
	log *zap.Logger,
) *CampaignItemService {
	return &CampaignItemService{
		items:     items,
		campaigns: campaigns,
		profiles:  profiles,
		generator: generator,
		log:       log,
	}
}

// Create binds a new item to campaignID, generates the ten content
// fields from the brief, and persists everything. Any generation failure
// aborts the write; nothing partially filled is ever stored.
func (s *CampaignItemService) Create(ctx context.Context, campaignID, userID uuid.UUID, in ItemInput) (*models.CampaignItem, error) {
	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(campaign, userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.InputContent) == "" {
		return nil, apperrors.NewValidation("input_content", "is required")
	}

	fs, err := s.generate(ctx, userID, campaign, in.InputContent)
	if err != nil {
		return nil, err
	}

	item := &models.CampaignItem{
		CampaignID:   campaignID,
		Title:        in.Title,
		InputContent: in.InputContent,
		ImagePath:    in.ImagePath,
		VideoPath:    in.VideoPath,
	}
	item.ApplyFieldSet(fs)

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update regenerates the content fields from the (possibly edited) brief
// and rewrites the item. Ownership is checked through the parent
// campaign.
func (s *CampaignItemService) Update(ctx context.Context, itemID, userID uuid.UUID, in ItemInput) (*models.CampaignItem, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	campaign, err := s.campaigns.GetByID(ctx, item.CampaignID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(campaign, userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.InputContent) == "" {
		return nil, apperrors.NewValidation("input_content", "is required")
	}

	fs, err := s.generate(ctx, userID, campaign, in.InputContent)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.InputContent = in.InputContent
	if in.ImagePath != nil {
		item.ImagePath = in.ImagePath
	}
	if in.VideoPath != nil {
		item.VideoPath = in.VideoPath
	}
	item.ApplyFieldSet(fs)

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CampaignItemService) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	campaign, err := s.campaigns.GetByID(ctx, item.CampaignID)
	if err != nil {
		return err
	}
	if err := authorizeOwner(campaign, userID); err != nil {
		return err
	}

	return s.items.Delete(ctx, itemID)
}

// generate gathers the org context (absent when the user has no profile
// or left it unset) and calls the adapter once. Only a missing profile
// means "no org context"; a failing profile store aborts the write.
func (s *CampaignItemService) generate(ctx context.Context, userID uuid.UUID, campaign *models.Campaign, brief string) (*models.FieldSet, error) {
	var orgObjectives *string
	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		orgObjectives = profile.OrgObjectives
	case !errors.Is(err, apperrors.ErrNotFound):
		s.log.Error("failed to load profile for generation",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, err
	}

	fs, err := s.generator.Generate(ctx, brief, orgObjectives, campaign.Objectives)
	if err != nil {
		s.log.Warn("content generation failed",
			zap.String("campaign_id", campaign.ID.String()),
			zap.Error(err))
		return nil, err
	}
	return fs, nil
}

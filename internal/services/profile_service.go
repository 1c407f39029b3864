package services

import (
	"context"

	"github.com/contentgen/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	profiles ProfileStore
	log      *zap.Logger
}

func NewProfileService(profiles ProfileStore, log *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.profiles.GetByUserID(ctx, userID)
}

// Update replaces the org fields. Only the owning user can reach this
// path: the profile is addressed by the authenticated user's ID.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, orgName, orgObjectives *string) (*models.Profile, error) {
	p := &models.Profile{
		UserID:        userID,
		OrgName:       orgName,
		OrgObjectives: orgObjectives,
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, userID)
}

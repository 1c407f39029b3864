package services

import (
	"context"
	"time"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/contentgen/backend/internal/models"
	"github.com/contentgen/backend/internal/repositories"
	"github.com/google/uuid"
)

// In-memory stores used across the service tests. The item store shares
// the campaign store so the bubble-up contract (item write refreshes the
// parent's updated_at) can be observed the way the real transactional
// repo behaves.

type fakeCampaignStore struct {
	campaigns map[uuid.UUID]*models.Campaign
	clock     time.Time
	listCalls []repositories.CampaignFilter
}

func newFakeCampaignStore() *fakeCampaignStore {
	return &fakeCampaignStore{
		campaigns: make(map[uuid.UUID]*models.Campaign),
		clock:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeCampaignStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeCampaignStore) Create(_ context.Context, c *models.Campaign) error {
	c.ID = uuid.New()
	now := s.tick()
	c.CreatedAt = now
	c.UpdatedAt = now
	cp := *c
	s.campaigns[c.ID] = &cp
	return nil
}

func (s *fakeCampaignStore) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	c, ok := s.campaigns[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *fakeCampaignStore) Update(_ context.Context, c *models.Campaign) error {
	stored, ok := s.campaigns[c.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.Title = c.Title
	stored.Objectives = c.Objectives
	stored.UpdatedAt = s.tick()
	c.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *fakeCampaignStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.campaigns[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.campaigns, id)
	return nil
}

func (s *fakeCampaignStore) List(_ context.Context, f repositories.CampaignFilter) ([]models.Campaign, int, error) {
	s.listCalls = append(s.listCalls, f)
	var all []models.Campaign
	for _, c := range s.campaigns {
		if c.UserID == f.UserID {
			all = append(all, *c)
		}
	}
	// newest first
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if all[j].UpdatedAt.After(all[i].UpdatedAt) {
				all[i], all[j] = all[j], all[i]
			}
		}
	}
	total := len(all)
	if f.Offset >= len(all) {
		return nil, total, nil
	}
	end := f.Offset + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[f.Offset:end], total, nil
}

type fakeItemStore struct {
	campaigns *fakeCampaignStore
	items     map[uuid.UUID]*models.CampaignItem
}

func newFakeItemStore(campaigns *fakeCampaignStore) *fakeItemStore {
	return &fakeItemStore{campaigns: campaigns, items: make(map[uuid.UUID]*models.CampaignItem)}
}

func (s *fakeItemStore) touchParent(campaignID uuid.UUID) {
	if c, ok := s.campaigns.campaigns[campaignID]; ok {
		c.UpdatedAt = s.campaigns.tick()
	}
}

func (s *fakeItemStore) Create(_ context.Context, i *models.CampaignItem) error {
	i.ID = uuid.New()
	now := s.campaigns.tick()
	i.CreatedAt = now
	i.UpdatedAt = now
	cp := *i
	s.items[i.ID] = &cp
	s.touchParent(i.CampaignID)
	return nil
}

func (s *fakeItemStore) Update(_ context.Context, i *models.CampaignItem) error {
	if _, ok := s.items[i.ID]; !ok {
		return apperrors.ErrNotFound
	}
	i.UpdatedAt = s.campaigns.tick()
	cp := *i
	s.items[i.ID] = &cp
	s.touchParent(i.CampaignID)
	return nil
}

func (s *fakeItemStore) GetByID(_ context.Context, id uuid.UUID) (*models.CampaignItem, error) {
	i, ok := s.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (s *fakeItemStore) ListByCampaign(_ context.Context, campaignID uuid.UUID) ([]models.CampaignItem, error) {
	var out []models.CampaignItem
	for _, i := range s.items {
		if i.CampaignID == campaignID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (s *fakeItemStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type fakeProfileStore struct {
	profiles map[uuid.UUID]*models.Profile
	err      error // returned by GetByUserID when set
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[uuid.UUID]*models.Profile)}
}

func (s *fakeProfileStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProfileStore) Update(_ context.Context, p *models.Profile) error {
	stored, ok := s.profiles[p.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	stored.OrgName = p.OrgName
	stored.OrgObjectives = p.OrgObjectives
	return nil
}

// fakeGenerator records its inputs and returns a canned result or error.
type fakeGenerator struct {
	calls       int
	lastBrief   string
	lastOrg     *string
	lastContext string
	result      *models.FieldSet
	err         error
}

func (g *fakeGenerator) Generate(_ context.Context, brief string, orgContext *string, campaignContext string) (*models.FieldSet, error) {
	g.calls++
	g.lastBrief = brief
	g.lastOrg = orgContext
	g.lastContext = campaignContext
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func fullFieldSet() *models.FieldSet {
	return &models.FieldSet{
		LinkedInContent:  "linkedin",
		XContent:         "x",
		FacebookContent:  "facebook",
		InstagramContent: "instagram",
		YouTubeContent:   "youtube",
		QuoraContent:     "quora",
		RedditContent:    "reddit",
		BlogContent:      "blog",
		ImagePrompt:      "image",
		VideoPrompt:      "video",
	}
}

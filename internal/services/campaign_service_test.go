package services

import (
	"context"
	"testing"

	"github.com/contentgen/backend/internal/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCampaignService(t *testing.T) (*CampaignService, *fakeCampaignStore, *fakeItemStore) {
	t.Helper()
	campaigns := newFakeCampaignStore()
	items := newFakeItemStore(campaigns)
	return NewCampaignService(campaigns, items, zap.NewNop()), campaigns, items
}

func TestCampaignCreateValidation(t *testing.T) {
	svc, _, _ := newCampaignService(t)
	userID := uuid.New()

	tests := []struct {
		name       string
		title      string
		objectives string
		wantField  string
	}{
		{"empty title", "", "grow signups", "title"},
		{"whitespace title", "   ", "grow signups", "title"},
		{"empty objectives", "Launch", "", "objectives"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), userID, tt.title, tt.objectives)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestCampaignOwnershipGuard(t *testing.T) {
	svc, _, _ := newCampaignService(t)
	owner := uuid.New()
	stranger := uuid.New()

	c, err := svc.Create(context.Background(), owner, "Launch", "Grow signups")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), c.ID, stranger)
	require.ErrorIs(t, err, apperrors.ErrAccessDenied)

	_, err = svc.Update(context.Background(), c.ID, stranger, "Hijacked", "nope")
	require.ErrorIs(t, err, apperrors.ErrAccessDenied)

	err = svc.Delete(context.Background(), c.ID, stranger)
	require.ErrorIs(t, err, apperrors.ErrAccessDenied)

	// Owner still sees the untouched campaign.
	got, err := svc.Get(context.Background(), c.ID, owner)
	require.NoError(t, err)
	require.Equal(t, "Launch", got.Title)
}

func TestCampaignGetMissing(t *testing.T) {
	svc, _, _ := newCampaignService(t)
	_, err := svc.Get(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCampaignUpdateRefreshesTimestamp(t *testing.T) {
	svc, _, _ := newCampaignService(t)
	owner := uuid.New()

	c, err := svc.Create(context.Background(), owner, "Launch", "Grow signups")
	require.NoError(t, err)
	createdAt := c.UpdatedAt

	updated, err := svc.Update(context.Background(), c.ID, owner, "Launch v2", "Grow signups faster")
	require.NoError(t, err)
	require.True(t, updated.UpdatedAt.After(createdAt))
}

func TestCampaignListPagination(t *testing.T) {
	svc, store, _ := newCampaignService(t)
	owner := uuid.New()
	other := uuid.New()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(context.Background(), owner, "Campaign", "objectives")
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), other, "Not mine", "objectives")
	require.NoError(t, err)

	page1, total, err := svc.List(context.Background(), owner, "", 1, 0)
	require.NoError(t, err)
	require.Equal(t, 12, total)
	require.Len(t, page1, DefaultPageSize)

	page2, _, err := svc.List(context.Background(), owner, "", 2, 0)
	require.NoError(t, err)
	require.Len(t, page2, 2)

	// Out-of-range page is empty, not an error.
	page9, _, err := svc.List(context.Background(), owner, "", 9, 0)
	require.NoError(t, err)
	require.Empty(t, page9)

	// Only the requester's campaigns ever appear.
	for _, c := range append(page1, page2...) {
		require.Equal(t, owner, c.UserID)
	}

	// Oversized page size is clamped.
	_, _, err = svc.List(context.Background(), owner, "", 1, 500)
	require.NoError(t, err)
	last := store.listCalls[len(store.listCalls)-1]
	require.Equal(t, MaxPageSize, last.Limit)
}

func TestCampaignListQueryPassedTrimmed(t *testing.T) {
	svc, store, _ := newCampaignService(t)

	_, _, err := svc.List(context.Background(), uuid.New(), "  Launch  ", 1, 0)
	require.NoError(t, err)

	last := store.listCalls[len(store.listCalls)-1]
	require.Equal(t, "Launch", last.Query)
	require.Equal(t, DefaultPageSize, last.Limit)
	require.Zero(t, last.Offset)
}

func TestCampaignListOrdering(t *testing.T) {
	svc, _, items := newCampaignService(t)
	owner := uuid.New()

	first, err := svc.Create(context.Background(), owner, "First", "objectives")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), owner, "Second", "objectives")
	require.NoError(t, err)

	listed, _, err := svc.List(context.Background(), owner, "", 1, 0)
	require.NoError(t, err)
	require.Equal(t, second.ID, listed[0].ID)

	// An item write on the first campaign bubbles it back to the top.
	itemSvc := NewCampaignItemService(items, svc.campaigns, newFakeProfileStore(), &fakeGenerator{result: fullFieldSet()}, zap.NewNop())
	_, err = itemSvc.Create(context.Background(), first.ID, owner, ItemInput{Title: "t", InputContent: "brief"})
	require.NoError(t, err)

	listed, _, err = svc.List(context.Background(), owner, "", 1, 0)
	require.NoError(t, err)
	require.Equal(t, first.ID, listed[0].ID)
}

func TestCampaignDeleteCascades(t *testing.T) {
	svc, _, items := newCampaignService(t)
	owner := uuid.New()

	c, err := svc.Create(context.Background(), owner, "Launch", "Grow signups")
	require.NoError(t, err)

	itemSvc := NewCampaignItemService(items, svc.campaigns, newFakeProfileStore(), &fakeGenerator{result: fullFieldSet()}, zap.NewNop())
	item, err := itemSvc.Create(context.Background(), c.ID, owner, ItemInput{Title: "t", InputContent: "brief"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), c.ID, owner))

	// The fake store models the FK cascade at the service boundary: the
	// campaign is gone, so every item access 404s through the guard.
	_, err = svc.Get(context.Background(), c.ID, owner)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = itemSvc.Update(context.Background(), item.ID, owner, ItemInput{Title: "t", InputContent: "brief"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCampaignGetIncludesItems(t *testing.T) {
	svc, _, items := newCampaignService(t)
	owner := uuid.New()

	c, err := svc.Create(context.Background(), owner, "Launch", "Grow signups")
	require.NoError(t, err)

	itemSvc := NewCampaignItemService(items, svc.campaigns, newFakeProfileStore(), &fakeGenerator{result: fullFieldSet()}, zap.NewNop())
	_, err = itemSvc.Create(context.Background(), c.ID, owner, ItemInput{Title: "a", InputContent: "brief a"})
	require.NoError(t, err)
	_, err = itemSvc.Create(context.Background(), c.ID, owner, ItemInput{Title: "b", InputContent: "brief b"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), c.ID, owner)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/mock"
	"github.com/MKhiriev/go-foodmap/internal/store"
	"github.com/MKhiriev/go-foodmap/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIdentitySvc(ctrl *gomock.Controller) (IdentityService, *mock.MockIdentityRepository, *mock.MockProfileCache) {
	repo := mock.NewMockIdentityRepository(ctrl)
	cache := mock.NewMockProfileCache(ctrl)
	return NewIdentityService(repo, cache, logger.Nop()), repo, cache
}

var adaProfile = models.Profile{ID: testIdentityID, Handle: "Ada Lovelace", Email: "a@x.com"}

func TestIdentityService_Current_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, cache := newTestIdentitySvc(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, testIdentityID).Return(adaProfile, nil)

	profile, err := svc.Current(ctx, testIdentityID)
	require.NoError(t, err)
	assert.Equal(t, adaProfile, profile)
}

func TestIdentityService_Current_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache := newTestIdentitySvc(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		cache.EXPECT().Get(ctx, testIdentityID).Return(models.Profile{}, store.ErrCacheMiss),
		repo.EXPECT().FindByID(ctx, testIdentityID).Return(models.Identity{
			ID: testIdentityID, FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com", PasswordHash: "hash",
		}, nil),
		cache.EXPECT().Set(ctx, adaProfile).Return(nil),
	)

	profile, err := svc.Current(ctx, testIdentityID)
	require.NoError(t, err)
	assert.Equal(t, adaProfile, profile)
}

func TestIdentityService_Current_CacheFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache := newTestIdentitySvc(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, testIdentityID).Return(models.Profile{}, store.ErrCacheUnavailable)
	repo.EXPECT().FindByID(ctx, testIdentityID).Return(models.Identity{
		ID: testIdentityID, FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com",
	}, nil)
	cache.EXPECT().Set(ctx, adaProfile).Return(store.ErrCacheUnavailable)

	profile, err := svc.Current(ctx, testIdentityID)
	require.NoError(t, err)
	assert.Equal(t, adaProfile, profile)
}

func TestIdentityService_Current_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache := newTestIdentitySvc(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "gone").Return(models.Profile{}, store.ErrCacheMiss)
	repo.EXPECT().FindByID(ctx, "gone").Return(models.Identity{}, store.ErrIdentityNotFound)

	_, err := svc.Current(ctx, "gone")
	require.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestIdentityService_Current_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, cache := newTestIdentitySvc(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, testIdentityID).Return(models.Profile{}, store.ErrCacheMiss)
	repo.EXPECT().FindByID(ctx, testIdentityID).Return(models.Identity{}, store.ErrExecutingQuery)

	_, err := svc.Current(ctx, testIdentityID)
	require.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.False(t, errors.Is(err, ErrIdentityNotFound))
}

func TestIdentityService_NilCacheFallsBackToNop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockIdentityRepository(ctrl)
	svc := NewIdentityService(repo, nil, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, testIdentityID).Return(models.Identity{
		ID: testIdentityID, FirstName: "Ada", LastName: "Lovelace", Email: "a@x.com",
	}, nil)

	profile, err := svc.Current(ctx, testIdentityID)
	require.NoError(t, err)
	assert.Equal(t, adaProfile, profile)
}

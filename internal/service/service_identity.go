package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/store"
	"github.com/MKhiriev/go-foodmap/models"
)

// identityService resolves profiles through a read-through cache.
// Cache failures are logged and never fail the request.
type identityService struct {
	identityRepository store.IdentityRepository
	profileCache       store.ProfileCache

	logger *logger.Logger
}

func NewIdentityService(identityRepository store.IdentityRepository, profileCache store.ProfileCache, logger *logger.Logger) IdentityService {
	if profileCache == nil {
		profileCache = store.NewNopProfileCache()
	}

	return &identityService{
		identityRepository: identityRepository,
		profileCache:       profileCache,
		logger:             logger,
	}
}

// Current returns the profile of id, or ErrIdentityNotFound if the
// identity no longer exists.
func (s *identityService) Current(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx).With().Str("identity_id", id).Logger()

	profile, err := s.profileCache.Get(ctx, id)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Msg("profile cache read failed")
	}

	identity, err := s.identityRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrIdentityNotFound) {
		log.Info().Msg("token subject no longer exists")
		return models.Profile{}, ErrIdentityNotFound
	}
	if err != nil {
		log.Err(err).Msg("identity search by id failed")
		return models.Profile{}, fmt.Errorf("identity search by id failed: %w", err)
	}

	profile = identity.Profile()
	if err = s.profileCache.Set(ctx, profile); err != nil {
		log.Warn().Err(err).Msg("profile cache write failed")
	}

	return profile, nil
}

package store

import (
	"context"

	"github.com/MKhiriev/go-foodmap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// IdentityRepository is the credential store gateway: the only component
// that reads or writes persisted identities.
type IdentityRepository interface {
	// FindByEmail returns the identity registered with email, or
	// [ErrIdentityNotFound].
	FindByEmail(ctx context.Context, email string) (models.Identity, error)

	// FindByID returns the identity with the given id, or
	// [ErrIdentityNotFound].
	FindByID(ctx context.Context, id string) (models.Identity, error)

	// Create persists identity. A duplicate email yields
	// [ErrEmailAlreadyExists].
	Create(ctx context.Context, identity models.Identity) (models.Identity, error)
}

// ProfileCache is a read-through cache of public identity profiles.
type ProfileCache interface {
	// Get returns the cached profile or [ErrCacheMiss].
	Get(ctx context.Context, id string) (models.Profile, error)

	// Set stores profile under its id.
	Set(ctx context.Context, profile models.Profile) error
}

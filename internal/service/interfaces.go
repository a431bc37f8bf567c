package service

import (
	"context"

	"github.com/MKhiriev/go-foodmap/models"
)

// AuthService implements the registration, login, and token verification
// flows.
type AuthService interface {
	// Register creates a new identity and returns a token for it.
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)

	// Login verifies credentials and returns a token for the identity.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ParseToken verifies a raw token string. Any failure wraps
	// [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Claims, error)
}

// IdentityService serves read access to registered identities.
type IdentityService interface {
	// Current returns the public profile of the identity with id.
	Current(ctx context.Context, id string) (models.Profile, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// idGenerator produces identifiers for new identities.
type idGenerator interface {
	Generate() string
}

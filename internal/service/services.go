package service

import (
	"github.com/MKhiriev/go-foodmap/internal/config"
	"github.com/MKhiriev/go-foodmap/internal/crypto"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/store"
	"github.com/MKhiriev/go-foodmap/internal/validators"
)

type Services struct {
	AuthService     AuthService
	IdentityService IdentityService
}

// NewServices wires the flows over storages. Registration and login are
// validated before they reach the credential core.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	authService := NewAuthService(
		storages.IdentityRepository,
		crypto.NewBcryptHasher(cfg.PasswordHashCost),
		crypto.NewTokenIssuer(cfg.TokenSignKey, cfg.TokenIssuer),
		cfg.TokenDuration,
		logger,
	)

	return &Services{
		AuthService:     NewAuthValidationService(validators.NewCredentialsValidator()).Wrap(authService),
		IdentityService: NewIdentityService(storages.IdentityRepository, storages.ProfileCache, logger),
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-foodmap/internal/crypto"
	"github.com/MKhiriev/go-foodmap/internal/logger"
	"github.com/MKhiriev/go-foodmap/internal/store"
	"github.com/MKhiriev/go-foodmap/internal/utils"
	"github.com/MKhiriev/go-foodmap/internal/validators"
	"github.com/MKhiriev/go-foodmap/models"
)

// authService is the concrete implementation of AuthService.
// It handles identity registration, credential verification, and bearer
// token lifecycle using an IdentityRepository for persistence, bcrypt for
// password hashing, and signed JWTs for sessions.
//
// Payload validation is not done here; see [NewAuthValidationService].
type authService struct {
	// identityRepository is the data-access layer used to create and look
	// up identities.
	identityRepository store.IdentityRepository

	hasher crypto.PasswordHasher
	issuer crypto.TokenIssuer
	ids    idGenerator

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	identityRepository store.IdentityRepository,
	hasher crypto.PasswordHasher,
	issuer crypto.TokenIssuer,
	tokenDuration time.Duration,
	logger *logger.Logger,
) AuthService {
	return &authService{
		identityRepository: identityRepository,
		hasher:             hasher,
		issuer:             issuer,
		ids:                utils.NewUUIDGenerator(),
		tokenDuration:      tokenDuration,
		now:                time.Now,
		logger:             logger,
	}
}

// Register creates a new identity.
//
// The email pre-check is best effort: two concurrent registrations for the
// same address may both pass it, and the store's unique index then rejects
// the second insert, which surfaces as the same conflict.
//
// Returns a token for the new identity or:
//   - [FieldErrors] of kind ErrEmailAlreadyRegistered if the email is taken.
//   - [FieldErrors] of kind ErrInvalidDataProvided if the password is too
//     long to hash.
//   - a wrapped storage, hashing, or token error otherwise.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	_, err := a.identityRepository.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		log.Info().Msg("registration rejected: email already registered")
		log.Debug().Str("email", req.Email).Msg("duplicate registration")
		return models.Token{}, newFieldError(ErrEmailAlreadyRegistered, validators.FieldEmail, MsgEmailAlreadyRegistered)
	case !errors.Is(err, store.ErrIdentityNotFound):
		log.Err(err).Msg("identity search by email failed")
		return models.Token{}, fmt.Errorf("identity search by email failed: %w", err)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.Token{}, newFieldError(ErrInvalidDataProvided, validators.FieldPassword, MsgPasswordTooLong)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	identity, err := a.identityRepository.Create(ctx, models.Identity{
		ID:           a.ids.Generate(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Location:     req.Location,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Msg("registration rejected by unique index: email already registered")
		return models.Token{}, newFieldError(ErrEmailAlreadyRegistered, validators.FieldEmail, MsgEmailAlreadyRegistered)
	}
	if err != nil {
		log.Err(err).Msg("identity creation ended with error")
		return models.Token{}, fmt.Errorf("identity creation ended with error: %w", err)
	}

	log.Info().Str("identity_id", identity.ID).Msg("identity registered")

	return a.issue(ctx, identity.ID)
}

// Login authenticates an existing identity.
//
// Returns a token or:
//   - [FieldErrors] of kind ErrIdentityNotFound for an unknown email.
//   - [FieldErrors] of kind ErrWrongPassword if the password does not match.
//   - a wrapped storage or token error otherwise.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	identity, err := a.identityRepository.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrIdentityNotFound) {
		log.Info().Msg("login rejected: unknown email")
		log.Debug().Str("email", req.Email).Msg("unknown login email")
		return models.Token{}, newFieldError(ErrIdentityNotFound, validators.FieldEmail, MsgIdentityNotFound)
	}
	if err != nil {
		log.Err(err).Msg("identity search by email failed")
		return models.Token{}, fmt.Errorf("identity search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, identity.PasswordHash) {
		log.Info().Str("identity_id", identity.ID).Msg("login rejected: wrong password")
		return models.Token{}, newFieldError(ErrWrongPassword, validators.FieldPassword, MsgWrongPassword)
	}

	return a.issue(ctx, identity.ID)
}

// ParseToken validates a raw token string. Verification failures keep
// their crypto kind (malformed, expired, invalid claim) in the chain under
// [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := a.issuer.Verify(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return claims, nil
}

func (a *authService) issue(ctx context.Context, identityID string) (models.Token, error) {
	token, err := a.issuer.Issue(identityID, a.tokenDuration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("identity_id", identityID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

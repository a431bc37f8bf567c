package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-foodmap/models"
	"github.com/golang-jwt/jwt/v5"
)

// jwtTokenIssuer implements [TokenIssuer] with HMAC-SHA256 signed JWTs.
type jwtTokenIssuer struct {
	// signKey is the server-held symmetric secret.
	signKey []byte

	// issuer is written to and required in the "iss" claim.
	issuer string

	// now is the clock used for both issuing and verifying.
	now func() time.Time
}

// TokenIssuerOption customises a token issuer.
type TokenIssuerOption func(*jwtTokenIssuer)

// WithClock replaces time.Now, mainly for tests around expiry.
func WithClock(now func() time.Time) TokenIssuerOption {
	return func(i *jwtTokenIssuer) {
		if now != nil {
			i.now = now
		}
	}
}

// NewTokenIssuer returns a [TokenIssuer] signing with signKey and stamping
// issuer into every token.
func NewTokenIssuer(signKey, issuer string, opts ...TokenIssuerOption) TokenIssuer {
	i := &jwtTokenIssuer{
		signKey: []byte(signKey),
		issuer:  issuer,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Issue creates a token with the claims:
//   - iss: the configured issuer
//   - sub: identityID
//   - iat: now
//   - exp: now + ttl
func (i *jwtTokenIssuer) Issue(identityID string, ttl time.Duration) (models.Token, error) {
	if identityID == "" || ttl <= 0 || len(i.signKey) == 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := i.now()
	expiresAt := now.Add(ttl)
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   identityID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		IdentityID:   identityID,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

func (i *jwtTokenIssuer) Verify(tokenString string) (models.Claims, error) {
	var claims models.Claims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return i.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return models.Claims{}, classifyJWTError(err)
	}

	if claims.IdentityID() == "" {
		return models.Claims{}, fmt.Errorf("%w: empty subject", ErrTokenInvalidClaim)
	}

	return claims, nil
}

// classifyJWTError collapses jwt/v5 validation errors into the three
// verification failure kinds. Expiry wins over claim errors so that an
// expired token is always reported as such.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenInvalidClaims),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return fmt.Errorf("%w: %w", ErrTokenInvalidClaim, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

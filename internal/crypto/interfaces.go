// Package crypto holds the credential primitives of the service: salted
// password hashing and signing/verification of bearer tokens.
//
// It knows nothing about HTTP, storage, or request payloads.
package crypto

import (
	"time"

	"github.com/MKhiriev/go-foodmap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. Two calls with the same input
	// return different outputs.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. The comparison runs in
	// constant time with respect to where a mismatch occurs.
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints and verifies signed, time-limited bearer tokens.
type TokenIssuer interface {
	// Issue signs a token bound to identityID that expires after ttl.
	Issue(identityID string, ttl time.Duration) (models.Token, error)

	// Verify checks the signature, issuer, and expiry of tokenString and
	// returns its claims. Failures wrap exactly one of [ErrTokenMalformed],
	// [ErrTokenExpired] or [ErrTokenInvalidClaim].
	Verify(tokenString string) (models.Claims, error)
}

package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor used when none is configured.
const DefaultHashCost = 10

// maxPasswordBytes is the longest input bcrypt hashes without truncation.
const maxPasswordBytes = 72

// BcryptHasher implements [PasswordHasher] with bcrypt. bcrypt draws a
// fresh 16-byte salt from crypto/rand on every Hash call, so the hasher
// itself holds no mutable state and is safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Costs
// outside bcrypt's accepted range fall back to [DefaultHashCost].
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hashed), nil
}

// Verify delegates to bcrypt.CompareHashAndPassword, which compares the
// derived digests with crypto/subtle. A malformed stored hash never matches.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

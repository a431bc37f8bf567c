// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Token verification failure kinds. Callers match them with [errors.Is].
var (
	// ErrTokenMalformed is returned for strings that are not a JWT, carry a
	// bad signature, or use an unexpected signing method.
	ErrTokenMalformed = errors.New("token is malformed or unsigned")

	// ErrTokenExpired is returned for correctly signed tokens whose "exp"
	// claim has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalidClaim is returned for correctly signed, unexpired tokens
	// whose issuer or subject claim is missing or wrong.
	ErrTokenInvalidClaim = errors.New("token claims are invalid")
)

var (
	// ErrInvalidTokenParams is returned by Issue when the identity ID or ttl
	// is empty.
	ErrInvalidTokenParams = errors.New("invalid params for issuing token")

	// ErrPasswordTooLong is returned by Hash for plaintexts that bcrypt
	// would otherwise silently truncate.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

	// ErrHashingFailed wraps any failure of the underlying hashing primitive.
	ErrHashingFailed = errors.New("password hashing failed")
)

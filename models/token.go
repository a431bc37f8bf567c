package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded in every bearer token.
//
// Only standard registered claims are used: the identity identifier travels
// in "sub", so a leaked token carries no email, name, or password material.
type Claims struct {
	jwt.RegisteredClaims
}

// IdentityID returns the identity identifier carried in the "sub" claim.
func (c Claims) IdentityID() string {
	return c.Subject
}

// Token is a freshly issued bearer token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// IdentityID is the identity the token is bound to.
	IdentityID string `json:"-"`

	// ExpiresAt is the instant after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Bearer returns the value sent to clients and expected back in the
// Authorization header: "Bearer " followed by the signed token.
func (t Token) Bearer() string {
	return BearerPrefix + t.SignedString
}

// BearerPrefix is the authorization scheme prefix of issued tokens.
const BearerPrefix = "Bearer "

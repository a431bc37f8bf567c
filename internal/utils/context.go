// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON request/response helpers, the
// resty-based HTTP client, bearer header parsing, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions
// with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityIDCtxKey is the key under which the authorization middleware
// stores the authenticated identity ID.
var IdentityIDCtxKey = contextKey("identityID")

// WithIdentityID returns a copy of ctx carrying identityID.
func WithIdentityID(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, IdentityIDCtxKey, identityID)
}

// IdentityIDFromContext retrieves the authenticated identity ID.
//
// ok is false when the value is missing, has an unexpected type, or is empty.
func IdentityIDFromContext(ctx context.Context) (string, bool) {
	identityID, ok := ctx.Value(IdentityIDCtxKey).(string)
	return identityID, ok && identityID != ""
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the identity API.
//
// [ServerAdapter] hides the transport from its callers. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] whose
// kind (e.g. [ErrBadRequest], [ErrUnauthorized]) is reachable with
// [errors.Is] and whose field messages are kept for display.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-foodmap/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the identity
// API. Implementations own serialisation, the Authorization header, and
// error mapping.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	// A "Bearer " prefix is accepted and stripped.
	SetToken(token string)

	// Token returns the stored bearer token without its scheme, or "".
	Token() string

	// Register creates an identity and stores the returned token.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, req models.LoginRequest) error

	// Current fetches the profile of the identity owning the stored token.
	// It returns [ErrNoToken] when no token was stored.
	Current(ctx context.Context) (models.Profile, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// request carries no "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

// ErrNoIdentityInContext is logged when a protected handler runs without an
// identity id stored by the auth middleware.
var ErrNoIdentityInContext = errors.New("no identity id in request context")

const (
	// fieldBody is the key of the error map returned for undecodable bodies.
	fieldBody = "body"

	msgInvalidJSON = "Invalid JSON was passed"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of incoming request payloads before
// any credential work happens.
//
// Validation is pure: it performs no I/O and holds no per-request state, so
// a single Validator can be shared by all request goroutines.
package validators

import (
	"context"

	"github.com/MKhiriev/go-foodmap/models"
)

// Validator checks a request payload and reports every offending field.
type Validator interface {

	// Validate returns a result whose Errors map is keyed by the JSON name
	// of each invalid field. Payload types the validator does not know are
	// reported on the "payload" key.
	Validate(ctx context.Context, payload any) models.ValidationResult
}

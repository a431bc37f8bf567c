package service

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-foodmap/models"
)

var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrIdentityNotFound       = errors.New("identity not found")
	ErrWrongPassword          = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrPasswordHashingFailed   = errors.New("password hashing failed")
)

// Client-facing messages attached to recoverable errors.
const (
	MsgEmailAlreadyRegistered = "A user has already registered with this address"
	MsgIdentityNotFound       = "This user does not exist"
	MsgWrongPassword          = "Incorrect password"
	MsgPasswordTooLong        = "Password must be at most 72 bytes"
)

// FieldErrors is a recoverable error carrying a per-field message map for
// the client. Its kind (one of the sentinels above) is reachable with
// [errors.Is].
type FieldErrors struct {
	kind   error
	Fields models.FieldErrors
}

// NewFieldErrors returns a [FieldErrors] of the given kind.
func NewFieldErrors(kind error, fields models.FieldErrors) *FieldErrors {
	return &FieldErrors{kind: kind, Fields: fields}
}

func newFieldError(kind error, field, msg string) *FieldErrors {
	return NewFieldErrors(kind, models.FieldErrors{field: msg})
}

func (e *FieldErrors) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))

	var b strings.Builder
	b.WriteString(e.kind.Error())
	for i, k := range keys {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(" ")
		b.WriteString(e.Fields[k])
	}
	return b.String()
}

func (e *FieldErrors) Unwrap() error {
	return e.kind
}

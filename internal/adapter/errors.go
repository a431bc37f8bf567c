package adapter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-foodmap/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrNoToken         = errors.New("no token: register or login first")
	ErrMalformedAnswer = errors.New("malformed server answer")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	kind error

	// StatusCode is the HTTP status of the answer.
	StatusCode int

	// Fields holds per-field messages when the body was a JSON field map.
	Fields models.FieldErrors

	// Body is the trimmed raw body otherwise.
	Body string
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (http %d)", e.kind, e.StatusCode)

	if len(e.Fields) > 0 {
		for i, k := range slices.Sorted(maps.Keys(e.Fields)) {
			if i == 0 {
				b.WriteString(": ")
			} else {
				b.WriteString("; ")
			}
			b.WriteString(k + ": " + e.Fields[k])
		}
	} else if e.Body != "" {
		b.WriteString(": " + e.Body)
	}

	return b.String()
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-foodmap application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// Option customises a logger built by [NewLogger].
type Option func(*options)

type options struct {
	level  zerolog.Level
	writer io.Writer
}

// WithLevel sets the minimum level of the logger from its textual name
// ("debug", "info", "warn", ...). Unknown names leave the default in place.
func WithLevel(level string) Option {
	return func(o *options) {
		if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
			o.level = parsed
		}
	}
}

// WithWriter redirects log output, os.Stdout by default.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "client").
//
// Every entry carries:
//   - a "role" field set to role;
//   - a timestamp;
//   - a "func" caller field with the fully-qualified function name
//     instead of the default file:line format.
//
// Output is JSON, written to os.Stdout unless [WithWriter] is given.
// The default level is Info.
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.InfoLevel, writer: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(o.writer).
		Level(o.level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached by the trace
// middleware. See [FromContext].
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx via zerolog's WithContext.
//
// If no logger has been attached, zerolog hands back a disabled logger,
// so the result is never nil and is always safe to use.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}

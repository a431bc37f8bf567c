// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown that lets in-flight requests finish.
package server

// Package http implements the HTTP transport of the identity API.
//
// It wires the /api/users routes and the middleware chain in front of them:
// trace ids, access logging, panic recovery, request timeouts, per-client
// rate limiting on the credential endpoints, and bearer token authorization
// on the protected ones. Handlers decode typed requests, delegate to the
// service layer, and render recoverable errors as JSON field maps.
package http

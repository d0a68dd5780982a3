package api

import "errors"

var (
	// ErrUnavailable means the server could not be reached or answered 5xx.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is a definitive authorization rejection, after any
	// transparent refresh has already been attempted.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound maps HTTP 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrSessionExpired means an expired access token could not be refreshed.
	// The transport has already cleared local credentials and fired the
	// expiry hook by the time callers see this.
	ErrSessionExpired = errors.New("session expired")
)

// Package common contains shared constants and sentinel errors used across
// CareerMate components.
package common

// AuthHeaderName is the HTTP header used to carry the access token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix prefixes the access token inside the authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// User roles as the backend reports them.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

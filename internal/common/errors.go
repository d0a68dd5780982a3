// Package common defines shared constants and sentinel errors used across
// CareerMate layers. Callers should use errors.Is to match these values.
package common

import "errors"

// ErrInvalidToken marks a stored access token that cannot be parsed or lacks
// the claims the client relies on.
var ErrInvalidToken = errors.New("invalid token")

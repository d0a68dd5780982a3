// Package storage is the client's persisted local state: the credential pair
// and the cached user profile, kept in a small sqlite key-value table so they
// survive process restarts.
package storage

import "context"

// Keys under which the client persists its state. The names match what the
// original web client kept in browser storage, which keeps the backend's
// operational docs accurate for both clients.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyCurrentUser  = "currentUser"
)

// Store is a durable key-value store for small client-side state.
//
// Get returns (nil, nil) for a missing key so callers can treat absence as
// "not logged in" without error plumbing. SetMany writes all values or none,
// so a crash mid-login cannot leave a torn session behind.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

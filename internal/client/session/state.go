package session

// State is the session lifecycle position.
//
// Uninitialized → Loading on Initialize. Loading → Authenticated when a
// persisted credential and a valid-shaped profile are both present, Anonymous
// otherwise. Login and Logout move between Anonymous and Authenticated. An
// exhausted token refresh drops the session back to Anonymous from outside,
// via HandleExpired.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

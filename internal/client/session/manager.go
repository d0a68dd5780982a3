// Package session owns the authenticated-identity lifecycle: login, logout,
// rehydration from the local store, and the in-memory profile cache. The
// persisted credential pair is shared with the api transport through the
// store, which stays the single source of truth.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arkadym/careermate/internal/client/api"
	"github.com/arkadym/careermate/internal/client/models"
	"github.com/arkadym/careermate/internal/client/storage"
	"github.com/arkadym/careermate/internal/common"
	"github.com/arkadym/careermate/internal/logging"
)

// ErrInvalidCredentials is the uniform login failure: callers cannot and
// should not distinguish rejected credentials from network failures here.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ProfileUpdate is a partial profile mutation. Nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string
	Phone      *string
	Location   *string
	Department *string
	Position   *string
	Skills     any
}

// Manager is the session state machine. All mutation happens under mu;
// snapshots handed out are copies.
type Manager struct {
	store storage.Store
	api   api.Service
	log   logging.Logger

	mu      sync.RWMutex
	user    *models.UserProfile
	state   State
	loading bool
	subs    []func(*models.UserProfile)
}

func NewManager(store storage.Store, apiClient api.Service, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		api:   apiClient,
		log:   log.With("component", "session"),
		state: StateUninitialized,
	}
}

// Initialize rehydrates the session from the local store. It must run before
// any protected surface renders; until it finishes, Loading reports true.
// Returns the rehydrated profile, or nil when no valid session is persisted.
func (m *Manager) Initialize(ctx context.Context) (*models.UserProfile, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	stored, err := m.store.Get(ctx, storage.KeyCurrentUser)
	if err != nil {
		m.setAnonymous()
		return nil, err
	}
	token, err := m.store.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		m.setAnonymous()
		return nil, err
	}

	if len(stored) == 0 || len(token) == 0 {
		m.setAnonymous()
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(stored, &profile); err != nil || !validShape(&profile) {
		m.log.Warn(ctx, "stored profile is unusable, starting anonymous")
		m.setAnonymous()
		return nil, nil
	}

	m.mu.Lock()
	m.user = &profile
	m.state = StateAuthenticated
	m.mu.Unlock()
	m.notify()

	m.log.Info(ctx, "session rehydrated", "email", profile.Email, "role", profile.Role)
	return profile.Clone(), nil
}

// Login authenticates against the backend. Any pre-existing session is
// invalidated first, whether or not the attempt succeeds. On success the
// credential pair and profile are persisted and the profile is returned; on
// any failure the session stays logged out and ErrInvalidCredentials is
// returned regardless of the underlying cause.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.Logout(ctx); err != nil {
		return nil, err
	}

	resp, err := m.api.Login(ctx, email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "email", email, "error", err)
		return nil, ErrInvalidCredentials
	}

	if err := m.persistSession(ctx, resp); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.user = resp.User.Clone()
	m.state = StateAuthenticated
	m.mu.Unlock()
	m.notify()

	m.log.Info(ctx, "logged in", "email", resp.User.Email, "role", resp.User.Role)
	return resp.User.Clone(), nil
}

// persistSession writes the credential pair and profile in one atomic batch.
func (m *Manager) persistSession(ctx context.Context, resp *models.LoginResponse) error {
	profile, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	values := map[string][]byte{
		storage.KeyAccessToken: []byte(resp.Access),
		storage.KeyCurrentUser: profile,
	}
	if resp.Refresh != "" {
		values[storage.KeyRefreshToken] = []byte(resp.Refresh)
	}
	return m.store.SetMany(ctx, values)
}

// Logout clears the in-memory profile and deletes the persisted credential
// pair and cached profile. Safe to call when already logged out.
func (m *Manager) Logout(ctx context.Context) error {
	for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyCurrentUser} {
		if err := m.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	m.mu.Lock()
	wasAuthenticated := m.user != nil
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()

	if wasAuthenticated {
		m.notify()
		m.log.Info(ctx, "logged out")
	}
	return nil
}

// UpdateUser merges the given fields into the in-memory profile and
// re-persists the merged result. No-op when logged out; never contacts the
// network.
func (m *Manager) UpdateUser(ctx context.Context, updates ProfileUpdate) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}

	if updates.Name != nil {
		m.user.Name = *updates.Name
	}
	if updates.Phone != nil {
		m.user.Phone = *updates.Phone
	}
	if updates.Location != nil {
		m.user.Location = *updates.Location
	}
	if updates.Department != nil {
		m.user.Department = *updates.Department
	}
	if updates.Position != nil {
		m.user.Position = *updates.Position
	}
	if updates.Skills != nil {
		m.user.Skills = updates.Skills
	}
	merged, err := json.Marshal(m.user)
	m.mu.Unlock()
	if err != nil {
		return err
	}

	if err := m.store.Set(ctx, storage.KeyCurrentUser, merged); err != nil {
		return err
	}
	m.notify()
	return nil
}

// HandleExpired is the landing point for the transport's session-expiry hook.
// The transport has already wiped the persisted credentials; this drops the
// in-memory side to Anonymous.
func (m *Manager) HandleExpired() {
	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
	m.notify()
}

// Current returns a snapshot of the profile, or nil when logged out.
func (m *Manager) Current() *models.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user.Clone()
}

// State returns the lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Loading reports whether Initialize or Login is in flight, for UI gating.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Subscribe registers a change listener. Listeners receive a profile snapshot
// after every session mutation, nil when the session ended. Registration is
// permanent; meant for the lifetime of the composing app.
func (m *Manager) Subscribe(fn func(*models.UserProfile)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// TokenExpiresAt reads the stored access token's exp claim without verifying
// the signature (the client has no key material; this is display/advisory
// only). Returns the zero time when no token is stored.
func (m *Manager) TokenExpiresAt(ctx context.Context) (time.Time, error) {
	token, err := m.store.Get(ctx, storage.KeyAccessToken)
	if err != nil {
		return time.Time{}, err
	}
	if len(token) == 0 {
		return time.Time{}, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(token), claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return exp.Time, nil
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	if v && m.state == StateUninitialized {
		m.state = StateLoading
	}
	m.mu.Unlock()
}

func (m *Manager) setAnonymous() {
	m.mu.Lock()
	m.user = nil
	m.state = StateAnonymous
	m.mu.Unlock()
}

func (m *Manager) notify() {
	m.mu.RLock()
	snapshot := m.user.Clone()
	subs := make([]func(*models.UserProfile), len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func validShape(p *models.UserProfile) bool {
	return p.Email != "" && (p.Role == common.RoleAdmin || p.Role == common.RoleUser)
}

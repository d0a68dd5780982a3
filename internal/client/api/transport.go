package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/arkadym/careermate/internal/client/storage"
	"github.com/arkadym/careermate/internal/common"
	"github.com/arkadym/careermate/internal/logging"
)

// authTransport is the outbound gateway's middleware. Before every request it
// attaches the stored access token as a bearer credential (unless the caller
// set an Authorization header explicitly) plus a request id. On a 401 it
// performs exactly one silent refresh against the refresh endpoint and
// re-issues the original request once; the retry bookkeeping is local to
// RoundTrip, so a logical request can never be refreshed twice.
//
// The credential pair is read from the store on every request. The transport
// never caches its own copy, keeping the store the single source of truth
// shared with the session manager.
type authTransport struct {
	base       http.RoundTripper
	store      storage.Store
	refreshURL string

	// bare performs the refresh call itself and must not be intercepted,
	// otherwise a rejected refresh would recurse.
	bare *http.Client

	// Concurrent 401s coalesce into one in-flight refresh. Redundant
	// refreshes can rotate the refresh token out from under a sibling
	// request on backends that blacklist used tokens.
	group singleflight.Group

	// onExpired is the terminal fail-open: refresh failed, credentials are
	// wiped, and the app should return to its unauthenticated entry state.
	onExpired func()

	log logging.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	out := req.Clone(ctx)
	if out.Header.Get(common.RequestIDHeaderName) == "" {
		out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	explicitAuth := out.Header.Get(common.AuthHeaderName) != ""
	if !explicitAuth {
		if token, err := t.store.Get(ctx, storage.KeyAccessToken); err == nil && len(token) > 0 {
			out.Header.Set(common.AuthHeaderName, common.BearerPrefix+string(token))
		}
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		// network-level failures propagate unchanged, no retry
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || explicitAuth {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		// body cannot be replayed, the 401 has to stand
		return resp, nil
	}

	access, err := t.refresh(ctx)
	if err != nil {
		t.log.Warn(ctx, "token refresh failed, expiring session", "error", err)
		_ = resp.Body.Close()
		t.expire(ctx)
		return nil, ErrSessionExpired
	}
	_ = resp.Body.Close()

	retry := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	retry.Header.Set(common.RequestIDHeaderName, out.Header.Get(common.RequestIDHeaderName))
	retry.Header.Set(common.AuthHeaderName, common.BearerPrefix+access)

	// a second 401 propagates to the caller, no further retry
	return t.base.RoundTrip(retry)
}

// refresh exchanges the stored refresh token for a new access token and
// persists it. Coalesced across concurrent callers.
func (t *authTransport) refresh(ctx context.Context) (string, error) {
	access, err, _ := t.group.Do("refresh", func() (any, error) {
		refreshToken, err := t.store.Get(ctx, storage.KeyRefreshToken)
		if err != nil {
			return "", err
		}
		if len(refreshToken) == 0 {
			return "", fmt.Errorf("no refresh token stored")
		}

		body, err := json.Marshal(map[string]string{"refresh": string(refreshToken)})
		if err != nil {
			return "", err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := t.bare.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("refresh rejected: %s", resp.Status)
		}

		var parsed struct {
			Access string `json:"access"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return "", err
		}
		if parsed.Access == "" {
			return "", fmt.Errorf("refresh response without access token")
		}

		if err := t.store.Set(ctx, storage.KeyAccessToken, []byte(parsed.Access)); err != nil {
			return "", err
		}

		t.log.Debug(ctx, "access token refreshed")
		return parsed.Access, nil
	})
	if err != nil {
		return "", err
	}
	return access.(string), nil
}

// expire wipes the persisted credentials and cached profile, then notifies
// the application so it can fall back to its unauthenticated entry state.
func (t *authTransport) expire(ctx context.Context) {
	for _, key := range []string{storage.KeyAccessToken, storage.KeyRefreshToken, storage.KeyCurrentUser} {
		if err := t.store.Delete(ctx, key); err != nil {
			t.log.Error(ctx, "failed to clear credential", "key", key, "error", err)
		}
	}
	if t.onExpired != nil {
		t.onExpired()
	}
}

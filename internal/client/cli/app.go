package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arkadym/careermate/internal/client/api"
	"github.com/arkadym/careermate/internal/client/config"
	"github.com/arkadym/careermate/internal/client/models"
	"github.com/arkadym/careermate/internal/client/session"
	"github.com/arkadym/careermate/internal/client/storage"
	"github.com/arkadym/careermate/internal/logging"

	_ "modernc.org/sqlite"
)

const stateDBName = "careermate.db"

// sessionIface is the slice of the session manager the CLI uses.
// The real *session.Manager satisfies it; tests can provide a stub.
type sessionIface interface {
	Initialize(ctx context.Context) (*models.UserProfile, error)
	Login(ctx context.Context, email, password string) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, updates session.ProfileUpdate) error
	Current() *models.UserProfile
	HandleExpired()
	TokenExpiresAt(ctx context.Context) (time.Time, error)
}

type App struct {
	config  *config.Config
	session sessionIface
	api     api.Service
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
}

// NewApp wires the local encrypted store, the API gateway, and the session
// manager. Expired sessions drop the prompt back to the logged-out state via
// the gateway's OnSessionExpired hook.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, filepath.Join(cfg.DataDir, stateDBName))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store, err := storage.NewSealedStore(storage.NewSQLiteStore(db), cfg.DataDir)
	if err != nil {
		return nil, err
	}

	a := &App{config: cfg, log: log, reader: bufio.NewReader(os.Stdin)}

	apiClient := api.NewClient(api.Options{
		BaseURL:          cfg.ServerEndpointAddr,
		Store:            store,
		Timeout:          cfg.RequestTimeout,
		Logger:           log,
		OnSessionExpired: a.onSessionExpired,
	})

	a.api = apiClient
	a.session = session.NewManager(store, apiClient, log)
	a.db = db

	return a, nil
}

func (a *App) onSessionExpired() {
	if a.session != nil {
		a.session.HandleExpired()
	}
	printlnFn("Session expired, please log in again.")
}

// Run rehydrates the session from local storage and starts the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if _, err := a.session.Initialize(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	printlnFn("CareerMate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the local state database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) isAdmin() bool {
	return a.session.Current().IsAdmin()
}

func (a *App) getStatus() string {
	u := a.session.Current()
	if u == nil {
		return "(anonymous)"
	}
	if u.IsAdmin() {
		return fmt.Sprintf("(%s admin)", u.Email)
	}
	return fmt.Sprintf("(%s)", u.Email)
}

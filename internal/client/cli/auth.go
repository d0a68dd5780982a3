package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arkadym/careermate/internal/client/match"
	"github.com/arkadym/careermate/internal/client/session"
	"github.com/arkadym/careermate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for an email and password and authenticates against
// the backend. Login failures are reported uniformly; the caller cannot tell
// a bad password from a missing account. The password byte slice is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			printlnFn("Invalid credentials.")
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Logout clears the persisted session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the current profile snapshot and, when available, the access
// token expiry.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> role=%s", u.Name, u.Email, u.Role))
	if u.Department != "" || u.Position != "" {
		printlnFn(fmt.Sprintf("  %s / %s", u.Department, u.Position))
	}
	if skills := match.DecodeSkills(u.Skills); skills.Len() > 0 {
		printlnFn("  skills: " + strings.Join(skills.Sorted(), ", "))
	}
	if exp, err := a.session.TokenExpiresAt(ctx); err == nil {
		printlnFn("  token expires: " + exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}

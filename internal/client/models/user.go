// Package models defines the data shapes exchanged with the CareerMate
// backend and cached locally by the client.
package models

import (
	"github.com/arkadym/careermate/internal/common"
)

// UserProfile is the authenticated user's profile as the backend returns it
// on login and as it is cached locally between runs.
//
// Skills is left untyped on purpose: the backend stores it as a JSON field
// and over time it has held a proper string array, a single comma-separated
// string, and a JSON-encoded string of an array. match.DecodeSkills is the
// only place that should interpret it.
type UserProfile struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Location     string `json:"location,omitempty"`
	Role         string `json:"role"`
	Skills       any    `json:"skills,omitempty"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	JoinDate     string `json:"joinDate,omitempty"`
	IsFirstLogin bool   `json:"isFirstLogin,omitempty"`
}

// IsAdmin reports whether the profile carries the admin role.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == common.RoleAdmin
}

// Clone returns a shallow copy safe to hand out as a snapshot. Skills holds
// decoded JSON (strings, slices of strings) which consumers treat as
// read-only, so a shallow copy is enough.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// RegisterRequest is the payload for creating a new user (admin only).
// Skills is a plain array here: the client normalizes comma-separated input
// before sending, mirroring what the admin form did.
type RegisterRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
}

// RegisterResponse carries the generated temporary password for the new user.
type RegisterResponse struct {
	TempPassword string `json:"temp_password"`
}

// LoginResponse is the body of POST /login/.
type LoginResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *UserProfile `json:"user"`
}

// RefreshResponse is the body of POST /users/token/refresh/.
type RefreshResponse struct {
	Access string `json:"access"`
}

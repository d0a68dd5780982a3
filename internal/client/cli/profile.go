package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arkadym/careermate/internal/client/match"
	"github.com/arkadym/careermate/internal/client/session"
)

// UpdateProfile walks the editable profile fields, prompting for each one.
// An empty answer keeps the current value. Changes are merged into the
// session snapshot and re-persisted locally.
func (a *App) UpdateProfile(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	var updates session.ProfileUpdate

	prompts := []struct {
		label   string
		current string
		dst     **string
	}{
		{"Name", u.Name, &updates.Name},
		{"Phone", u.Phone, &updates.Phone},
		{"Location", u.Location, &updates.Location},
		{"Department", u.Department, &updates.Department},
		{"Position", u.Position, &updates.Position},
	}

	for _, p := range prompts {
		answer, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", p.label, p.current), os.Stdout)
		if err != nil {
			return err
		}
		if answer != "" {
			v := answer
			*p.dst = &v
		}
	}

	skills, err := GetCommaList(a.reader, "Skills (empty keeps current)", os.Stdout)
	if err != nil {
		return err
	}
	if len(skills) > 0 {
		updates.Skills = skills
	}

	if err := a.session.UpdateUser(ctx, updates); err != nil {
		a.log.Error(ctx, "profile update failed", "error", err)
		return err
	}

	printlnFn("Profile updated.")
	return nil
}

// UploadResume sends a resume file to the backend. The server parses it and
// returns the refreshed skill list, which is merged into the local profile.
func (a *App) UploadResume(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Cannot read file:", err.Error())
		return err
	}

	skills, err := a.api.UploadResume(ctx, filepath.Base(path), data)
	if err != nil {
		a.log.Error(ctx, "resume upload failed", "error", err)
		return err
	}

	if decoded := match.DecodeSkills(skills); decoded.Len() > 0 {
		if err := a.session.UpdateUser(ctx, session.ProfileUpdate{Skills: skills}); err != nil {
			a.log.Warn(ctx, "skill sync failed", "error", err)
		}
	}

	printlnFn("Resume uploaded.")
	return nil
}

// UploadImage sends a profile image to the backend.
func (a *App) UploadImage(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		printlnFn("Cannot read file:", err.Error())
		return err
	}

	if _, err := a.api.UploadImage(ctx, filepath.Base(path), data); err != nil {
		a.log.Error(ctx, "image upload failed", "error", err)
		return err
	}

	printlnFn("Image uploaded.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/arkadym/careermate/internal/client/models"
)

// Register creates a new user account and prints the generated temporary
// password. Admin only.
func (a *App) Register(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	req := &models.RegisterRequest{}
	var err error
	if req.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if req.Department, err = getSimpleText(a.reader, "Department", os.Stdout); err != nil {
		return err
	}
	if req.Position, err = getSimpleText(a.reader, "Position", os.Stdout); err != nil {
		return err
	}
	if req.Phone, err = getSimpleText(a.reader, "Phone", os.Stdout); err != nil {
		return err
	}
	if req.Phone == "" {
		// the backend requires a unique phone per account
		printlnFn("Phone is required.")
		return nil
	}
	if req.Location, err = getSimpleText(a.reader, "Location (optional)", os.Stdout); err != nil {
		return err
	}
	if req.Skills, err = GetCommaList(a.reader, "Skills", os.Stdout); err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, req)
	if err != nil {
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Registered %s, temporary password: %s", req.Email, resp.TempPassword))
	return nil
}

// Summary prints the aggregated admin dashboard. Admin only.
func (a *App) Summary(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	s, err := a.api.AdminSummary(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching summary failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Users: %d  Jobs: %d  Courses: %d", s.TotalUsers, s.TotalJobs, s.TotalCourses))
	for _, u := range s.Users {
		printlnFn(fmt.Sprintf("  %s <%s> %s  progress=%.0f%%  attendance=%.0f%%  courses=%d",
			u.Name, u.Email, u.Department, u.Progress, u.Attendance, u.CoursesCompleted))
	}
	return nil
}

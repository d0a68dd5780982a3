package cli

import (
	"context"
	"fmt"

	"github.com/arkadym/careermate/internal/client/models"
)

// Attendance prints the attendance history, most recent first as the backend
// returns it. An empty history is not an error.
func (a *App) Attendance(ctx context.Context) error {
	records, err := a.api.Attendance(ctx)
	if err != nil {
		a.log.Error(ctx, "fetching attendance failed", "error", err)
		return err
	}
	if len(records) == 0 {
		printlnFn("No attendance records yet.")
		return nil
	}
	for _, r := range records {
		line := fmt.Sprintf("%s  %s", r.Date, r.Status)
		if r.CheckIn != "" {
			line += "  check-in " + r.CheckIn
		}
		printlnFn(line)
	}
	return nil
}

// MarkAttendance records today's attendance. The status is validated locally
// before the request goes out.
func (a *App) MarkAttendance(ctx context.Context, status string) error {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		printlnFn("Usage: mark <Present|Absent>")
		return nil
	}

	rec, err := a.api.MarkAttendance(ctx, status)
	if err != nil {
		a.log.Error(ctx, "marking attendance failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Marked %s for %s", rec.Status, rec.Date))
	return nil
}

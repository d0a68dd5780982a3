package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arkadym/careermate/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestMatchedJobs_FiltersBySkills(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{
		Email: "dev@corp.io", Role: "user", Skills: []string{"react", "Go"},
	}}
	svc := &fakeService{jobs: []models.Job{
		{ID: 1, JobTitle: "Frontend Dev", Company: "Acme", JobType: "full-time", RequiredSkills: []string{"React", "CSS"}},
		{ID: 2, JobTitle: "Sysadmin", Company: "Acme", JobType: "full-time", RequiredSkills: []string{"Ansible"}},
		{ID: 3, JobTitle: "Backend Dev", Company: "Beta", JobType: "remote", RequiredSkills: "go, postgres"},
	}}
	a := newTestApp(s, svc)

	require.NoError(t, a.MatchedJobs(context.Background()))

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Frontend Dev")
	assert.Contains(t, out, "Backend Dev")
	assert.NotContains(t, out, "Sysadmin")
}

func TestMatchedCourses_EmptySkillsMatchNothing(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "new@corp.io", Role: "user"}}
	svc := &fakeService{courses: []models.Course{
		{ID: 1, CourseTitle: "Advanced React", Instructor: "Kim", SkillsCovered: []string{"React"}},
	}}
	a := newTestApp(s, svc)

	require.NoError(t, a.MatchedCourses(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "No courses found.")
}

func TestAttendance_EmptyHistory(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "a@b.c", Role: "user"}}
	a := newTestApp(s, &fakeService{})

	require.NoError(t, a.Attendance(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "No attendance records yet.")
}

func TestMarkAttendance_RejectsUnknownStatus(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "a@b.c", Role: "user"}}
	svc := &fakeService{}
	a := newTestApp(s, svc)

	require.NoError(t, a.MarkAttendance(context.Background(), "Late"))
	assert.Nil(t, svc.marked, "request must not go out")
	assert.Contains(t, strings.Join(*lines, "\n"), "Usage: mark")
}

func TestMarkAttendance_Present(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "a@b.c", Role: "user"}}
	svc := &fakeService{}
	a := newTestApp(s, svc)

	require.NoError(t, a.MarkAttendance(context.Background(), models.AttendancePresent))
	require.NotNil(t, svc.marked)
	assert.Equal(t, "Present", svc.marked.Status)
	assert.Contains(t, strings.Join(*lines, "\n"), "Marked Present")
}

func TestChat_PrintsAnswer(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "a@b.c", Role: "user"}}
	svc := &fakeService{answer: "Polish your resume."}
	a := newTestApp(s, svc)
	a.reader = bufio.NewReader(strings.NewReader("How do I grow?\n\n"))

	require.NoError(t, a.Chat(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "Polish your resume.")
}

func TestUploadResume_SyncsSkills(t *testing.T) {
	capturePrintln(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("resume body"), 0o600))

	s := &fakeSession{user: &models.UserProfile{Email: "a@b.c", Role: "user"}}
	svc := &fakeService{resumeSkills: []string{"Go", "SQL"}}
	a := newTestApp(s, svc)

	require.NoError(t, a.UploadResume(context.Background(), path))
	require.NotNil(t, s.updates, "skills not merged into profile")
	assert.Equal(t, []string{"Go", "SQL"}, s.updates.Skills)
}

func TestUploadResume_MissingFile(t *testing.T) {
	capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "a@b.c", Role: "user"}}
	a := newTestApp(s, &fakeService{})

	err := a.UploadResume(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
}

func TestAdminGate(t *testing.T) {
	lines := capturePrintln(t)

	s := &fakeSession{user: &models.UserProfile{Email: "dev@corp.io", Role: "user"}}
	a := newTestApp(s, &fakeService{})

	require.NoError(t, a.Register(context.Background()))
	require.NoError(t, a.AddJob(context.Background()))
	require.NoError(t, a.AddCourse(context.Background()))
	require.NoError(t, a.Summary(context.Background()))

	for _, line := range *lines {
		assert.Equal(t, "Admin only.", line)
	}
	assert.Len(t, *lines, 4)
}

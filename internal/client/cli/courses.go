package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arkadym/careermate/internal/client/match"
	"github.com/arkadym/careermate/internal/client/models"
)

// Courses lists every posted course.
func (a *App) Courses(ctx context.Context) error {
	courses, err := a.api.ListCourses(ctx)
	if err != nil {
		a.log.Error(ctx, "listing courses failed", "error", err)
		return err
	}
	printCourses(courses)
	return nil
}

// MatchedCourses lists only the courses whose covered skills overlap the
// current user's skills. Ordering follows the backend listing.
func (a *App) MatchedCourses(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	courses, err := a.api.ListCourses(ctx)
	if err != nil {
		a.log.Error(ctx, "listing courses failed", "error", err)
		return err
	}
	printCourses(match.MatchCourses(u.Skills, courses))
	return nil
}

// AddCourse interactively posts a new course. Admin only.
func (a *App) AddCourse(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	course := &models.Course{}
	var err error
	if course.CourseTitle, err = getSimpleText(a.reader, "Course title", os.Stdout); err != nil {
		return err
	}
	if course.Instructor, err = getSimpleText(a.reader, "Instructor", os.Stdout); err != nil {
		return err
	}
	if course.Duration, err = getSimpleText(a.reader, "Duration", os.Stdout); err != nil {
		return err
	}
	if course.Level, err = getSimpleText(a.reader, "Level", os.Stdout); err != nil {
		return err
	}
	if course.Category, err = getSimpleText(a.reader, "Category", os.Stdout); err != nil {
		return err
	}
	skills, err := GetCommaList(a.reader, "Skills covered", os.Stdout)
	if err != nil {
		return err
	}
	course.SkillsCovered = skills
	if course.CourseDescription, err = GetMultiline(a.reader, "Description", os.Stdout); err != nil {
		return err
	}

	created, err := a.api.CreateCourse(ctx, course)
	if err != nil {
		a.log.Error(ctx, "creating course failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Posted course #%d: %s", created.ID, created.CourseTitle))
	return nil
}

func printCourses(courses []models.Course) {
	if len(courses) == 0 {
		printlnFn("No courses found.")
		return
	}
	for _, c := range courses {
		line := fmt.Sprintf("#%d %s by %s", c.ID, c.CourseTitle, c.Instructor)
		if c.Level != "" {
			line += " [" + c.Level + "]"
		}
		if skills := match.DecodeSkills(c.SkillsCovered); skills.Len() > 0 {
			line += " covers: " + strings.Join(skills.Sorted(), ", ")
		}
		printlnFn(line)
	}
}

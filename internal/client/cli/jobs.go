package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/arkadym/careermate/internal/client/match"
	"github.com/arkadym/careermate/internal/client/models"
)

// Jobs lists every posted job opportunity.
func (a *App) Jobs(ctx context.Context) error {
	jobs, err := a.api.ListJobs(ctx)
	if err != nil {
		a.log.Error(ctx, "listing jobs failed", "error", err)
		return err
	}
	printJobs(jobs)
	return nil
}

// MatchedJobs lists only the jobs whose required skills overlap the current
// user's skills. Ordering follows the backend listing.
func (a *App) MatchedJobs(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	jobs, err := a.api.ListJobs(ctx)
	if err != nil {
		a.log.Error(ctx, "listing jobs failed", "error", err)
		return err
	}
	printJobs(match.MatchJobs(u.Skills, jobs))
	return nil
}

// AddJob interactively posts a new job opportunity. Admin only.
func (a *App) AddJob(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	job := &models.Job{}
	var err error
	if job.JobTitle, err = getSimpleText(a.reader, "Job title", os.Stdout); err != nil {
		return err
	}
	if job.Company, err = getSimpleText(a.reader, "Company", os.Stdout); err != nil {
		return err
	}
	if job.Location, err = getSimpleText(a.reader, "Location", os.Stdout); err != nil {
		return err
	}
	if job.JobType, err = getSimpleText(a.reader, "Job type (full-time, part-time, internship, contract, remote)", os.Stdout); err != nil {
		return err
	}
	if job.Salary, err = getSimpleText(a.reader, "Salary", os.Stdout); err != nil {
		return err
	}
	skills, err := GetCommaList(a.reader, "Required skills", os.Stdout)
	if err != nil {
		return err
	}
	job.RequiredSkills = skills
	if job.JobDescription, err = GetMultiline(a.reader, "Description", os.Stdout); err != nil {
		return err
	}

	created, err := a.api.CreateJob(ctx, job)
	if err != nil {
		a.log.Error(ctx, "creating job failed", "error", err)
		return err
	}

	printlnFn(fmt.Sprintf("Posted job #%d: %s", created.ID, created.JobTitle))
	return nil
}

func printJobs(jobs []models.Job) {
	if len(jobs) == 0 {
		printlnFn("No jobs found.")
		return
	}
	for _, j := range jobs {
		line := fmt.Sprintf("#%d %s @ %s [%s]", j.ID, j.JobTitle, j.Company, j.JobType)
		if j.Location != "" {
			line += " " + j.Location
		}
		if skills := match.DecodeSkills(j.RequiredSkills); skills.Len() > 0 {
			line += " needs: " + strings.Join(skills.Sorted(), ", ")
		}
		printlnFn(line)
	}
}

package match

import (
	"github.com/arkadym/careermate/internal/client/models"
)

// MatchJobs returns the jobs sharing at least one skill with the user,
// preserving input order. An empty or undecodable user skill list matches
// nothing; a job with no decodable required skills is never matched.
// No scoring is computed, inclusion is strictly boolean.
func MatchJobs(userSkillsRaw any, jobs []models.Job) []models.Job {
	userSkills := DecodeSkills(userSkillsRaw)
	if userSkills.Len() == 0 {
		return nil
	}

	var matched []models.Job
	for _, job := range jobs {
		if userSkills.Intersects(DecodeSkills(job.RequiredSkills)) {
			matched = append(matched, job)
		}
	}
	return matched
}

// MatchCourses applies the same predicate over a course's covered skills.
func MatchCourses(userSkillsRaw any, courses []models.Course) []models.Course {
	userSkills := DecodeSkills(userSkillsRaw)
	if userSkills.Len() == 0 {
		return nil
	}

	var matched []models.Course
	for _, course := range courses {
		if userSkills.Intersects(DecodeSkills(course.SkillsCovered)) {
			matched = append(matched, course)
		}
	}
	return matched
}

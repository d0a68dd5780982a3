package models

// Job is a posted job opportunity. Field names follow the backend's
// serializer output.
//
// RequiredSkills has the same heterogeneous history as UserProfile.Skills;
// only match.DecodeSkills should interpret it.
type Job struct {
	ID             int64  `json:"id"`
	JobTitle       string `json:"job_title"`
	Company        string `json:"company"`
	Location       string `json:"location,omitempty"`
	JobType        string `json:"job_type"`
	Salary         string `json:"salary,omitempty"`
	RequiredSkills any    `json:"required_skills,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	Requirements   string `json:"requirements,omitempty"`
	PostedOn       string `json:"posted_on,omitempty"`
}

// Course is a posted course opportunity.
type Course struct {
	ID                int64  `json:"id"`
	CourseTitle       string `json:"course_title"`
	Instructor        string `json:"instructor"`
	Duration          string `json:"duration,omitempty"`
	Level             string `json:"level,omitempty"`
	Category          string `json:"category,omitempty"`
	SkillsCovered     any    `json:"skills_covered,omitempty"`
	CourseDescription string `json:"course_description,omitempty"`
	Prerequisites     string `json:"prerequisites,omitempty"`
	PostedOn          string `json:"posted_on,omitempty"`
}

// Allowed job types, as the backend validates them.
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
	JobTypeRemote     = "remote"
)

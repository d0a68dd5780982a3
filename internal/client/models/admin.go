package models

import "encoding/json"

// AdminUserSummary is one row of the admin dashboard's user table.
type AdminUserSummary struct {
	ID               string  `json:"id,omitempty"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Department       string  `json:"department,omitempty"`
	JoinDate         string  `json:"joinDate,omitempty"`
	Progress         float64 `json:"progress,omitempty"`
	Attendance       float64 `json:"attendance,omitempty"`
	CoursesCompleted int     `json:"coursesCompleted,omitempty"`
	Opportunities    int     `json:"opportunities,omitempty"`
}

// AdminSummary is the body of GET /admin-aggregated/.
type AdminSummary struct {
	Users        []AdminUserSummary `json:"users"`
	Jobs         []Job              `json:"jobs,omitempty"`
	Courses      []Course           `json:"courses,omitempty"`
	TotalUsers   int                `json:"total_users"`
	TotalCourses int                `json:"total_courses"`
	TotalJobs    int                `json:"total_jobs"`
}

// FileRef points at an uploaded file (resume or profile image) by URL.
type FileRef struct {
	Resume string `json:"resume,omitempty"`
	Image  string `json:"image,omitempty"`
}

// ChatRequest is the body of POST /api/llm-genAi/.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// ChatResponse carries the model's reply. On success the backend sends
// output as a plain string; when its upstream provider fails it nests an
// error object instead, so unmarshalling is tolerant of both shapes.
type ChatResponse struct {
	Output string `json:"-"`
}

func (c *ChatResponse) UnmarshalJSON(data []byte) error {
	var body struct {
		Output any `json:"output"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return err
	}
	switch v := body.Output.(type) {
	case string:
		c.Output = v
	case map[string]any:
		if e, ok := v["error"].(string); ok {
			c.Output = "upstream error: " + e
		}
	}
	return nil
}

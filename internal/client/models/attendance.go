package models

// Attendance statuses the backend accepts.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// AttendanceRecord is one day's attendance entry.
// CheckIn is "-" for absent days and empty when the backend omitted it.
type AttendanceRecord struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	CheckIn string `json:"check_in,omitempty"`
}

// MarkAttendanceRequest is the body of POST /api/mark-attendance/.
type MarkAttendanceRequest struct {
	Status string `json:"status"`
}

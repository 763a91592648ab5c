package dto

import "time"

// ReportMeta identifies the course a report covers. Every report embeds it.
type ReportMeta struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

// Envelope wraps one generated report for serialization to collaborators.
// The report id and timestamp live here, outside the analytics passes, which
// stay deterministic for identical input.
type Envelope struct {
	ReportID    string    `json:"report_id"`
	Report      string    `json:"report"`
	GeneratedAt time.Time `json:"generated_at"`
	Data        any       `json:"data"`
}

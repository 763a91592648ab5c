package dto

// StudentBasic carries one student's profile fields.
type StudentBasic struct {
	StudentID  string   `json:"student_id"`
	Username   *string  `json:"username,omitempty"`
	Name       *string  `json:"name,omitempty"`
	Class      *string  `json:"class,omitempty"`
	Major      *string  `json:"major,omitempty"`
	LoginTimes int      `json:"login_times"`
	FinalScore *float64 `json:"final_score,omitempty"`
}

// StudentVideoSummary totals one student's video activity.
type StudentVideoSummary struct {
	TotalTime     float64 `json:"total_time"`
	TotalTimeText string  `json:"total_time_text"`
	RecordCount   int     `json:"record_count"`
}

// ScoredItem is one graded homework or exam with its resolved resource.
// Percentage is nil when the record carries no positive total score.
type ScoredItem struct {
	ResourceID   string   `json:"resource_id"`
	Title        string   `json:"title"`
	Score        float64  `json:"score"`
	TotalScore   float64  `json:"total_score"`
	Percentage   *float64 `json:"percentage,omitempty"`
	TeachingWeek *int     `json:"teaching_week,omitempty"`
}

// StudentAttendanceEvent is one check-in outcome in a student's history.
type StudentAttendanceEvent struct {
	CheckItemID string `json:"check_item_id"`
	Name        string `json:"name"`
	EventTime   string `json:"event_time"`
	Status      string `json:"status"`
}

// StudentAttendance buckets one student's attendance records.
type StudentAttendance struct {
	Total          int                      `json:"total"`
	Present        int                      `json:"present"`
	Absent         int                      `json:"absent"`
	Leave          int                      `json:"leave"`
	Late           int                      `json:"late"`
	EarlyLeave     int                      `json:"early_leave"`
	Unknown        int                      `json:"unknown"`
	AttendanceRate float64                  `json:"attendance_rate"`
	Events         []StudentAttendanceEvent `json:"events"`
}

// StudentDetailReport is one student's full activity profile.
type StudentDetailReport struct {
	ReportMeta
	Basic        StudentBasic        `json:"basic"`
	Video        StudentVideoSummary `json:"video"`
	Homeworks    []ScoredItem        `json:"homeworks"`
	Exams        []ScoredItem        `json:"exams"`
	Attendance   StudentAttendance   `json:"attendance"`
	AnalysisText string              `json:"analysis_text"`
}

package dto

// AttendanceSummary buckets attendance records by status with global rates.
type AttendanceSummary struct {
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Leave       int     `json:"leave"`
	Late        int     `json:"late"`
	EarlyLeave  int     `json:"early_leave"`
	Unknown     int     `json:"unknown"`
	PresentRate float64 `json:"present_rate"`
	AbsentRate  float64 `json:"absent_rate"`
}

// AttendanceEvent aggregates the records of one check-in event.
type AttendanceEvent struct {
	CheckItemID string  `json:"check_item_id"`
	Name        string  `json:"name"`
	StartTime   string  `json:"start_time"`
	Total       int     `json:"total"`
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Leave       int     `json:"leave"`
	Late        int     `json:"late"`
	EarlyLeave  int     `json:"early_leave"`
	Unknown     int     `json:"unknown"`
	PresentRate float64 `json:"present_rate"`
	AbsentRate  float64 `json:"absent_rate"`
}

// AttendanceReport is the global plus per-event attendance aggregation.
type AttendanceReport struct {
	ReportMeta
	TotalStudents int               `json:"total_students"`
	TotalRecords  int               `json:"total_records"`
	EventCount    int               `json:"event_count"`
	Summary       AttendanceSummary `json:"summary"`
	Events        []AttendanceEvent `json:"events"`
	AnalysisText  string            `json:"analysis_text"`
}

// AttendanceDateEvent is one check-in event with its timestamp resolved into
// an ISO date and a display label.
type AttendanceDateEvent struct {
	CheckItemID    string  `json:"check_item_id"`
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	DateLabel      string  `json:"date_label"`
	StartTime      string  `json:"start_time"`
	Total          int     `json:"total"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Leave          int     `json:"leave"`
	Late           int     `json:"late"`
	EarlyLeave     int     `json:"early_leave"`
	Unknown        int     `json:"unknown"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// AttendanceEventsReport is the date-oriented attendance pass, surfacing the
// best and worst attended events.
type AttendanceEventsReport struct {
	ReportMeta
	TotalStudents int                   `json:"total_students"`
	Events        []AttendanceDateEvent `json:"events"`
	BestEvent     *AttendanceDateEvent  `json:"best_event,omitempty"`
	WorstEvent    *AttendanceDateEvent  `json:"worst_event,omitempty"`
	AnalysisText  string                `json:"analysis_text"`
}

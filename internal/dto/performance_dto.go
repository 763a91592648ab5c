package dto

// StudentPerformance summarises one student's activity and grades.
type StudentPerformance struct {
	StudentID        string  `json:"student_id"`
	VideoWatchTime   float64 `json:"video_watch_time"`
	VideoCount       int     `json:"video_count"`
	HomeworkCount    int     `json:"homework_count"`
	AvgHomeworkScore float64 `json:"avg_homework_score"`
	ExamCount        int     `json:"exam_count"`
	AvgExamScore     float64 `json:"avg_exam_score"`
	AttendanceRate   float64 `json:"attendance_rate"`
}

// MetricSummary aggregates one performance metric across the students that
// contributed at least one value to it.
type MetricSummary struct {
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// PerformanceReport ranks students and aggregates per-metric distributions.
type PerformanceReport struct {
	ReportMeta
	TotalStudents  int                      `json:"total_students"`
	AverageStats   map[string]MetricSummary `json:"average_stats"`
	StudentDetails []StudentPerformance     `json:"student_details"`
	TopStudents    []StudentPerformance     `json:"top_students"`
	AnalysisText   string                   `json:"analysis_text"`
}

package dto

// ResourceDetail enriches one resource entry in the overview with its
// counters and teaching week.
type ResourceDetail struct {
	ResourceID    string `json:"resource_id"`
	Title         string `json:"title"`
	Type          string `json:"resource_type"`
	ViewTimes     int    `json:"view_times"`
	DownloadTimes int    `json:"download_times"`
	TeachingWeek  *int   `json:"teaching_week,omitempty"`
}

// OverviewReport counts resources by type and activity records across all
// students of a course.
type OverviewReport struct {
	ReportMeta
	ResourceCount   int                         `json:"resource_count"`
	ResourceStats   map[string]int              `json:"resource_stats"`
	ResourceTypes   map[string][]ResourceDetail `json:"resource_types"`
	TotalStudents   int                         `json:"total_students"`
	VideoCount      int                         `json:"video_count"`
	HomeworkCount   int                         `json:"homework_count"`
	ExamCount       int                         `json:"exam_count"`
	AttendanceCount int                         `json:"attendance_count"`
	AnalysisText    string                      `json:"analysis_text"`
}

// ResourceTypeUsage aggregates view/download totals for one resource type.
type ResourceTypeUsage struct {
	Type           string `json:"type"`
	Count          int    `json:"count"`
	TotalViews     int    `json:"total_views"`
	TotalDownloads int    `json:"total_downloads"`
}

// WeekStat counts resources published in one teaching week.
type WeekStat struct {
	Resources int `json:"resources"`
	Videos    int `json:"videos"`
	Homeworks int `json:"homeworks"`
}

// HomeworkDetail reports submission coverage for one homework resource.
type HomeworkDetail struct {
	ResourceID     string  `json:"resource_id"`
	Title          string  `json:"title"`
	SubmittedCount int     `json:"submitted_count"`
	TotalStudents  int     `json:"total_students"`
	CompletionRate float64 `json:"completion_rate"`
	TeachingWeek   *int    `json:"teaching_week,omitempty"`
}

// StatisticsReport layers per-type, per-week and per-homework aggregates on
// top of the overview.
type StatisticsReport struct {
	ReportMeta
	Overview        OverviewReport      `json:"overview"`
	ResourceUsage   []ResourceTypeUsage `json:"resource_usage"`
	WeekStats       map[int]WeekStat    `json:"week_stats"`
	HomeworkDetails []HomeworkDetail    `json:"homework_details"`
	AnalysisText    string              `json:"analysis_text"`
}

package dto

// PathStep is one watched video inside a student's learning path.
type PathStep struct {
	ResourceID string  `json:"resource_id"`
	Title      string  `json:"title"`
	ViewTime   float64 `json:"view_time"`
	StartTime  *string `json:"start_time,omitempty"`
}

// StudentPath is one student's time-ordered path, truncated to its first
// steps.
type StudentPath struct {
	StudentID string     `json:"student_id"`
	Path      []PathStep `json:"path"`
}

// PathExample names one student following a common path.
type PathExample struct {
	StudentID  string   `json:"student_id"`
	PathTitles []string `json:"path_titles"`
}

// CommonPath is one frequent opening sequence shared by several students.
type CommonPath struct {
	ResourceIDs []string      `json:"resource_ids"`
	PathTitles  []string      `json:"path_titles"`
	Frequency   int           `json:"frequency"`
	Percentage  float64       `json:"percentage"`
	Tag         string        `json:"tag,omitempty"`
	Description string        `json:"description"`
	Examples    []PathExample `json:"examples"`
}

// LearningPathReport mines common opening sequences and path diversity from
// student video histories.
type LearningPathReport struct {
	ReportMeta
	TotalStudents      int           `json:"total_students"`
	AnalyzedStudents   int           `json:"analyzed_students"`
	UniquePatternCount int           `json:"unique_pattern_count"`
	DiversityRatio     float64       `json:"diversity_ratio"`
	DiversityLevel     string        `json:"diversity_level"`
	LearningPaths      []StudentPath `json:"learning_paths"`
	CommonPaths        []CommonPath  `json:"common_paths"`
	AnalysisText       string        `json:"analysis_text"`
}

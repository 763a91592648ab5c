package models

import "strings"

// AttendStatus classifies a single attendance record.
type AttendStatus string

const (
	AttendPresent    AttendStatus = "present"
	AttendAbsent     AttendStatus = "absent"
	AttendLeave      AttendStatus = "leave"
	AttendLate       AttendStatus = "late"
	AttendEarlyLeave AttendStatus = "early_leave"
	AttendUnknown    AttendStatus = "unknown"
)

// ResourceType classifies a course resource.
type ResourceType string

const (
	ResourceVideo      ResourceType = "video"
	ResourceHomework   ResourceType = "homework"
	ResourceExam       ResourceType = "exam"
	ResourceAttachment ResourceType = "attachment"
	ResourceOther      ResourceType = "other"
)

// Lookup tables are built once here and never mutated. The persisted format
// carries Chinese status/type labels with several synonyms per status; each
// synonym must land on the same variant.
var attendStatusLookup = map[string]AttendStatus{
	"出勤":          AttendPresent,
	"到课":          AttendPresent,
	"缺勤":          AttendAbsent,
	"旷课":          AttendAbsent,
	"缺课":          AttendAbsent,
	"请假":          AttendLeave,
	"迟到":          AttendLate,
	"早退":          AttendEarlyLeave,
	"未知":          AttendUnknown,
	"present":     AttendPresent,
	"absent":      AttendAbsent,
	"leave":       AttendLeave,
	"late":        AttendLate,
	"early_leave": AttendEarlyLeave,
}

var resourceTypeLookup = map[string]ResourceType{
	"视频":         ResourceVideo,
	"作业":         ResourceHomework,
	"考试":         ResourceExam,
	"附件":         ResourceAttachment,
	"其他":         ResourceOther,
	"video":      ResourceVideo,
	"homework":   ResourceHomework,
	"exam":       ResourceExam,
	"attachment": ResourceAttachment,
	"other":      ResourceOther,
}

// AttendStatusFromRaw maps a raw status label to its variant. Unmapped input
// resolves to AttendUnknown, never an error.
func AttendStatusFromRaw(raw string) AttendStatus {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AttendUnknown
	}
	if status, ok := attendStatusLookup[trimmed]; ok {
		return status
	}
	if status, ok := attendStatusLookup[strings.ToLower(trimmed)]; ok {
		return status
	}
	return AttendUnknown
}

// ResourceTypeFromRaw resolves a raw type label: exact lookup first, then
// keyword heuristics (case-insensitive for Latin tokens), falling back to
// ResourceOther.
func ResourceTypeFromRaw(raw string) ResourceType {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ResourceOther
	}
	if t, ok := resourceTypeLookup[trimmed]; ok {
		return t
	}
	lower := strings.ToLower(trimmed)
	if t, ok := resourceTypeLookup[lower]; ok {
		return t
	}

	switch {
	case strings.Contains(trimmed, "视频") || strings.Contains(lower, "video"):
		return ResourceVideo
	case strings.Contains(trimmed, "作业") || strings.Contains(lower, "homework"):
		return ResourceHomework
	case strings.Contains(trimmed, "考试") || strings.Contains(trimmed, "测验") || strings.Contains(lower, "exam"):
		return ResourceExam
	case strings.Contains(trimmed, "附件") || strings.Contains(lower, "ppt") || strings.Contains(lower, "pdf"):
		return ResourceAttachment
	default:
		return ResourceOther
	}
}

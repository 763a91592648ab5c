package models

// VideoRecord is one watch session of a video resource.
type VideoRecord struct {
	ResourceID string  `json:"resource_id"`
	ViewTime   float64 `json:"view_time"`
	StartTime  *string `json:"start_time,omitempty"`
}

// VideoRecordFromRaw normalizes a raw video record. Watch time is clamped to
// zero; the start timestamp is kept opaque and unparsed.
func VideoRecordFromRaw(raw map[string]any) VideoRecord {
	if len(raw) == 0 {
		return VideoRecord{}
	}
	record := VideoRecord{
		ResourceID: Stringify(raw["resource_id"]),
		ViewTime:   max(0, SafeFloat(raw["view_time"], 0)),
	}
	if v, ok := raw["start_time"]; ok && v != nil {
		s := Stringify(v)
		record.StartTime = &s
	}
	return record
}

// HomeworkRecord is one homework submission with its grading.
type HomeworkRecord struct {
	ResourceID string  `json:"resource_id"`
	Score      float64 `json:"score"`
	TotalScore float64 `json:"total_score"`
}

// ExamRecord is one exam sitting with its grading.
type ExamRecord struct {
	ResourceID string  `json:"resource_id"`
	Score      float64 `json:"score"`
	TotalScore float64 `json:"total_score"`
}

// clampScore defends against malformed upstream grades: a negative total
// becomes zero, and a score above a positive total is pulled down to it.
func clampScore(raw map[string]any) (score, total float64) {
	total = max(0, SafeFloat(raw["total_score"], 0))
	score = SafeFloat(raw["score"], 0)
	if total > 0 && score > total {
		score = total
	}
	return score, total
}

// HomeworkRecordFromRaw normalizes a raw homework record.
func HomeworkRecordFromRaw(raw map[string]any) HomeworkRecord {
	if len(raw) == 0 {
		return HomeworkRecord{}
	}
	score, total := clampScore(raw)
	return HomeworkRecord{
		ResourceID: Stringify(raw["resource_id"]),
		Score:      score,
		TotalScore: total,
	}
}

// ExamRecordFromRaw normalizes a raw exam record.
func ExamRecordFromRaw(raw map[string]any) ExamRecord {
	if len(raw) == 0 {
		return ExamRecord{}
	}
	score, total := clampScore(raw)
	return ExamRecord{
		ResourceID: Stringify(raw["resource_id"]),
		Score:      score,
		TotalScore: total,
	}
}

// AttendanceRecord is one check-in outcome for one student.
type AttendanceRecord struct {
	Status      AttendStatus `json:"status"`
	CheckItemID string       `json:"check_item_id"`
	EventTime   string       `json:"event_time"`
	Name        string       `json:"name"`
}

// AttendanceRecordFromRaw normalizes a raw attendance record. The event time
// is the first non-empty of several historical raw fields; the event label
// falls back to a fixed placeholder so grouping keys stay non-empty.
func AttendanceRecordFromRaw(raw map[string]any) AttendanceRecord {
	if len(raw) == 0 {
		return AttendanceRecord{Status: AttendUnknown}
	}
	name := firstString(raw, "name", "title")
	if name == "" {
		name = "unnamed check-in"
	}
	return AttendanceRecord{
		Status:      AttendStatusFromRaw(Stringify(raw["attend_status"])),
		CheckItemID: Stringify(raw["check_item_id"]),
		EventTime:   firstString(raw, "check_in_time", "create_time", "start_time", "time"),
		Name:        name,
	}
}

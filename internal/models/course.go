package models

import "strings"

// Resource is one published course resource (video, homework sheet, exam,
// attachment) with its aggregate counters.
type Resource struct {
	ResourceID    string       `json:"resource_id"`
	Title         string       `json:"title"`
	Type          ResourceType `json:"resource_type"`
	TeachingWeek  *int         `json:"teaching_week,omitempty"`
	ViewTimes     int          `json:"view_times"`
	DownloadTimes int          `json:"download_times"`
}

// ResourceFromRaw normalizes a raw resource object. Counters are clamped to
// zero; the teaching week stays nil when the document has none.
func ResourceFromRaw(raw map[string]any) Resource {
	if len(raw) == 0 {
		return Resource{Type: ResourceOther}
	}
	resource := Resource{
		ResourceID:    Stringify(raw["resource_id"]),
		Title:         Stringify(raw["title"]),
		Type:          ResourceTypeFromRaw(firstString(raw, "resource_type", "type")),
		ViewTimes:     max(0, SafeInt(raw["view_times"], 0)),
		DownloadTimes: max(0, SafeInt(raw["download_times"], 0)),
	}
	if v, ok := firstPresent(raw, "teaching_week", "week"); ok {
		week := SafeInt(v, 0)
		resource.TeachingWeek = &week
	}
	return resource
}

// Student is one enrolled learner and their full activity history. Identifier
// and name fields accept multiple historical raw key names, resolved in a
// fixed priority order; absent optional fields stay nil.
type Student struct {
	StudentID  string   `json:"student_id"`
	Username   *string  `json:"username,omitempty"`
	Name       *string  `json:"name,omitempty"`
	Class      *string  `json:"class,omitempty"`
	Major      *string  `json:"major,omitempty"`
	LoginTimes int      `json:"login_times"`
	FinalScore *float64 `json:"final_score,omitempty"`

	VideoRecords      []VideoRecord      `json:"video_records,omitempty"`
	HomeworkRecords   []HomeworkRecord   `json:"homework_records,omitempty"`
	ExamRecords       []ExamRecord       `json:"exam_records,omitempty"`
	AttendanceRecords []AttendanceRecord `json:"attendance_records,omitempty"`
}

// StudentFromRaw normalizes a raw student object.
func StudentFromRaw(raw map[string]any) Student {
	if len(raw) == 0 {
		return Student{}
	}

	student := Student{
		StudentID:  firstString(raw, "student_id", "students_id"),
		Username:   optString(raw, "student_username", "username"),
		Name:       optString(raw, "student_truename", "student_name", "name"),
		Class:      optString(raw, "class_name"),
		Major:      optString(raw, "major"),
		LoginTimes: SafeInt(raw["login_times"], 0),
	}

	if v, ok := firstPresent(raw, "course_final_score", "final_score", "first_class_score"); ok {
		score := SafeFloat(v, 0)
		student.FinalScore = &score
	}

	for _, item := range listOfMaps(raw["video_records"]) {
		student.VideoRecords = append(student.VideoRecords, VideoRecordFromRaw(item))
	}
	for _, item := range listOfMaps(raw["homework_records"]) {
		student.HomeworkRecords = append(student.HomeworkRecords, HomeworkRecordFromRaw(item))
	}
	for _, item := range listOfMaps(raw["exam_records"]) {
		student.ExamRecords = append(student.ExamRecords, ExamRecordFromRaw(item))
	}
	for _, item := range listOfMaps(raw["attendance_records"]) {
		student.AttendanceRecords = append(student.AttendanceRecords, AttendanceRecordFromRaw(item))
	}

	return student
}

// TeachClass is one teaching class with its ordered student roster.
type TeachClass struct {
	ClassID   string    `json:"class_id"`
	ClassName *string   `json:"class_name,omitempty"`
	Students  []Student `json:"students,omitempty"`
}

// TeachClassFromRaw normalizes a raw teaching class object.
func TeachClassFromRaw(raw map[string]any) TeachClass {
	if len(raw) == 0 {
		return TeachClass{}
	}
	class := TeachClass{
		ClassID:   Stringify(raw["class_id"]),
		ClassName: optString(raw, "class_name"),
	}
	for _, item := range listOfMaps(raw["students"]) {
		class.Students = append(class.Students, StudentFromRaw(item))
	}
	return class
}

// Course is the root of one normalized course document. It exclusively owns
// its classes, resources and (transitively) every student record; nothing is
// mutated after construction. Raw keeps the original document verbatim for
// fields this model does not cover.
type Course struct {
	CourseID   string              `json:"course_id"`
	CourseName string              `json:"course_name"`
	FileName   string              `json:"file_name"`
	Liked      int                 `json:"liked"`
	Viewed     int                 `json:"viewed"`
	CreateTime *string             `json:"create_time,omitempty"`
	UpdateTime *string             `json:"update_time,omitempty"`
	Term       *string             `json:"term,omitempty"`
	Resources  map[string]Resource `json:"resources"`
	Classes    []TeachClass        `json:"teachclasses"`
	Raw        map[string]any      `json:"-"`
}

// CourseFromRaw normalizes one raw course document. Missing or malformed
// fields degrade to zero values; the course name falls back to the source
// file name.
func CourseFromRaw(raw map[string]any, fileName string) *Course {
	if len(raw) == 0 {
		return &Course{CourseName: fileName, FileName: fileName, Resources: map[string]Resource{}}
	}

	resources := make(map[string]Resource)
	for _, item := range listOfMaps(raw["resources"]) {
		resources[Stringify(item["resource_id"])] = ResourceFromRaw(item)
	}

	classes := make([]TeachClass, 0)
	for _, item := range listOfMaps(raw["teachclasses"]) {
		classes = append(classes, TeachClassFromRaw(item))
	}

	name := Stringify(raw["course_name"])
	if name == "" {
		name = fileName
	}

	return &Course{
		CourseID:   Stringify(raw["course_id"]),
		CourseName: name,
		FileName:   fileName,
		Liked:      max(0, SafeInt(raw["liked"], 0)),
		Viewed:     max(0, SafeInt(raw["viewed"], 0)),
		CreateTime: optString(raw, "create_time"),
		UpdateTime: optString(raw, "update_time"),
		Term:       optString(raw, "term"),
		Resources:  resources,
		Classes:    classes,
		Raw:        raw,
	}
}

// RawCourseID extracts the uniqueness key from a raw document without running
// full normalization. Empty when the field is missing or blank.
func RawCourseID(raw map[string]any) string {
	return strings.TrimSpace(Stringify(raw["course_id"]))
}

// listOfMaps coerces a raw JSON array into its object elements, skipping
// entries of any other shape.
func listOfMaps(value any) []map[string]any {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			result = append(result, m)
		}
	}
	return result
}

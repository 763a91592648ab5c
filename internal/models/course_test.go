package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCourseJSON = `{
	"course_id": "CS101",
	"course_name": "Intro to Computing",
	"liked": -3,
	"viewed": 120,
	"term": "2024 Spring",
	"resources": [
		{"resource_id": 1001, "title": "Lecture 1", "resource_type": "视频", "teaching_week": 1, "view_times": 30, "download_times": -2},
		{"resource_id": "1002", "title": "Homework 1", "type": "作业", "week": "2"}
	],
	"teachclasses": [
		{
			"class_id": "c1",
			"class_name": "Class A",
			"students": [
				{
					"students_id": 9001,
					"student_truename": "Ada",
					"student_username": "ada01",
					"login_times": "15",
					"course_final_score": "88.5",
					"video_records": [
						{"resource_id": "1001", "view_time": -30, "start_time": "2024-03-01T10:00:00"}
					],
					"homework_records": [
						{"resource_id": "1002", "score": 120, "total_score": 100}
					],
					"exam_records": [
						{"resource_id": "1002", "score": "45", "total_score": "50"}
					],
					"attendance_records": [
						{"attend_status": "旷课", "check_item_id": "chk1", "create_time": "2024-03-02T08:00:00"}
					]
				}
			]
		}
	]
}`

func decodeRaw(t *testing.T, data string) map[string]any {
	t.Helper()
	decoder := json.NewDecoder(bytes.NewReader([]byte(data)))
	decoder.UseNumber()
	var raw map[string]any
	require.NoError(t, decoder.Decode(&raw))
	return raw
}

func TestCourseFromRaw(t *testing.T) {
	course := CourseFromRaw(decodeRaw(t, sampleCourseJSON), "cs101.json")

	require.Equal(t, "CS101", course.CourseID)
	require.Equal(t, "Intro to Computing", course.CourseName)
	require.Equal(t, "cs101.json", course.FileName)
	require.Equal(t, 0, course.Liked, "negative counter clamps to zero")
	require.Equal(t, 120, course.Viewed)
	require.NotNil(t, course.Term)
	require.Equal(t, "2024 Spring", *course.Term)
	require.NotNil(t, course.Raw)

	require.Len(t, course.Resources, 2)
	video := course.Resources["1001"]
	require.Equal(t, ResourceVideo, video.Type)
	require.Equal(t, 30, video.ViewTimes)
	require.Equal(t, 0, video.DownloadTimes, "negative counter clamps to zero")
	require.NotNil(t, video.TeachingWeek)
	require.Equal(t, 1, *video.TeachingWeek)

	homework := course.Resources["1002"]
	require.Equal(t, ResourceHomework, homework.Type)
	require.NotNil(t, homework.TeachingWeek)
	require.Equal(t, 2, *homework.TeachingWeek, "numeric-string week coerces")

	require.Len(t, course.Classes, 1)
	require.Len(t, course.Classes[0].Students, 1)

	student := course.Classes[0].Students[0]
	require.Equal(t, "9001", student.StudentID, "students_id key is accepted")
	require.NotNil(t, student.Name)
	require.Equal(t, "Ada", *student.Name)
	require.NotNil(t, student.Username)
	require.Equal(t, "ada01", *student.Username)
	require.Equal(t, 15, student.LoginTimes)
	require.NotNil(t, student.FinalScore)
	require.Equal(t, 88.5, *student.FinalScore)

	require.Len(t, student.VideoRecords, 1)
	require.Equal(t, 0.0, student.VideoRecords[0].ViewTime, "negative watch time clamps to zero")
	require.NotNil(t, student.VideoRecords[0].StartTime)

	require.Len(t, student.HomeworkRecords, 1)
	require.Equal(t, 100.0, student.HomeworkRecords[0].Score, "score clamps to total")
	require.Equal(t, 100.0, student.HomeworkRecords[0].TotalScore)

	require.Len(t, student.ExamRecords, 1)
	require.Equal(t, 45.0, student.ExamRecords[0].Score)
	require.Equal(t, 50.0, student.ExamRecords[0].TotalScore)

	require.Len(t, student.AttendanceRecords, 1)
	attendance := student.AttendanceRecords[0]
	require.Equal(t, AttendAbsent, attendance.Status)
	require.Equal(t, "chk1", attendance.CheckItemID)
	require.Equal(t, "2024-03-02T08:00:00", attendance.EventTime, "create_time is the next time candidate")
	require.Equal(t, "unnamed check-in", attendance.Name)
}

func TestCourseFromRawIsDeterministic(t *testing.T) {
	first := CourseFromRaw(decodeRaw(t, sampleCourseJSON), "cs101.json")
	second := CourseFromRaw(decodeRaw(t, sampleCourseJSON), "cs101.json")
	require.Equal(t, first, second)
}

func TestCourseFromRawEmptyDocument(t *testing.T) {
	course := CourseFromRaw(nil, "empty.json")
	require.Equal(t, "", course.CourseID)
	require.Equal(t, "empty.json", course.CourseName, "course name falls back to the file name")
	require.NotNil(t, course.Resources)
	require.Empty(t, course.Classes)
}

func TestScoreClampIgnoredWithoutTotal(t *testing.T) {
	record := HomeworkRecordFromRaw(map[string]any{
		"resource_id": "r1",
		"score":       150.0,
	})
	require.Equal(t, 150.0, record.Score, "no clamp when total_score is absent")
	require.Equal(t, 0.0, record.TotalScore)

	exam := ExamRecordFromRaw(map[string]any{
		"resource_id": "r2",
		"score":       60.0,
		"total_score": -10.0,
	})
	require.Equal(t, 0.0, exam.TotalScore, "negative total clamps to zero")
	require.Equal(t, 60.0, exam.Score)
}

func TestRawCourseID(t *testing.T) {
	require.Equal(t, "CS101", RawCourseID(map[string]any{"course_id": " CS101 "}))
	require.Equal(t, "101", RawCourseID(map[string]any{"course_id": json.Number("101")}))
	require.Equal(t, "", RawCourseID(map[string]any{}))
	require.Equal(t, "", RawCourseID(map[string]any{"course_id": "   "}))
}

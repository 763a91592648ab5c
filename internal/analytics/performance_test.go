package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shuishan-lab/clad-core/internal/models"
)

func TestStudentPerformanceAggregates(t *testing.T) {
	course := fixtureCourse(nil, []models.Student{
		{
			StudentID: "s1",
			VideoRecords: []models.VideoRecord{
				{ResourceID: "v1", ViewTime: 600},
				{ResourceID: "v2", ViewTime: 300},
			},
			HomeworkRecords: []models.HomeworkRecord{
				{ResourceID: "hw1", Score: 80, TotalScore: 100},
				{ResourceID: "hw2", Score: 90, TotalScore: 100},
			},
			ExamRecords: []models.ExamRecord{{ResourceID: "e1", Score: 45, TotalScore: 50}},
			AttendanceRecords: []models.AttendanceRecord{
				attendance(models.AttendPresent, "chk1", "", ""),
				attendance(models.AttendAbsent, "chk2", "", ""),
			},
		},
		{
			StudentID:       "s2",
			HomeworkRecords: []models.HomeworkRecord{{ResourceID: "hw1", Score: 60, TotalScore: 100}},
		},
		{StudentID: "s3"}, // no activity at all
	})

	report := StudentPerformance(course)

	require.Equal(t, 3, report.TotalStudents)
	require.Len(t, report.StudentDetails, 3)

	s1 := report.StudentDetails[0]
	require.Equal(t, 900.0, s1.VideoWatchTime)
	require.Equal(t, 85.0, s1.AvgHomeworkScore)
	require.Equal(t, 90.0, s1.AvgExamScore)
	require.Equal(t, 50.0, s1.AttendanceRate)

	// Only students that contributed count toward each metric.
	watch := report.AverageStats[MetricVideoWatchTime]
	require.Equal(t, 1, watch.Count)
	require.Equal(t, 900.0, watch.Avg)

	homework := report.AverageStats[MetricHomeworkScores]
	require.Equal(t, 3, homework.Count, "per-record samples from two students")
	require.Equal(t, 60.0, homework.Min)
	require.Equal(t, 90.0, homework.Max)

	exams := report.AverageStats[MetricExamScores]
	require.Equal(t, 1, exams.Count)
	require.Equal(t, 90.0, exams.Avg)

	require.NotContains(t, report.AverageStats, "nonexistent")
	require.Equal(t, 1, report.AverageStats[MetricAttendanceRate].Count)
}

func TestStudentPerformanceRanking(t *testing.T) {
	course := fixtureCourse(nil, []models.Student{
		{StudentID: "low", ExamRecords: []models.ExamRecord{{ResourceID: "e1", Score: 30, TotalScore: 100}}},
		{StudentID: "high", ExamRecords: []models.ExamRecord{{ResourceID: "e1", Score: 95, TotalScore: 100}}},
		{StudentID: "homework", HomeworkRecords: []models.HomeworkRecord{{ResourceID: "hw1", Score: 99, TotalScore: 100}}},
		{StudentID: "watcher", VideoRecords: []models.VideoRecord{{ResourceID: "v1", ViewTime: 1000}}},
		{StudentID: "idle"},
	})

	report := StudentPerformance(course)

	require.Len(t, report.TopStudents, 5)
	require.Equal(t, "high", report.TopStudents[0].StudentID)
	require.Equal(t, "low", report.TopStudents[1].StudentID)
	require.Equal(t, "homework", report.TopStudents[2].StudentID, "homework mean breaks the exam tie")
	require.Equal(t, "watcher", report.TopStudents[3].StudentID, "watch time breaks the remaining tie")
	require.Equal(t, "idle", report.TopStudents[4].StudentID)
}

func TestStudentPerformanceTopFiveCap(t *testing.T) {
	students := make([]models.Student, 0, 8)
	for i := 0; i < 8; i++ {
		student := numberedStudent(i + 1)
		student.ExamRecords = []models.ExamRecord{{ResourceID: "e1", Score: float64(50 + i), TotalScore: 100}}
		students = append(students, student)
	}

	report := StudentPerformance(fixtureCourse(nil, students))

	require.Len(t, report.TopStudents, maxTopStudents)
	require.Equal(t, "s8", report.TopStudents[0].StudentID)
	require.Len(t, report.StudentDetails, 8)
}

func TestMeanOfEmptySliceIsZero(t *testing.T) {
	require.Equal(t, 0.0, mean(nil))
	require.Equal(t, 2.0, mean([]float64{1, 2, 3}))
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shuishan-lab/clad-core/internal/models"
)

func TestOverviewCounts(t *testing.T) {
	course := fixtureCourse(
		[]models.Resource{
			{ResourceID: "r1", Title: "Lecture 1", Type: models.ResourceVideo, TeachingWeek: intPtr(1), ViewTimes: 10},
			{ResourceID: "r2", Title: "Lecture 2", Type: models.ResourceVideo, TeachingWeek: intPtr(2)},
			{ResourceID: "r3", Title: "Homework 1", Type: models.ResourceHomework, TeachingWeek: intPtr(1), DownloadTimes: 4},
		},
		[]models.Student{
			{
				StudentID:       "s1",
				VideoRecords:    []models.VideoRecord{videoAt("r1", ""), videoAt("r2", "")},
				HomeworkRecords: []models.HomeworkRecord{{ResourceID: "r3", Score: 90, TotalScore: 100}},
				AttendanceRecords: []models.AttendanceRecord{
					attendance(models.AttendPresent, "chk1", "Week 1", ""),
				},
			},
			{
				StudentID:   "s2",
				ExamRecords: []models.ExamRecord{{ResourceID: "r3", Score: 40, TotalScore: 50}},
			},
		},
	)

	report := Overview(course)

	require.Equal(t, "C1", report.CourseID)
	require.Equal(t, 3, report.ResourceCount)
	require.Equal(t, 2, report.TotalStudents)
	require.Equal(t, 2, report.VideoCount)
	require.Equal(t, 1, report.HomeworkCount)
	require.Equal(t, 1, report.ExamCount)
	require.Equal(t, 1, report.AttendanceCount)

	require.Equal(t, map[string]int{"video": 2, "homework": 1}, report.ResourceStats)
	require.Len(t, report.ResourceTypes["video"], 2)
	require.Equal(t, 10, report.ResourceTypes["video"][0].ViewTimes)
	require.NotEmpty(t, report.AnalysisText)
}

func TestOverviewIsDeterministic(t *testing.T) {
	course := fixtureCourse(
		[]models.Resource{
			{ResourceID: "r1", Title: "A", Type: models.ResourceVideo},
			{ResourceID: "r2", Title: "B", Type: models.ResourceVideo},
		},
		[]models.Student{numberedStudent(1)},
	)

	require.Equal(t, Overview(course), Overview(course))
}

func TestStatisticsCompletionRate(t *testing.T) {
	course := fixtureCourse(
		[]models.Resource{
			{ResourceID: "hw2", Title: "Homework B", Type: models.ResourceHomework, TeachingWeek: intPtr(2)},
			{ResourceID: "hw1", Title: "Homework A", Type: models.ResourceHomework, TeachingWeek: intPtr(1)},
			{ResourceID: "v1", Title: "Lecture", Type: models.ResourceVideo, TeachingWeek: intPtr(1), ViewTimes: 7},
		},
		[]models.Student{
			{StudentID: "s1", HomeworkRecords: []models.HomeworkRecord{
				{ResourceID: "hw1", Score: 80, TotalScore: 100},
				{ResourceID: "hw1", Score: 85, TotalScore: 100}, // resubmission counts once
			}},
			{StudentID: "s2", HomeworkRecords: []models.HomeworkRecord{{ResourceID: "hw1", Score: 70, TotalScore: 100}}},
			{StudentID: "s3"},
			{StudentID: "s4"},
		},
	)

	report := Statistics(course)

	require.Len(t, report.HomeworkDetails, 2)
	require.Equal(t, "hw1", report.HomeworkDetails[0].ResourceID, "sorted by teaching week")
	require.Equal(t, 2, report.HomeworkDetails[0].SubmittedCount)
	require.Equal(t, 50.0, report.HomeworkDetails[0].CompletionRate)
	require.Equal(t, "hw2", report.HomeworkDetails[1].ResourceID)
	require.Equal(t, 0.0, report.HomeworkDetails[1].CompletionRate)
}

func TestStatisticsWeekAndTypeAggregates(t *testing.T) {
	course := fixtureCourse(
		[]models.Resource{
			{ResourceID: "v1", Title: "Lecture 1", Type: models.ResourceVideo, TeachingWeek: intPtr(1), ViewTimes: 5, DownloadTimes: 1},
			{ResourceID: "v2", Title: "Lecture 2", Type: models.ResourceVideo, TeachingWeek: intPtr(1), ViewTimes: 3},
			{ResourceID: "hw1", Title: "Homework 1", Type: models.ResourceHomework, TeachingWeek: intPtr(2), DownloadTimes: 4},
			{ResourceID: "x1", Title: "Slides", Type: models.ResourceAttachment},
		},
		nil,
	)

	report := Statistics(course)

	require.Equal(t, 2, report.WeekStats[1].Resources)
	require.Equal(t, 2, report.WeekStats[1].Videos)
	require.Equal(t, 0, report.WeekStats[1].Homeworks)
	require.Equal(t, 1, report.WeekStats[2].Homeworks)
	require.NotContains(t, report.WeekStats, 0, "resources without a week are skipped")

	require.Len(t, report.ResourceUsage, 3)
	for _, usage := range report.ResourceUsage {
		if usage.Type == "video" {
			require.Equal(t, 2, usage.Count)
			require.Equal(t, 8, usage.TotalViews)
			require.Equal(t, 1, usage.TotalDownloads)
		}
	}
}

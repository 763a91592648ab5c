package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

// Metric keys used in PerformanceReport.AverageStats.
const (
	MetricVideoWatchTime = "video_watch_time"
	MetricHomeworkScores = "homework_scores"
	MetricExamScores     = "exam_scores"
	MetricAttendanceRate = "attendance_rate"
)

const maxStudentDetails = 20
const maxTopStudents = 5

// StudentPerformance aggregates watch time, grades and attendance per student
// and ranks the strongest performers. Students with no contributing value for
// a metric are excluded from that metric's aggregate rather than counted as
// zero.
func StudentPerformance(course *models.Course) dto.PerformanceReport {
	ctx := buildContext(course)

	report := dto.PerformanceReport{
		ReportMeta:    newMeta(course),
		TotalStudents: ctx.totalStudents,
		AverageStats:  make(map[string]dto.MetricSummary),
	}

	samples := map[string][]float64{
		MetricVideoWatchTime: nil,
		MetricHomeworkScores: nil,
		MetricExamScores:     nil,
		MetricAttendanceRate: nil,
	}

	details := make([]dto.StudentPerformance, 0, len(ctx.students))

	for _, student := range ctx.students {
		detail := dto.StudentPerformance{
			StudentID:     student.StudentID,
			VideoCount:    len(student.VideoRecords),
			HomeworkCount: len(student.HomeworkRecords),
			ExamCount:     len(student.ExamRecords),
		}

		for _, video := range student.VideoRecords {
			detail.VideoWatchTime += video.ViewTime
		}
		if detail.VideoWatchTime > 0 {
			samples[MetricVideoWatchTime] = append(samples[MetricVideoWatchTime], detail.VideoWatchTime)
		}

		var homeworkScores []float64
		for _, homework := range student.HomeworkRecords {
			if homework.Score > 0 {
				homeworkScores = append(homeworkScores, homework.Score)
				samples[MetricHomeworkScores] = append(samples[MetricHomeworkScores], homework.Score)
			}
		}
		detail.AvgHomeworkScore = mean(homeworkScores)

		var examScores []float64
		for _, exam := range student.ExamRecords {
			if exam.Score > 0 && exam.TotalScore > 0 {
				percentage := exam.Score / exam.TotalScore * 100
				examScores = append(examScores, percentage)
				samples[MetricExamScores] = append(samples[MetricExamScores], percentage)
			}
		}
		detail.AvgExamScore = mean(examScores)

		if len(student.AttendanceRecords) > 0 {
			present := 0
			for _, record := range student.AttendanceRecords {
				if record.Status == models.AttendPresent {
					present++
				}
			}
			detail.AttendanceRate = float64(present) / float64(len(student.AttendanceRecords)) * 100
			samples[MetricAttendanceRate] = append(samples[MetricAttendanceRate], detail.AttendanceRate)
		}

		details = append(details, detail)
	}

	for metric, values := range samples {
		if len(values) == 0 {
			continue
		}
		summary := dto.MetricSummary{Min: values[0], Max: values[0], Count: len(values)}
		sum := 0.0
		for _, value := range values {
			sum += value
			summary.Min = min(summary.Min, value)
			summary.Max = max(summary.Max, value)
		}
		summary.Avg = sum / float64(len(values))
		report.AverageStats[metric] = summary
	}

	// Rank by exam mean, then homework mean, then watch time; ties keep
	// encounter order.
	ranked := append([]dto.StudentPerformance(nil), details...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AvgExamScore != ranked[j].AvgExamScore {
			return ranked[i].AvgExamScore > ranked[j].AvgExamScore
		}
		if ranked[i].AvgHomeworkScore != ranked[j].AvgHomeworkScore {
			return ranked[i].AvgHomeworkScore > ranked[j].AvgHomeworkScore
		}
		return ranked[i].VideoWatchTime > ranked[j].VideoWatchTime
	})
	if len(ranked) > maxTopStudents {
		ranked = ranked[:maxTopStudents]
	}
	report.TopStudents = ranked

	if len(details) > maxStudentDetails {
		details = details[:maxStudentDetails]
	}
	report.StudentDetails = details

	report.AnalysisText = performanceSummary(&report)
	return report
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

func performanceSummary(report *dto.PerformanceReport) string {
	metricCount := func(metric string) int {
		return report.AverageStats[metric].Count
	}

	lines := []string{
		"Student performance analysis:",
		fmt.Sprintf("- %d students enrolled", report.TotalStudents),
		fmt.Sprintf("- students with video activity: %d, homework submissions: %d, exam sittings: %d, attendance records: %d",
			metricCount(MetricVideoWatchTime), metricCount(MetricHomeworkScores),
			metricCount(MetricExamScores), metricCount(MetricAttendanceRate)),
	}

	if summary, ok := report.AverageStats[MetricVideoWatchTime]; ok {
		lines = append(lines, fmt.Sprintf("- watch time: avg %s, max %s, min %s",
			formatWatchTime(summary.Avg), formatWatchTime(summary.Max), formatWatchTime(summary.Min)))
	}
	if summary, ok := report.AverageStats[MetricHomeworkScores]; ok {
		lines = append(lines, fmt.Sprintf("- homework scores: avg %.1f, max %.1f, min %.1f over %d submissions",
			summary.Avg, summary.Max, summary.Min, summary.Count))
	}
	if summary, ok := report.AverageStats[MetricExamScores]; ok {
		lines = append(lines, fmt.Sprintf("- exam scores: avg %.1f%%, max %.1f%%, min %.1f%% over %d sittings",
			summary.Avg, summary.Max, summary.Min, summary.Count))
	}
	if summary, ok := report.AverageStats[MetricAttendanceRate]; ok {
		lines = append(lines, fmt.Sprintf("- attendance rate: avg %.1f%%, max %.1f%%, min %.1f%%",
			summary.Avg, summary.Max, summary.Min))
	}

	if len(report.TopStudents) > 0 {
		lines = append(lines, "- top students:")
		for _, student := range report.TopStudents {
			var parts []string
			if student.AvgHomeworkScore > 0 {
				parts = append(parts, fmt.Sprintf("homework avg %.1f", student.AvgHomeworkScore))
			}
			if student.AvgExamScore > 0 {
				parts = append(parts, fmt.Sprintf("exam avg %.1f%%", student.AvgExamScore))
			}
			if student.VideoWatchTime > 0 {
				parts = append(parts, fmt.Sprintf("watch time %s", formatWatchTime(student.VideoWatchTime)))
			}
			lines = append(lines, fmt.Sprintf("  - student %s: %s", student.StudentID, strings.Join(parts, ", ")))
		}
	}

	return strings.Join(lines, "\n")
}

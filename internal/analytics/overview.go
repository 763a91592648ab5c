package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

// Overview counts resources by type and activity records across all students.
func Overview(course *models.Course) dto.OverviewReport {
	ctx := buildContext(course)

	report := dto.OverviewReport{
		ReportMeta:    newMeta(course),
		ResourceCount: len(ctx.resources),
		ResourceStats: make(map[string]int),
		ResourceTypes: make(map[string][]dto.ResourceDetail),
		TotalStudents: ctx.totalStudents,
	}

	for _, student := range ctx.students {
		report.VideoCount += len(student.VideoRecords)
		report.HomeworkCount += len(student.HomeworkRecords)
		report.ExamCount += len(student.ExamRecords)
		report.AttendanceCount += len(student.AttendanceRecords)
	}

	for _, resource := range ctx.resources {
		typeName := string(resource.Type)
		report.ResourceStats[typeName]++
		report.ResourceTypes[typeName] = append(report.ResourceTypes[typeName], dto.ResourceDetail{
			ResourceID:    resource.ResourceID,
			Title:         resource.Title,
			Type:          typeName,
			ViewTimes:     resource.ViewTimes,
			DownloadTimes: resource.DownloadTimes,
			TeachingWeek:  resource.TeachingWeek,
		})
	}

	report.AnalysisText = fmt.Sprintf(
		"Course %q has %d resources and %d students, with %d video, %d homework, %d exam and %d attendance records in total.",
		course.CourseName, report.ResourceCount, report.TotalStudents,
		report.VideoCount, report.HomeworkCount, report.ExamCount, report.AttendanceCount)

	return report
}

// Statistics layers per-type usage totals, per-week resource counts and
// per-homework completion rates on top of the overview.
func Statistics(course *models.Course) dto.StatisticsReport {
	overview := Overview(course)
	ctx := buildContext(course)

	report := dto.StatisticsReport{
		ReportMeta: newMeta(course),
		Overview:   overview,
		WeekStats:  make(map[int]dto.WeekStat),
	}

	typeNames := make([]string, 0, len(overview.ResourceTypes))
	for typeName := range overview.ResourceTypes {
		typeNames = append(typeNames, typeName)
	}
	sort.Strings(typeNames)

	for _, typeName := range typeNames {
		details := overview.ResourceTypes[typeName]
		usage := dto.ResourceTypeUsage{Type: typeName, Count: len(details)}
		for _, detail := range details {
			usage.TotalViews += detail.ViewTimes
			usage.TotalDownloads += detail.DownloadTimes
		}
		report.ResourceUsage = append(report.ResourceUsage, usage)
	}

	for _, resource := range ctx.resources {
		if resource.TeachingWeek == nil {
			continue
		}
		week := *resource.TeachingWeek
		stat := report.WeekStats[week]
		stat.Resources++
		if resource.Type == models.ResourceVideo {
			stat.Videos++
		}
		if resource.Type == models.ResourceHomework {
			stat.Homeworks++
		}
		report.WeekStats[week] = stat
	}

	// Distinct submitting students per homework resource.
	submissions := make(map[string]map[string]struct{})
	for _, student := range ctx.students {
		for _, homework := range student.HomeworkRecords {
			if homework.ResourceID == "" {
				continue
			}
			if submissions[homework.ResourceID] == nil {
				submissions[homework.ResourceID] = make(map[string]struct{})
			}
			submissions[homework.ResourceID][student.StudentID] = struct{}{}
		}
	}

	for _, detail := range overview.ResourceTypes[string(models.ResourceHomework)] {
		if detail.ResourceID == "" {
			continue
		}
		submitted := len(submissions[detail.ResourceID])
		rate := 0.0
		if ctx.totalStudents > 0 {
			rate = round1(float64(submitted) / float64(ctx.totalStudents) * 100)
		}
		report.HomeworkDetails = append(report.HomeworkDetails, dto.HomeworkDetail{
			ResourceID:     detail.ResourceID,
			Title:          detail.Title,
			SubmittedCount: submitted,
			TotalStudents:  ctx.totalStudents,
			CompletionRate: rate,
			TeachingWeek:   detail.TeachingWeek,
		})
	}

	sort.SliceStable(report.HomeworkDetails, func(i, j int) bool {
		wi, wj := 0, 0
		if report.HomeworkDetails[i].TeachingWeek != nil {
			wi = *report.HomeworkDetails[i].TeachingWeek
		}
		if report.HomeworkDetails[j].TeachingWeek != nil {
			wj = *report.HomeworkDetails[j].TeachingWeek
		}
		if wi != wj {
			return wi < wj
		}
		return report.HomeworkDetails[i].Title < report.HomeworkDetails[j].Title
	})

	var lines []string
	lines = append(lines, fmt.Sprintf("Resource statistics for %q:", course.CourseName))
	for _, usage := range report.ResourceUsage {
		lines = append(lines, fmt.Sprintf("- %s: %d resources, %d views, %d downloads",
			usage.Type, usage.Count, usage.TotalViews, usage.TotalDownloads))
	}
	if len(report.HomeworkDetails) > 0 {
		sum := 0.0
		for _, detail := range report.HomeworkDetails {
			sum += detail.CompletionRate
		}
		lines = append(lines, fmt.Sprintf("- %d homework assignments, average completion rate %.1f%%",
			len(report.HomeworkDetails), sum/float64(len(report.HomeworkDetails))))
	}
	report.AnalysisText = strings.Join(lines, "\n")

	return report
}

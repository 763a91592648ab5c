package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

const maxUsageRows = 50

// ResourceUsage ranks resources by popularity (student view events plus
// resource downloads), lists zero-usage resources, and measures utilization
// and Pareto concentration.
func ResourceUsage(course *models.Course) dto.ResourceUsageReport {
	ctx := buildContext(course)

	type usage struct {
		views    int
		students map[string]struct{}
	}
	usageMap := make(map[string]*usage)
	touch := func(resourceID, studentID string) *usage {
		entry := usageMap[resourceID]
		if entry == nil {
			entry = &usage{students: make(map[string]struct{})}
			usageMap[resourceID] = entry
		}
		entry.students[studentID] = struct{}{}
		return entry
	}

	for _, student := range ctx.students {
		for _, video := range student.VideoRecords {
			if video.ResourceID != "" {
				touch(video.ResourceID, student.StudentID).views++
			}
		}
		for _, homework := range student.HomeworkRecords {
			if homework.ResourceID != "" {
				touch(homework.ResourceID, student.StudentID)
			}
		}
		for _, exam := range student.ExamRecords {
			if exam.ResourceID != "" {
				touch(exam.ResourceID, student.StudentID)
			}
		}
	}

	rows := make([]dto.ResourceUsage, 0, len(ctx.resources))
	totalPopularity := 0
	usedCount := 0

	for _, resource := range ctx.resources {
		row := dto.ResourceUsage{
			ResourceID: resource.ResourceID,
			Title:      resource.Title,
			Type:       string(resource.Type),
		}
		if entry, ok := usageMap[resource.ResourceID]; ok {
			usedCount++
			row.Views = entry.views
			row.Downloads = resource.DownloadTimes
			row.StudentsCount = len(entry.students)
			row.Popularity = entry.views + resource.DownloadTimes
			totalPopularity += row.Popularity
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Popularity > rows[j].Popularity
	})

	totalResources := len(ctx.resources)
	zeroViewCount := totalResources - usedCount

	report := dto.ResourceUsageReport{
		ReportMeta:     newMeta(course),
		TotalResources: totalResources,
		UsedResources:  usedCount,
		ZeroViewCount:  zeroViewCount,
	}

	if totalResources > 0 {
		report.UtilizationRate = round1(float64(usedCount) / float64(totalResources) * 100)
		report.TopShareCount = max(1, int(math.Ceil(float64(totalResources)*0.2)))
	}

	if totalPopularity > 0 {
		topTraffic := 0
		for i := 0; i < report.TopShareCount && i < len(rows); i++ {
			topTraffic += rows[i].Popularity
		}
		report.TrafficConcentration = round1(float64(topTraffic) / float64(totalPopularity) * 100)
	}
	switch {
	case report.TrafficConcentration > 80:
		report.ConcentrationLevel = "highly concentrated"
	case report.TrafficConcentration < 40:
		report.ConcentrationLevel = "evenly distributed"
	default:
		report.ConcentrationLevel = "moderately concentrated"
	}

	report.AnalysisText = resourceUsageSummary(&report, rows)

	if len(rows) > maxUsageRows {
		rows = rows[:maxUsageRows]
	}
	report.ResourceUsage = rows

	return report
}

func resourceUsageSummary(report *dto.ResourceUsageReport, rows []dto.ResourceUsage) string {
	lines := []string{
		"Resource utilization analysis:",
		fmt.Sprintf("- %d resources published, %d accessed at least once (utilization %.1f%%)",
			report.TotalResources, report.UsedResources, report.UtilizationRate),
	}

	if report.ZeroViewCount > 0 {
		lines = append(lines, fmt.Sprintf(
			"- %d resources have zero usage; check whether they are optional or hard to find",
			report.ZeroViewCount))
	}

	lines = append(lines, fmt.Sprintf(
		"- the top %d resources carry %.1f%% of all traffic (%s)",
		report.TopShareCount, report.TrafficConcentration, report.ConcentrationLevel))

	if len(rows) > 0 && rows[0].Popularity > 0 {
		top := rows[0]
		lines = append(lines, fmt.Sprintf("- most popular: %q (%s), popularity %d", top.Title, top.Type, top.Popularity))

		for i := len(rows) - 1; i >= 0; i-- {
			if rows[i].Popularity > 0 {
				if rows[i].ResourceID != top.ResourceID {
					lines = append(lines, fmt.Sprintf("- least used with any traffic: %q, popularity %d",
						rows[i].Title, rows[i].Popularity))
				}
				break
			}
		}
	}

	return strings.Join(lines, "\n")
}

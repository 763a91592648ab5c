package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

const (
	maxPathSteps    = 10
	patternSteps    = 5
	fingerprintLen  = 3
	maxCommonPaths  = 5
	maxPathExamples = 3
	maxReportPaths  = 50
)

// LearningPath mines the opening video sequences students follow, groups the
// common ones and measures how diverse the class's starting patterns are.
func LearningPath(course *models.Course) dto.LearningPathReport {
	ctx := buildContext(course)

	report := dto.LearningPathReport{
		ReportMeta:    newMeta(course),
		TotalStudents: ctx.totalStudents,
	}

	type pathGroup struct {
		resourceIDs []string
		frequency   int
		examples    []dto.PathExample
	}
	groups := make(map[string]*pathGroup)
	var groupOrder []string
	fingerprints := make(map[string]struct{})

	var paths []dto.StudentPath

	for _, student := range ctx.students {
		if len(student.VideoRecords) == 0 {
			continue
		}

		// Missing start times sort last; ties keep original record order.
		records := append([]models.VideoRecord(nil), student.VideoRecords...)
		sort.SliceStable(records, func(i, j int) bool {
			a, b := records[i].StartTime, records[j].StartTime
			if (a == nil) != (b == nil) {
				return b == nil
			}
			if a == nil {
				return false
			}
			return *a < *b
		})

		if len(records) > maxPathSteps {
			records = records[:maxPathSteps]
		}

		steps := make([]dto.PathStep, 0, len(records))
		stepIDs := make([]string, 0, len(records))
		for _, record := range records {
			steps = append(steps, dto.PathStep{
				ResourceID: record.ResourceID,
				Title:      resourceTitle(course, record.ResourceID),
				ViewTime:   record.ViewTime,
				StartTime:  record.StartTime,
			})
			stepIDs = append(stepIDs, record.ResourceID)
		}

		paths = append(paths, dto.StudentPath{StudentID: student.StudentID, Path: steps})

		if len(stepIDs) >= fingerprintLen {
			fingerprints[strings.Join(stepIDs[:fingerprintLen], "\x1f")] = struct{}{}
		}

		patternIDs := stepIDs
		if len(patternIDs) > patternSteps {
			patternIDs = patternIDs[:patternSteps]
		}
		key := strings.Join(patternIDs, "\x1f")
		group := groups[key]
		if group == nil {
			group = &pathGroup{resourceIDs: patternIDs}
			groups[key] = group
			groupOrder = append(groupOrder, key)
		}
		group.frequency++
		if len(group.examples) < maxPathExamples {
			titles := make([]string, 0, len(patternIDs))
			for _, id := range patternIDs {
				titles = append(titles, resourceTitle(course, id))
			}
			group.examples = append(group.examples, dto.PathExample{
				StudentID:  student.StudentID,
				PathTitles: titles,
			})
		}
	}

	report.AnalyzedStudents = len(paths)
	report.UniquePatternCount = len(fingerprints)

	// Rank groups by frequency; ties keep first-encounter order.
	sort.SliceStable(groupOrder, func(i, j int) bool {
		return groups[groupOrder[i]].frequency > groups[groupOrder[j]].frequency
	})
	if len(groupOrder) > maxCommonPaths {
		groupOrder = groupOrder[:maxCommonPaths]
	}

	for _, key := range groupOrder {
		group := groups[key]
		titles := make([]string, 0, len(group.resourceIDs))
		for _, id := range group.resourceIDs {
			titles = append(titles, resourceTitle(course, id))
		}

		percentage := 0.0
		if report.AnalyzedStudents > 0 {
			percentage = round1(float64(group.frequency) / float64(report.AnalyzedStudents) * 100)
		}

		tag := pathTag(course, group.resourceIDs, titles)
		description := fmt.Sprintf("%d students (%.1f%%) followed this path.", group.frequency, percentage)
		if tag != "" {
			description += " [" + tag + "]"
		}

		report.CommonPaths = append(report.CommonPaths, dto.CommonPath{
			ResourceIDs: group.resourceIDs,
			PathTitles:  titles,
			Frequency:   group.frequency,
			Percentage:  percentage,
			Tag:         tag,
			Description: description,
			Examples:    group.examples,
		})
	}

	if report.AnalyzedStudents > 0 {
		report.DiversityRatio = float64(report.UniquePatternCount) / float64(report.AnalyzedStudents)
	}
	switch {
	case report.DiversityRatio < 0.2:
		report.DiversityLevel = "low"
	case report.DiversityRatio < 0.6:
		report.DiversityLevel = "medium"
	default:
		report.DiversityLevel = "high"
	}

	if len(paths) > maxReportPaths {
		paths = paths[:maxReportPaths]
	}
	report.LearningPaths = paths

	report.AnalysisText = learningPathSummary(&report, ctx.totalStudents)
	return report
}

// pathTag applies the two path heuristics: a homework resource in the
// sequence marks it assignment-driven, a repeated resource marks repeated
// viewing.
func pathTag(course *models.Course, resourceIDs, titles []string) string {
	for i, id := range resourceIDs {
		resource, ok := course.Resources[id]
		if ok && resource.Type == models.ResourceHomework {
			return "assignment-driven"
		}
		if strings.Contains(strings.ToLower(titles[i]), "homework") || strings.Contains(titles[i], "作业") {
			return "assignment-driven"
		}
	}
	seen := make(map[string]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		if _, dup := seen[id]; dup {
			return "repeated viewing"
		}
		seen[id] = struct{}{}
	}
	return ""
}

func learningPathSummary(report *dto.LearningPathReport, totalStudents int) string {
	lines := []string{
		"Learning path analysis:",
		fmt.Sprintf("- analyzed %d of %d students with tracked video activity", report.AnalyzedStudents, totalStudents),
		fmt.Sprintf("- %d distinct starting patterns, diversity ratio %.2f (%s diversity)",
			report.UniquePatternCount, report.DiversityRatio, report.DiversityLevel),
	}

	for i, path := range report.CommonPaths {
		display := path.PathTitles
		suffix := ""
		if len(display) > 3 {
			display = display[:3]
			suffix = " ..."
		}
		lines = append(lines, fmt.Sprintf("- pattern %d: %s%s, %s",
			i+1, strings.Join(display, " > "), suffix, path.Description))
	}
	if len(report.CommonPaths) == 0 {
		lines = append(lines, "- no clustered learning path emerged; students order their study very differently")
	}

	switch {
	case float64(report.AnalyzedStudents) < float64(totalStudents)*0.3:
		lines = append(lines, "- most students have not produced continuous learning activity yet; engagement is low")
	case report.DiversityRatio > 0.8:
		lines = append(lines, "- learning paths are highly dispersed; the course may lack guidance or be an open exploratory course")
	default:
		lines = append(lines, "- most students follow a consistent pacing through the material")
	}

	return strings.Join(lines, "\n")
}

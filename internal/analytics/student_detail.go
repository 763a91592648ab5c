package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

// ErrStudentNotFound is returned when no student matches a detail query.
var ErrStudentNotFound = errors.New("student not found")

// StudentQuery resolves a student by id, then username, then display name.
type StudentQuery struct {
	StudentID string
	Username  string
	Name      string
}

// StudentDetail builds one student's full activity profile. A query matching
// nobody returns ErrStudentNotFound so callers can tell "no such student"
// apart from "student with no activity yet".
func StudentDetail(course *models.Course, query StudentQuery) (dto.StudentDetailReport, error) {
	ctx := buildContext(course)

	target := findStudent(ctx.students, query)
	if target == nil {
		return dto.StudentDetailReport{}, ErrStudentNotFound
	}

	report := dto.StudentDetailReport{
		ReportMeta: newMeta(course),
		Basic: dto.StudentBasic{
			StudentID:  target.StudentID,
			Username:   target.Username,
			Name:       target.Name,
			Class:      target.Class,
			Major:      target.Major,
			LoginTimes: target.LoginTimes,
			FinalScore: target.FinalScore,
		},
	}

	for _, video := range target.VideoRecords {
		report.Video.TotalTime += video.ViewTime
	}
	report.Video.RecordCount = len(target.VideoRecords)
	report.Video.TotalTimeText = formatWatchTime(report.Video.TotalTime)

	for _, homework := range target.HomeworkRecords {
		report.Homeworks = append(report.Homeworks, scoredItem(course, homework.ResourceID, homework.Score, homework.TotalScore))
	}
	for _, exam := range target.ExamRecords {
		report.Exams = append(report.Exams, scoredItem(course, exam.ResourceID, exam.Score, exam.TotalScore))
	}

	var tally statusTally
	for _, record := range target.AttendanceRecords {
		tally.add(record.Status)
		report.Attendance.Events = append(report.Attendance.Events, dto.StudentAttendanceEvent{
			CheckItemID: record.CheckItemID,
			Name:        record.Name,
			EventTime:   record.EventTime,
			Status:      string(record.Status),
		})
	}
	report.Attendance.Total = len(target.AttendanceRecords)
	report.Attendance.Present = tally.present
	report.Attendance.Absent = tally.absent
	report.Attendance.Leave = tally.leave
	report.Attendance.Late = tally.late
	report.Attendance.EarlyLeave = tally.earlyLeave
	report.Attendance.Unknown = tally.unknown
	if report.Attendance.Total > 0 {
		report.Attendance.AttendanceRate = float64(tally.present) / float64(report.Attendance.Total) * 100
	}

	sort.SliceStable(report.Attendance.Events, func(i, j int) bool {
		a, b := report.Attendance.Events[i], report.Attendance.Events[j]
		if (a.EventTime == "") != (b.EventTime == "") {
			return b.EventTime == ""
		}
		if a.EventTime != b.EventTime {
			return a.EventTime < b.EventTime
		}
		return a.Name < b.Name
	})

	report.AnalysisText = studentDetailSummary(&report)
	return report, nil
}

func findStudent(students []models.Student, query StudentQuery) *models.Student {
	if query.StudentID != "" {
		for i := range students {
			if students[i].StudentID == query.StudentID {
				return &students[i]
			}
		}
	}
	if query.Username != "" {
		for i := range students {
			if students[i].Username != nil && *students[i].Username == query.Username {
				return &students[i]
			}
		}
	}
	if query.Name != "" {
		for i := range students {
			if students[i].Name != nil && *students[i].Name == query.Name {
				return &students[i]
			}
		}
	}
	return nil
}

func scoredItem(course *models.Course, resourceID string, score, totalScore float64) dto.ScoredItem {
	item := dto.ScoredItem{
		ResourceID: resourceID,
		Score:      score,
		TotalScore: totalScore,
	}
	if resource, ok := course.Resources[resourceID]; ok {
		item.Title = resource.Title
		item.TeachingWeek = resource.TeachingWeek
	}
	if totalScore > 0 {
		percentage := score / totalScore * 100
		item.Percentage = &percentage
	}
	return item
}

func meanPercentage(items []dto.ScoredItem) float64 {
	var values []float64
	for _, item := range items {
		if item.Percentage != nil {
			values = append(values, *item.Percentage)
		}
	}
	return mean(values)
}

func studentDetailSummary(report *dto.StudentDetailReport) string {
	displayName := report.Basic.StudentID
	if report.Basic.Name != nil {
		displayName = *report.Basic.Name
	}

	return strings.Join([]string{
		fmt.Sprintf("Profile for student %s:", displayName),
		fmt.Sprintf("- videos: %d records, total watch time %s", report.Video.RecordCount, report.Video.TotalTimeText),
		fmt.Sprintf("- homework: %d submissions, average score %.1f%%", len(report.Homeworks), meanPercentage(report.Homeworks)),
		fmt.Sprintf("- exams: %d sittings, average score %.1f%%", len(report.Exams), meanPercentage(report.Exams)),
		fmt.Sprintf("- attendance: %d records, %d present, %d absent, %d on leave, rate %.1f%%",
			report.Attendance.Total, report.Attendance.Present, report.Attendance.Absent,
			report.Attendance.Leave, report.Attendance.AttendanceRate),
	}, "\n")
}

package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

// Attendance aggregates every attendance record globally and per check-in
// event. Events without a check-item id fall back to a name-based key;
// undated events sort last.
func Attendance(course *models.Course) dto.AttendanceReport {
	ctx := buildContext(course)

	report := dto.AttendanceReport{
		ReportMeta:    newMeta(course),
		TotalStudents: ctx.totalStudents,
	}

	var global statusTally
	events := make(map[string]*dto.AttendanceEvent)
	var order []string

	for _, student := range ctx.students {
		for _, record := range student.AttendanceRecords {
			report.TotalRecords++
			global.add(record.Status)

			key := record.CheckItemID
			if key == "" {
				key = "name:" + record.Name
			}
			event := events[key]
			if event == nil {
				event = &dto.AttendanceEvent{
					CheckItemID: record.CheckItemID,
					Name:        record.Name,
					StartTime:   record.EventTime,
				}
				events[key] = event
				order = append(order, key)
			}

			event.Total++
			switch record.Status {
			case models.AttendPresent:
				event.Present++
			case models.AttendAbsent:
				event.Absent++
			case models.AttendLeave:
				event.Leave++
			case models.AttendLate:
				event.Late++
			case models.AttendEarlyLeave:
				event.EarlyLeave++
			default:
				event.Unknown++
			}
		}
	}

	for _, key := range order {
		event := events[key]
		if event.Total > 0 {
			event.PresentRate = round1(float64(event.Present) / float64(event.Total) * 100)
			event.AbsentRate = round1(float64(event.Absent) / float64(event.Total) * 100)
		}
		report.Events = append(report.Events, *event)
	}

	sort.SliceStable(report.Events, func(i, j int) bool {
		a, b := report.Events[i], report.Events[j]
		if (a.StartTime == "") != (b.StartTime == "") {
			return b.StartTime == ""
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.Name < b.Name
	})

	report.EventCount = len(report.Events)
	report.Summary = dto.AttendanceSummary{
		Present:    global.present,
		Absent:     global.absent,
		Leave:      global.leave,
		Late:       global.late,
		EarlyLeave: global.earlyLeave,
		Unknown:    global.unknown,
	}
	if report.TotalRecords > 0 {
		report.Summary.PresentRate = round1(float64(global.present) / float64(report.TotalRecords) * 100)
		report.Summary.AbsentRate = round1(float64(global.absent) / float64(report.TotalRecords) * 100)
	}

	report.AnalysisText = strings.Join([]string{
		"Attendance overview:",
		fmt.Sprintf("- %d students, %d attendance records across %d events",
			report.TotalStudents, report.TotalRecords, report.EventCount),
		fmt.Sprintf("- present %d (%.1f%%), absent %d (%.1f%%), leave %d, late %d, early leave %d, unknown %d",
			report.Summary.Present, report.Summary.PresentRate,
			report.Summary.Absent, report.Summary.AbsentRate,
			report.Summary.Leave, report.Summary.Late, report.Summary.EarlyLeave, report.Summary.Unknown),
	}, "\n")

	return report
}

// AttendanceEvents is the date-oriented attendance pass: it resolves each
// event's timestamp into an ISO date plus a display label and surfaces the
// best and worst attended events.
func AttendanceEvents(course *models.Course) dto.AttendanceEventsReport {
	ctx := buildContext(course)

	report := dto.AttendanceEventsReport{
		ReportMeta:    newMeta(course),
		TotalStudents: ctx.totalStudents,
	}

	type dateEvent struct {
		event dto.AttendanceDateEvent
		tally statusTally
	}
	events := make(map[string]*dateEvent)
	var order []string

	for _, student := range ctx.students {
		for _, record := range student.AttendanceRecords {
			key := record.CheckItemID
			if key == "" {
				key = strings.TrimSpace(record.Name) + "|" + record.EventTime
			}
			if record.CheckItemID == "" && strings.TrimSpace(record.Name) == "" && record.EventTime == "" {
				continue
			}

			entry := events[key]
			if entry == nil {
				date, label := parseEventDate(record.EventTime)
				entry = &dateEvent{
					event: dto.AttendanceDateEvent{
						CheckItemID: record.CheckItemID,
						Name:        record.Name,
						Date:        date,
						DateLabel:   label,
						StartTime:   record.EventTime,
					},
				}
				events[key] = entry
				order = append(order, key)
			}
			entry.tally.add(record.Status)
		}
	}

	for _, key := range order {
		entry := events[key]
		event := entry.event
		event.Present = entry.tally.present
		event.Absent = entry.tally.absent
		event.Leave = entry.tally.leave
		event.Late = entry.tally.late
		event.EarlyLeave = entry.tally.earlyLeave
		event.Unknown = entry.tally.unknown
		event.Total = entry.tally.total()
		if event.Total > 0 {
			event.AttendanceRate = round1(float64(event.Present) / float64(event.Total) * 100)
		}
		report.Events = append(report.Events, event)
	}

	sort.SliceStable(report.Events, func(i, j int) bool {
		a, b := report.Events[i], report.Events[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.Name < b.Name
	})

	for i := range report.Events {
		event := report.Events[i]
		if report.BestEvent == nil || event.AttendanceRate > report.BestEvent.AttendanceRate {
			best := event
			report.BestEvent = &best
		}
		if report.WorstEvent == nil || event.AttendanceRate < report.WorstEvent.AttendanceRate {
			worst := event
			report.WorstEvent = &worst
		}
	}

	lines := []string{
		"Attendance by event:",
		fmt.Sprintf("- %d students, %d check-in events recorded", report.TotalStudents, len(report.Events)),
	}
	if report.BestEvent != nil {
		lines = append(lines, fmt.Sprintf("- best attendance: %s (%s), %.1f%%",
			report.BestEvent.Name, eventDateText(report.BestEvent), report.BestEvent.AttendanceRate))
		lines = append(lines, fmt.Sprintf("- worst attendance: %s (%s), %.1f%%",
			report.WorstEvent.Name, eventDateText(report.WorstEvent), report.WorstEvent.AttendanceRate))
	}
	report.AnalysisText = strings.Join(lines, "\n")

	return report
}

func eventDateText(event *dto.AttendanceDateEvent) string {
	if event.DateLabel != "" {
		return event.DateLabel
	}
	return "undated"
}

// parseEventDate extracts an ISO date and a month-day display label from an
// event timestamp. Full ISO-8601 parses first; otherwise a YYYY-MM-DD prefix
// is split out; when neither works the raw string becomes the label.
func parseEventDate(value string) (string, string) {
	if value == "" {
		return "", ""
	}

	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("2006-01-02"), parsed.Format("Jan 2")
		}
	}

	head := value
	if idx := strings.IndexAny(head, "T "); idx >= 0 {
		head = head[:idx]
	}
	parts := strings.Split(head, "-")
	if len(parts) >= 3 {
		iso := strings.Join(parts[:3], "-")
		month, errMonth := strconv.Atoi(parts[1])
		day, errDay := strconv.Atoi(parts[2])
		if errMonth == nil && errDay == nil && month >= 1 && month <= 12 {
			return iso, fmt.Sprintf("%s %d", time.Month(month).String()[:3], day)
		}
		return iso, iso
	}

	return "", value
}

// Package analytics computes derived reports over a normalized Course. Every
// pass is pure and read-only: it flattens the course into a fresh context,
// never caches inside the Course, and is safe to run concurrently against the
// same instance.
package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/models"
)

type courseContext struct {
	course        *models.Course
	resources     []models.Resource
	students      []models.Student
	totalStudents int
}

// buildContext flattens teaching classes into one student list and the
// resource map into a slice sorted by resource id, so every pass sees the
// same deterministic ordering.
func buildContext(course *models.Course) courseContext {
	students := make([]models.Student, 0)
	for _, class := range course.Classes {
		students = append(students, class.Students...)
	}

	resources := make([]models.Resource, 0, len(course.Resources))
	for _, resource := range course.Resources {
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool {
		return resources[i].ResourceID < resources[j].ResourceID
	})

	return courseContext{
		course:        course,
		resources:     resources,
		students:      students,
		totalStudents: len(students),
	}
}

func newMeta(course *models.Course) dto.ReportMeta {
	return dto.ReportMeta{CourseID: course.CourseID, CourseName: course.CourseName}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// formatWatchTime renders seconds as "2h 5m" / "42m" for summary text.
func formatWatchTime(seconds float64) string {
	if seconds <= 0 {
		return "0m"
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

func resourceTitle(course *models.Course, resourceID string) string {
	if resource, ok := course.Resources[resourceID]; ok {
		return resource.Title
	}
	return "unknown resource"
}

// statusTally buckets attendance statuses; each record lands in exactly one
// bucket.
type statusTally struct {
	present, absent, leave, late, earlyLeave, unknown int
}

func (t *statusTally) add(status models.AttendStatus) {
	switch status {
	case models.AttendPresent:
		t.present++
	case models.AttendAbsent:
		t.absent++
	case models.AttendLeave:
		t.leave++
	case models.AttendLate:
		t.late++
	case models.AttendEarlyLeave:
		t.earlyLeave++
	default:
		t.unknown++
	}
}

func (t *statusTally) total() int {
	return t.present + t.absent + t.leave + t.late + t.earlyLeave + t.unknown
}

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shuishan-lab/clad-core/internal/analytics"
	"github.com/shuishan-lab/clad-core/internal/config"
	"github.com/shuishan-lab/clad-core/internal/dto"
	"github.com/shuishan-lab/clad-core/internal/store"
)

func main() {
	courseID := flag.String("course", "", "course identifier to analyze")
	report := flag.String("report", "overview",
		"report to produce: overview|statistics|learning-path|performance|resource-usage|attendance|attendance-events|student-detail|list|stats|errors")
	studentID := flag.String("student", "", "student id for the student-detail report")
	username := flag.String("username", "", "student username for the student-detail report")
	name := flag.String("name", "", "student display name for the student-detail report")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	courses, err := store.New(cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialise course store: %v", err)
	}

	switch *report {
	case "list":
		type entry struct {
			CourseID   string `json:"course_id"`
			CourseName string `json:"course_name"`
			FileName   string `json:"file_name"`
		}
		var entries []entry
		for _, course := range courses.List() {
			entries = append(entries, entry{course.CourseID, course.CourseName, course.FileName})
		}
		printJSON(entries)
		return
	case "stats":
		printJSON(courses.Stats())
		return
	case "errors":
		printJSON(courses.LoadErrors())
		return
	}

	course := courses.Get(*courseID)
	if course == nil {
		log.Fatalf("course %q not found", *courseID)
	}

	var data any
	switch *report {
	case "overview":
		data = analytics.Overview(course)
	case "statistics":
		data = analytics.Statistics(course)
	case "learning-path":
		data = analytics.LearningPath(course)
	case "performance":
		data = analytics.StudentPerformance(course)
	case "resource-usage":
		data = analytics.ResourceUsage(course)
	case "attendance":
		data = analytics.Attendance(course)
	case "attendance-events":
		data = analytics.AttendanceEvents(course)
	case "student-detail":
		detail, err := analytics.StudentDetail(course, analytics.StudentQuery{
			StudentID: *studentID,
			Username:  *username,
			Name:      *name,
		})
		if errors.Is(err, analytics.ErrStudentNotFound) {
			log.Fatalf("no student matches id=%q username=%q name=%q", *studentID, *username, *name)
		}
		if err != nil {
			log.Fatalf("student detail failed: %v", err)
		}
		data = detail
	default:
		log.Fatalf("unknown report %q", *report)
	}

	printJSON(dto.Envelope{
		ReportID:    uuid.NewString(),
		Report:      *report,
		GeneratedAt: time.Now().UTC(),
		Data:        data,
	})
}

func printJSON(value any) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode output: %v", err)
	}
	fmt.Println(string(encoded))
}

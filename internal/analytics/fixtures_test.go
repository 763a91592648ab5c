package analytics

import (
	"fmt"

	"github.com/shuishan-lab/clad-core/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// fixtureCourse wraps students and resources into a one-class course.
func fixtureCourse(resources []models.Resource, students []models.Student) *models.Course {
	resourceMap := make(map[string]models.Resource, len(resources))
	for _, resource := range resources {
		resourceMap[resource.ResourceID] = resource
	}
	return &models.Course{
		CourseID:   "C1",
		CourseName: "Test Course",
		FileName:   "c1.json",
		Resources:  resourceMap,
		Classes: []models.TeachClass{
			{ClassID: "tc1", Students: students},
		},
	}
}

func videoAt(resourceID, startTime string) models.VideoRecord {
	record := models.VideoRecord{ResourceID: resourceID, ViewTime: 60}
	if startTime != "" {
		record.StartTime = strPtr(startTime)
	}
	return record
}

func attendance(status models.AttendStatus, checkItemID, name, eventTime string) models.AttendanceRecord {
	return models.AttendanceRecord{
		Status:      status,
		CheckItemID: checkItemID,
		Name:        name,
		EventTime:   eventTime,
	}
}

func numberedStudent(i int) models.Student {
	return models.Student{StudentID: fmt.Sprintf("s%d", i)}
}

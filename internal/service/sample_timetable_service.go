package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stemsi/asts-console/internal/model"
)

// ErrMissingFields is returned when a sample class lacks title, day or startTime.
var ErrMissingFields = errors.New("missing required fields")

var sampleClasses = []model.ClassEvent{
	{ID: "1", Title: "ETW3482_MA_S1", Location: "CAMPUS", Type: "Tutorial", Code: "07", Room: "MA_Tutorial_6210", Day: 3, StartTime: 8, EndTime: 10, Color: "bg-green-100"},
	{ID: "2", Title: "FIT3152_MA_S1", Location: "CAMPUS", Type: "Seminar", Code: "01", Room: "MA_Active_Learning_Classroom_9401", Day: 1, StartTime: 10, EndTime: 12, Color: "bg-yellow-100"},
	{ID: "3", Title: "FIT3152_MA_S1", Location: "CAMPUS", Type: "Applied", Code: "02", Room: "MA_ClassRoom_6103", Day: 3, StartTime: 10, EndTime: 12, Color: "bg-blue-100"},
	{ID: "4", Title: "FIT3155_MA_S1", Location: "CAMPUS", Type: "Laboratory", Code: "01", Room: "MA_Active_Learning_Classroom_6103", Day: 4, StartTime: 10, EndTime: 13, Color: "bg-pink-200"},
	{ID: "5", Title: "FIT3162_MA_S1", Location: "CAMPUS", Type: "Tutorial", Code: "02", Room: "MA_NextGen_Four", Day: 1, StartTime: 14, EndTime: 16, Color: "bg-green-100"},
	{ID: "6", Title: "FIT3162_MA_S1", Location: "CAMPUS", Type: "Seminar", Code: "01", Room: "MA_LT_5001", Day: 0, StartTime: 16, EndTime: 18, Color: "bg-yellow-100"},
	{ID: "7", Title: "FIT3155_MA_S1", Location: "CAMPUS", Type: "Workshop", Code: "01", Room: "MA_LT_4108", Day: 0, StartTime: 19, EndTime: 21, Color: "bg-green-100"},
}

// SampleTimetableService serves a fixed demo week. Writes are acknowledged
// and echoed but never stored.
type SampleTimetableService struct{}

func NewSampleTimetableService() *SampleTimetableService {
	return &SampleTimetableService{}
}

// Classes returns the sample week. weekStart is accepted for API
// compatibility and ignored.
func (s *SampleTimetableService) Classes(weekStart string) []model.ClassEvent {
	out := make([]model.ClassEvent, len(sampleClasses))
	copy(out, sampleClasses)
	return out
}

// Add echoes body as a new class. An id is generated only when body has
// none, and a missing color is derived from the class type.
func (s *SampleTimetableService) Add(body map[string]interface{}) (map[string]interface{}, error) {
	if title, _ := body["title"].(string); title == "" {
		return nil, ErrMissingFields
	}
	if _, ok := body["day"]; !ok {
		return nil, ErrMissingFields
	}
	if _, ok := body["startTime"]; !ok {
		return nil, ErrMissingFields
	}

	class := make(map[string]interface{}, len(body)+2)
	class["id"] = uuid.New().String()
	for k, v := range body {
		class[k] = v
	}
	if color, _ := body["color"].(string); color == "" {
		classType, _ := body["type"].(string)
		class["color"] = SampleColor(classType)
	}
	return class, nil
}

// Update echoes body as class id. An id in body takes precedence.
func (s *SampleTimetableService) Update(id string, body map[string]interface{}) (string, map[string]interface{}) {
	class := make(map[string]interface{}, len(body)+1)
	class["id"] = id
	for k, v := range body {
		class[k] = v
	}
	return fmt.Sprintf("Class %s updated successfully", id), class
}

func (s *SampleTimetableService) Delete(id string) string {
	return fmt.Sprintf("Class %s deleted successfully", id)
}

// SampleColor is the default background class of a sample class type.
func SampleColor(classType string) string {
	switch strings.ToLower(classType) {
	case "tutorial", "workshop":
		return "bg-green-100"
	case "seminar":
		return "bg-yellow-100"
	case "laboratory":
		return "bg-pink-200"
	case "applied":
		return "bg-blue-100"
	default:
		return "bg-gray-100"
	}
}

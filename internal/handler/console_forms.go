package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stemsi/asts-console/internal/validator"
)

// Option sources resolved when a form is rendered.
const (
	optYears         = "years"
	optSemesters     = "semesters"
	optWeekdays      = "weekdays"
	optUnitLevels    = "unitLevels"
	optUnitStatuses  = "unitStatuses"
	optVenueTypes    = "venueTypes"
	optPositionTypes = "positionTypes"
)

type field struct {
	Name        string
	Label       string
	Type        string // text, number, email, time, textarea, checkbox, select
	Placeholder string
	Options     string
}

type formDef struct {
	Title  string
	Fields []field
	// Rows are parallel list fields rendered as a table, one unit per line.
	Rows   []field
	submit func(h *ConsoleHandler, c *gin.Context) error
}

// submitForm binds an HTML form post, clamps it and hands it to save.
func submitForm[T any, P interface {
	*T
	model.Form
}](c *gin.Context, save func(context.Context, P) error) error {
	p := P(new(T))
	if fields := validator.BindForm(c, p); fields != nil {
		return &service.FieldError{Fields: fields}
	}
	p.Normalize()
	return save(c.Request.Context(), p)
}

var offeringRows = []field{
	{Name: "unitCodeList", Label: "Unit Code", Type: "text", Placeholder: "e.g. FIT3155"},
	{Name: "unitOfferingYear", Label: "Offering Year", Type: "select", Options: optYears},
	{Name: "unitOfferingSemester", Label: "Offering Semester", Type: "select", Options: optSemesters},
}

var formDefs = map[string]formDef{
	service.FormCourse: {
		Title: "Course",
		Fields: []field{
			{Name: "courseCode", Label: "Course Code", Type: "text", Placeholder: "Enter course code"},
			{Name: "courseName", Label: "Course Name", Type: "text", Placeholder: "Enter course name"},
			{Name: "enrolYear", Label: "Enrol Year", Type: "select", Options: optYears},
			{Name: "enrolSemester", Label: "Enrol Semester", Type: "select", Options: optSemesters},
			{Name: "cognate", Label: "Cognate", Type: "checkbox"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveCourse)
		},
	},
	service.FormCourseUnitOffering: {
		Title: "Course Unit Offering",
		Fields: []field{
			{Name: "courseCode", Label: "Course Code", Type: "text", Placeholder: "Enter course code"},
			{Name: "enrolYear", Label: "Enrol Year", Type: "select", Options: optYears},
			{Name: "enrolSemester", Label: "Enrol Semester", Type: "select", Options: optSemesters},
			{Name: "cognate", Label: "Cognate", Type: "checkbox"},
		},
		Rows: offeringRows,
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveCourseUnitOffering)
		},
	},
	service.FormEducator: {
		Title: "Educator",
		Fields: []field{
			{Name: "staffId", Label: "Staff ID", Type: "text", Placeholder: "Enter staff ID"},
			{Name: "name", Label: "Name", Type: "text", Placeholder: "Enter name"},
			{Name: "email", Label: "Email", Type: "email", Placeholder: "Enter email"},
			{Name: "position", Label: "Position", Type: "select", Options: optPositionTypes},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveEducator)
		},
	},
	service.FormEducatorAvailability: {
		Title: "Educator Availability",
		Fields: []field{
			{Name: "staffId", Label: "Staff ID", Type: "text", Placeholder: "Enter staff ID"},
			{Name: "availableYear", Label: "Year", Type: "select", Options: optYears},
			{Name: "availableSemester", Label: "Semester", Type: "select", Options: optSemesters},
			{Name: "availableDay", Label: "Day", Type: "select", Options: optWeekdays},
			{Name: "availableStartTime", Label: "Start Time", Type: "time"},
			{Name: "availableEndTime", Label: "End Time", Type: "time"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveEducatorAvailability)
		},
	},
	service.FormEducatorUnitOffering: {
		Title: "Educator Unit Offering",
		Fields: []field{
			{Name: "staffId", Label: "Staff ID", Type: "text", Placeholder: "Enter staff ID"},
		},
		Rows: offeringRows,
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveEducatorUnitOffering)
		},
	},
	service.FormPosition: {
		Title: "Position",
		Fields: []field{
			{Name: "name", Label: "Name", Type: "text", Placeholder: "Enter position name"},
			{Name: "contactHourPerWeek", Label: "Contact Hours Per Week", Type: "number", Placeholder: "Enter contact hours"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SavePosition)
		},
	},
	service.FormStudent: {
		Title: "Student",
		Fields: []field{
			{Name: "studentId", Label: "Student ID", Type: "text", Placeholder: "Enter student ID"},
			{Name: "studentName", Label: "Student Name", Type: "text", Placeholder: "Enter student name"},
			{Name: "enrolYear", Label: "Enrol Year", Type: "select", Options: optYears},
			{Name: "enrolSemester", Label: "Enrol Semester", Type: "select", Options: optSemesters},
			{Name: "courseCode", Label: "Course Code", Type: "text", Placeholder: "Enter course code"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveStudent)
		},
	},
	service.FormUnit: {
		Title: "Unit",
		Fields: []field{
			{Name: "unitCode", Label: "Unit Code", Type: "text", Placeholder: "Enter unit code"},
			{Name: "unitName", Label: "Unit Name", Type: "text", Placeholder: "Enter unit name"},
			{Name: "unitLevel", Label: "Unit Level", Type: "select", Options: optUnitLevels},
			{Name: "unitDescription", Label: "Unit Description", Type: "textarea", Placeholder: "Enter unit description"},
			{Name: "unitCreditPoint", Label: "Credit Point", Type: "number", Placeholder: "Enter credit point"},
			{Name: "unitClassHoursPerWeek", Label: "Class Hours Per Week", Type: "number"},
			{Name: "unitStatus", Label: "Status", Type: "select", Options: optUnitStatuses},
			{Name: "unitMaximumEnrolmentCount", Label: "Maximum Enrolment", Type: "number"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveUnit)
		},
	},
	service.FormUnitOffering: {
		Title: "Unit Offering",
		Fields: []field{
			{Name: "unitCode", Label: "Unit Code", Type: "text", Placeholder: "Enter unit code"},
			{Name: "offeringYear", Label: "Offering Year", Type: "select", Options: optYears},
			{Name: "offeringSemester", Label: "Offering Semester", Type: "select", Options: optSemesters},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveUnitOffering)
		},
	},
	service.FormUnitOfferingClassDetails: {
		Title: "Unit Offering Class Details",
		Fields: []field{
			{Name: "unitCode", Label: "Unit Code", Type: "text", Placeholder: "Enter unit code"},
			{Name: "offeringYear", Label: "Offering Year", Type: "select", Options: optYears},
			{Name: "offeringSemester", Label: "Offering Semester", Type: "select", Options: optSemesters},
			{Name: "classType", Label: "Class Type", Type: "text", Placeholder: "e.g. LECTURE"},
			{Name: "classDuration", Label: "Class Duration (in minutes)", Type: "number"},
			{Name: "numberOfStudents", Label: "Number of Students", Type: "number"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveUnitOfferingClassDetails)
		},
	},
	service.FormVenue: {
		Title: "Venue",
		Fields: []field{
			{Name: "venueType", Label: "Venue Type", Type: "select", Options: optVenueTypes},
			{Name: "location", Label: "Location", Type: "text", Placeholder: "Enter location"},
			{Name: "capacity", Label: "Capacity", Type: "number", Placeholder: "Enter capacity"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveVenue)
		},
	},
	service.FormVenueType: {
		Title: "Venue Type",
		Fields: []field{
			{Name: "typeName", Label: "Type Name", Type: "text", Placeholder: "Enter venue type"},
		},
		submit: func(h *ConsoleHandler, c *gin.Context) error {
			return submitForm(c, h.refService.SaveVenueType)
		},
	},
}

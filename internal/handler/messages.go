package handler

import "github.com/stemsi/asts-console/internal/service"

const generateSuccessMessage = "Timetable generated successfully!"

var successMessages = map[string]string{
	service.FormCourse:                   "Course inserted/updated successfully!",
	service.FormCourseUnitOffering:       "Course unit offering submitted successfully!",
	service.FormEducator:                 "Educator inserted/updated successfully!",
	service.FormEducatorAvailability:     "Educator availability submitted successfully!",
	service.FormEducatorUnitOffering:     "Educator unit offering submitted successfully!",
	service.FormPosition:                 "Position added successfully!",
	service.FormStudent:                  "Student inserted/updated successfully!",
	service.FormUnit:                     "Unit inserted/updated successfully!",
	service.FormUnitOffering:             "Unit Offering inserted/updated successfully!",
	service.FormUnitOfferingClassDetails: "Unit Offering Class Details inserted/updated successfully!",
	service.FormVenue:                    "Venue inserted/updated successfully!",
	service.FormVenueType:                "Venue type added successfully!",
}

func successMessage(form string) string {
	if m, ok := successMessages[form]; ok {
		return m
	}
	return "Saved successfully!"
}

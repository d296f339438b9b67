package handler

// View keys of the console.
const (
	viewDashboard         = "dashboard"
	viewGeneralTimetable  = "general-timetable"
	viewEducatorTimetable = "educator-timetable"
	viewGenerateTimetable = "generate-timetable"
	viewSelectYearSem     = "select-year-semester"
)

type menuItem struct {
	Key   string
	Label string
}

type menuGroup struct {
	Title string
	Items []menuItem
}

var menu = []menuGroup{
	{Items: []menuItem{{viewDashboard, "Dashboard"}}},
	{Title: "Data Entry", Items: []menuItem{
		{"course", "Course"},
		{"unit", "Unit"},
		{"position", "Position"},
		{"venue-type", "Venue Type"},
		{"venue", "Venue"},
		{"educator", "Educator"},
		{"educator-availability", "Educator Availability"},
		{"student", "Student"},
		{"unit-offering", "Unit Offering"},
		{"unit-offering-class-details", "Unit Offering Class Details"},
		{"educator-unit-offering", "Educator Unit Offering"},
		{"course-unit-offering", "Course Unit Offering"},
	}},
	{Title: "Timetable", Items: []menuItem{
		{viewGenerateTimetable, "Generate Timetable"},
		{viewGeneralTimetable, "General Timetable"},
		{viewEducatorTimetable, "Educator Timetable"},
	}},
}

// resolveView maps aliases onto their canonical view key.
func resolveView(key string) string {
	if key == viewSelectYearSem {
		return viewGeneralTimetable
	}
	return key
}

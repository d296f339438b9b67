package backend

// Backend paths, relative to the configured base URL.
const (
	PathCourse                   = "/info/course/insertOrUpdateCourse"
	PathCourseUnitOffering       = "/info/courseUnitOffering/insertOrUpdateCourseUnitOffering"
	PathEducatorAvailability     = "/info/educator/availability/insert"
	PathEducator                 = "/info/educator/insertOrUpdate"
	PathEducatorPositionTypes    = "/info/educator/fetchAllEducatorPositionType"
	PathEducatorUnitOffering     = "/info/educator/unitOffering/insert"
	PathPosition                 = "/info/educator/position/insert"
	PathStudent                  = "/info/student/insertOrUpdateStudent"
	PathUnit                     = "/info/unit/insertOrUpdate"
	PathUnitOffering             = "/info/unitOffering/insertOrUpdate"
	PathUnitOfferingClassDetails = "/info/unitOffering/classDetails/insertOrUpdate"
	PathVenue                    = "/info/venue/insertOrUpdate"
	PathVenueTypes               = "/info/venue/fetchAllVenueTypes"
	PathVenueType                = "/info/venue/venueType/insert"
	PathEducatorTimetable        = "/info/timetable/getEducatorTimetable"
	PathTimetable                = "/info/timetable/getTimetable"
	PathGenerateTimetable        = "/info/timetable/generateTimetable"
)

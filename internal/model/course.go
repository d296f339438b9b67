package model

// CourseRequest is the payload of /info/course/insertOrUpdateCourse.
type CourseRequest struct {
	CourseCode    string `json:"courseCode" form:"courseCode" binding:"required,max=20"`
	CourseName    string `json:"courseName" form:"courseName" binding:"required,max=200"`
	EnrolYear     string `json:"enrolYear" form:"enrolYear" binding:"required,numeric,len=4"`
	EnrolSemester string `json:"enrolSemester" form:"enrolSemester" binding:"required,semester"`
	Cognate       bool   `json:"cognate" form:"cognate"`
}

func (r *CourseRequest) Trim() {
	trim(&r.CourseCode, &r.CourseName, &r.EnrolYear, &r.EnrolSemester)
}

func (r *CourseRequest) Normalize() {
	r.Trim()
}

// CourseUnitOfferingRequest links a course intake to unit offerings. The
// three lists are parallel: entry i of each describes one unit offering.
type CourseUnitOfferingRequest struct {
	CourseCode           string   `json:"courseCode" form:"courseCode" binding:"required,max=20"`
	UnitCodeList         []string `json:"unitCodeList" form:"unitCodeList" binding:"required,min=1,dive,required"`
	UnitOfferingYear     []string `json:"unitOfferingYear" form:"unitOfferingYear" binding:"required,min=1,dive,numeric,len=4"`
	UnitOfferingSemester []string `json:"unitOfferingSemester" form:"unitOfferingSemester" binding:"required,min=1,dive,required,semester"`
	EnrolYear            string   `json:"enrolYear" form:"enrolYear" binding:"required,numeric,len=4"`
	EnrolSemester        string   `json:"enrolSemester" form:"enrolSemester" binding:"required,semester"`
	Cognate              bool     `json:"cognate" form:"cognate"`
}

func (r *CourseUnitOfferingRequest) Trim() {
	trim(&r.CourseCode, &r.EnrolYear, &r.EnrolSemester)
	trimEach(r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester)
}

func (r *CourseUnitOfferingRequest) Normalize() {
	r.Trim()
	r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester =
		normalizeOfferingRows(r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester)
}

func (r *CourseUnitOfferingRequest) Check() map[string]string {
	return checkOfferingRows(r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester)
}

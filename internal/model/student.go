package model

// StudentRequest is the payload of /info/student/insertOrUpdateStudent.
type StudentRequest struct {
	StudentID     string `json:"studentId" form:"studentId" binding:"required,max=20"`
	StudentName   string `json:"studentName" form:"studentName" binding:"required,max=200"`
	EnrolYear     string `json:"enrolYear" form:"enrolYear" binding:"required,numeric,len=4"`
	EnrolSemester string `json:"enrolSemester" form:"enrolSemester" binding:"required,semester"`
	CourseCode    string `json:"courseCode" form:"courseCode" binding:"required,max=20"`
}

func (r *StudentRequest) Trim() {
	trim(&r.StudentID, &r.StudentName, &r.EnrolYear, &r.EnrolSemester, &r.CourseCode)
}

func (r *StudentRequest) Normalize() {
	r.Trim()
}

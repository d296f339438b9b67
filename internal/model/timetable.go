package model

import "strings"

// TimetableClass is one scheduled teaching session as returned by the
// backend. It has no identity beyond its position in the class list.
type TimetableClass struct {
	ClassType      string `json:"classType"`
	ClassDay       int    `json:"classDay"`
	ClassTimeStart string `json:"classTimeStart"`
	ClassTimeEnd   string `json:"classTimeEnd"`
	UnitCode       string `json:"unitCode"`
	VenueLocation  string `json:"venueLocation"`
}

// TimetableData is the data member of a timetable query response.
type TimetableData struct {
	OfferingYear     string           `json:"offeringYear"`
	OfferingSemester string           `json:"offeringSemester"`
	EducatorName     string           `json:"educatorName"`
	ClassList        []TimetableClass `json:"classList"`
}

// TimetableQuery filters the general timetable. Day and UnitCode are optional
// and omitted from the backend payload when empty.
type TimetableQuery struct {
	OfferingYear     string `json:"offeringYear" form:"offeringYear" binding:"required,numeric,len=4"`
	OfferingSemester string `json:"offeringSemester" form:"offeringSemester" binding:"required,semester"`
	Day              string `json:"day,omitempty" form:"day" binding:"omitempty,oneof=1 2 3 4 5"`
	UnitCode         string `json:"unitCode,omitempty" form:"unitCode" binding:"omitempty,max=20"`
}

// Normalize trims the filters and upper-cases the unit code, which the
// backend matches exactly.
func (q *TimetableQuery) Normalize() {
	trim(&q.OfferingYear, &q.OfferingSemester, &q.Day, &q.UnitCode)
	q.UnitCode = strings.ToUpper(q.UnitCode)
}

// EducatorTimetableQuery selects one educator's timetable.
type EducatorTimetableQuery struct {
	OfferingYear     string `json:"offeringYear" form:"offeringYear" binding:"required,numeric,len=4"`
	OfferingSemester string `json:"offeringSemester" form:"offeringSemester" binding:"required,semester"`
	EducatorID       string `json:"educatorId" form:"educatorId" binding:"required,max=20"`
}

func (q *EducatorTimetableQuery) Normalize() {
	trim(&q.OfferingYear, &q.OfferingSemester, &q.EducatorID)
}

// GenerateTimetableRequest asks the backend to build the timetable of one offering.
type GenerateTimetableRequest struct {
	Year     string `json:"year" form:"year" binding:"required,numeric,len=4"`
	Semester string `json:"semester" form:"semester" binding:"required,semester"`
}

func (r *GenerateTimetableRequest) Normalize() {
	trim(&r.Year, &r.Semester)
}

// TimetableEvent is published when the timetable of an offering changes.
type TimetableEvent struct {
	Event     string `json:"event"`
	Year      string `json:"year"`
	Semester  string `json:"semester"`
	Timestamp int64  `json:"timestamp"`
}

const EventTimetableGenerated = "timetable.generated"

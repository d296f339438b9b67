package model

import "strings"

// Unit level bounds enforced before anything is sent to the backend.
const (
	MinUnitLevel = 1
	MaxUnitLevel = 10
)

// MaxClassDurationMinutes bounds a class duration, which is given in minutes.
const MaxClassDurationMinutes = 1440

// UnitRequest is the payload of /info/unit/insertOrUpdate.
type UnitRequest struct {
	UnitCode                  string `json:"unitCode" form:"unitCode" binding:"required,max=20"`
	UnitName                  string `json:"unitName" form:"unitName" binding:"required,max=200"`
	UnitLevel                 int    `json:"unitLevel" form:"unitLevel" binding:"required,min=1,max=10"`
	UnitDescription           string `json:"unitDescription" form:"unitDescription" binding:"max=2000"`
	UnitCreditPoint           int    `json:"unitCreditPoint" form:"unitCreditPoint" binding:"min=0,max=48"`
	UnitClassHoursPerWeek     int    `json:"unitClassHoursPerWeek" form:"unitClassHoursPerWeek" binding:"min=0,max=40"`
	UnitStatus                string `json:"unitStatus" form:"unitStatus" binding:"required,oneof=ACTIVE INACTIVE"`
	UnitMaximumEnrolmentCount int    `json:"unitMaximumEnrolmentCount" form:"unitMaximumEnrolmentCount" binding:"required,min=1"`
}

func (r *UnitRequest) Trim() {
	trim(&r.UnitCode, &r.UnitName, &r.UnitDescription, &r.UnitStatus)
}

func (r *UnitRequest) Normalize() {
	r.Trim()
	r.UnitStatus = strings.ToUpper(r.UnitStatus)
	r.UnitLevel = clamp(r.UnitLevel, MinUnitLevel, MaxUnitLevel)
	r.UnitCreditPoint = clamp(r.UnitCreditPoint, 0, 48)
	r.UnitClassHoursPerWeek = clamp(r.UnitClassHoursPerWeek, 0, 40)
	if r.UnitMaximumEnrolmentCount < 0 {
		r.UnitMaximumEnrolmentCount = 1
	}
}

// UnitOfferingRequest is the payload of /info/unitOffering/insertOrUpdate.
type UnitOfferingRequest struct {
	UnitCode         string `json:"unitCode" form:"unitCode" binding:"required,max=20"`
	OfferingYear     string `json:"offeringYear" form:"offeringYear" binding:"required,numeric,len=4"`
	OfferingSemester string `json:"offeringSemester" form:"offeringSemester" binding:"required,semester"`
}

func (r *UnitOfferingRequest) Trim() {
	trim(&r.UnitCode, &r.OfferingYear, &r.OfferingSemester)
}

func (r *UnitOfferingRequest) Normalize() {
	r.Trim()
}

// UnitOfferingClassDetailsRequest describes one class type of a unit offering.
type UnitOfferingClassDetailsRequest struct {
	UnitCode         string `json:"unitCode" form:"unitCode" binding:"required,max=20"`
	OfferingYear     string `json:"offeringYear" form:"offeringYear" binding:"required,numeric,len=4"`
	OfferingSemester string `json:"offeringSemester" form:"offeringSemester" binding:"required,semester"`
	ClassType        string `json:"classType" form:"classType" binding:"required,max=50"`
	ClassDuration    int    `json:"classDuration" form:"classDuration" binding:"required,min=1,max=1440"` // minutes
	NumberOfStudents int    `json:"numberOfStudents" form:"numberOfStudents" binding:"required,min=1"`
}

func (r *UnitOfferingClassDetailsRequest) Trim() {
	trim(&r.UnitCode, &r.OfferingYear, &r.OfferingSemester, &r.ClassType)
}

func (r *UnitOfferingClassDetailsRequest) Normalize() {
	r.Trim()
	r.ClassType = strings.ToUpper(r.ClassType)
	r.ClassDuration = clamp(r.ClassDuration, 1, MaxClassDurationMinutes)
	if r.NumberOfStudents < 0 {
		r.NumberOfStudents = 1
	}
}

package model

// EducatorRequest is the payload of /info/educator/insertOrUpdate.
type EducatorRequest struct {
	StaffID  string `json:"staffId" form:"staffId" binding:"required,max=20"`
	Name     string `json:"name" form:"name" binding:"required,max=200"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Position string `json:"position" form:"position" binding:"required"`
}

func (r *EducatorRequest) Trim() {
	trim(&r.StaffID, &r.Name, &r.Email, &r.Position)
}

func (r *EducatorRequest) Normalize() {
	r.Trim()
}

// EducatorAvailabilityRequest records a weekly window an educator can teach.
// AvailableDay is a teaching day, 1 = Monday through 5 = Friday.
type EducatorAvailabilityRequest struct {
	StaffID            string `json:"staffId" form:"staffId" binding:"required,max=20"`
	AvailableYear      string `json:"availableYear" form:"availableYear" binding:"required,numeric,len=4"`
	AvailableSemester  string `json:"availableSemester" form:"availableSemester" binding:"required,semester"`
	AvailableDay       *int   `json:"availableDay" form:"availableDay" binding:"required,min=1,max=5"`
	AvailableStartTime string `json:"availableStartTime" form:"availableStartTime" binding:"required,hhmm"`
	AvailableEndTime   string `json:"availableEndTime" form:"availableEndTime" binding:"required,hhmm"`
}

func (r *EducatorAvailabilityRequest) Trim() {
	trim(&r.StaffID, &r.AvailableYear, &r.AvailableSemester, &r.AvailableStartTime, &r.AvailableEndTime)
}

func (r *EducatorAvailabilityRequest) Normalize() {
	r.Trim()
}

// Check requires the window to end after it starts. HH:MM strings compare
// in time order.
func (r *EducatorAvailabilityRequest) Check() map[string]string {
	if r.AvailableEndTime <= r.AvailableStartTime {
		return map[string]string{"availableEndTime": "availableEndTime must be after availableStartTime"}
	}
	return nil
}

// EducatorUnitOfferingRequest assigns an educator to unit offerings; the
// three lists are parallel.
type EducatorUnitOfferingRequest struct {
	StaffID              string   `json:"staffId" form:"staffId" binding:"required,max=20"`
	UnitCodeList         []string `json:"unitCodeList" form:"unitCodeList" binding:"required,min=1,dive,required"`
	UnitOfferingYear     []string `json:"unitOfferingYear" form:"unitOfferingYear" binding:"required,min=1,dive,numeric,len=4"`
	UnitOfferingSemester []string `json:"unitOfferingSemester" form:"unitOfferingSemester" binding:"required,min=1,dive,required,semester"`
}

func (r *EducatorUnitOfferingRequest) Trim() {
	trim(&r.StaffID)
	trimEach(r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester)
}

func (r *EducatorUnitOfferingRequest) Normalize() {
	r.Trim()
	r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester =
		normalizeOfferingRows(r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester)
}

func (r *EducatorUnitOfferingRequest) Check() map[string]string {
	return checkOfferingRows(r.UnitCodeList, r.UnitOfferingYear, r.UnitOfferingSemester)
}

// PositionRequest defines an educator position and its weekly contact hours.
type PositionRequest struct {
	Name               string `json:"name" form:"name" binding:"required,max=100"`
	ContactHourPerWeek int    `json:"contactHourPerWeek" form:"contactHourPerWeek" binding:"min=0,max=60"`
}

func (r *PositionRequest) Trim() {
	trim(&r.Name)
}

func (r *PositionRequest) Normalize() {
	r.Trim()
	r.ContactHourPerWeek = clamp(r.ContactHourPerWeek, 0, 60)
}

package model

// VenueRequest is the payload of /info/venue/insertOrUpdate.
type VenueRequest struct {
	VenueType string `json:"venueType" form:"venueType" binding:"required"`
	Location  string `json:"location" form:"location" binding:"required,max=200"`
	Capacity  int    `json:"capacity" form:"capacity" binding:"required,min=1,max=5000"`
}

func (r *VenueRequest) Trim() {
	trim(&r.VenueType, &r.Location)
}

func (r *VenueRequest) Normalize() {
	r.Trim()
	r.Capacity = clamp(r.Capacity, 1, 5000)
}

// VenueTypeRequest is the payload of /info/venue/venueType/insert.
type VenueTypeRequest struct {
	TypeName string `json:"typeName" form:"typeName" binding:"required,max=100"`
}

func (r *VenueTypeRequest) Trim() {
	trim(&r.TypeName)
}

func (r *VenueTypeRequest) Normalize() {
	r.Trim()
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/response"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stemsi/asts-console/internal/validator"
)

// ReferenceHandler exposes the reference-data forms as a JSON API.
type ReferenceHandler struct {
	refService *service.ReferenceService
}

func NewReferenceHandler(refService *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{refService: refService}
}

// save binds a JSON body into req, runs fn and answers with the form's
// success message. JSON values are trimmed by the service but never clamped.
func (h *ReferenceHandler) save(c *gin.Context, form string, req interface{}, fn func(ctx context.Context) error) {
	if fields := validator.Bind(c, req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if err := fn(c.Request.Context()); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"form": form, "message": successMessage(form)})
}

// SaveCourse godoc
// POST /api/v1/reference/course
func (h *ReferenceHandler) SaveCourse(c *gin.Context) {
	var req model.CourseRequest
	h.save(c, service.FormCourse, &req, func(ctx context.Context) error { return h.refService.SaveCourse(ctx, &req) })
}

// SaveCourseUnitOffering godoc
// POST /api/v1/reference/course-unit-offering
func (h *ReferenceHandler) SaveCourseUnitOffering(c *gin.Context) {
	var req model.CourseUnitOfferingRequest
	h.save(c, service.FormCourseUnitOffering, &req, func(ctx context.Context) error { return h.refService.SaveCourseUnitOffering(ctx, &req) })
}

// SaveEducator godoc
// POST /api/v1/reference/educator
func (h *ReferenceHandler) SaveEducator(c *gin.Context) {
	var req model.EducatorRequest
	h.save(c, service.FormEducator, &req, func(ctx context.Context) error { return h.refService.SaveEducator(ctx, &req) })
}

// SaveEducatorAvailability godoc
// POST /api/v1/reference/educator-availability
func (h *ReferenceHandler) SaveEducatorAvailability(c *gin.Context) {
	var req model.EducatorAvailabilityRequest
	h.save(c, service.FormEducatorAvailability, &req, func(ctx context.Context) error { return h.refService.SaveEducatorAvailability(ctx, &req) })
}

// SaveEducatorUnitOffering godoc
// POST /api/v1/reference/educator-unit-offering
func (h *ReferenceHandler) SaveEducatorUnitOffering(c *gin.Context) {
	var req model.EducatorUnitOfferingRequest
	h.save(c, service.FormEducatorUnitOffering, &req, func(ctx context.Context) error { return h.refService.SaveEducatorUnitOffering(ctx, &req) })
}

// SavePosition godoc
// POST /api/v1/reference/position
func (h *ReferenceHandler) SavePosition(c *gin.Context) {
	var req model.PositionRequest
	h.save(c, service.FormPosition, &req, func(ctx context.Context) error { return h.refService.SavePosition(ctx, &req) })
}

// SaveStudent godoc
// POST /api/v1/reference/student
func (h *ReferenceHandler) SaveStudent(c *gin.Context) {
	var req model.StudentRequest
	h.save(c, service.FormStudent, &req, func(ctx context.Context) error { return h.refService.SaveStudent(ctx, &req) })
}

// SaveUnit godoc
// POST /api/v1/reference/unit
func (h *ReferenceHandler) SaveUnit(c *gin.Context) {
	var req model.UnitRequest
	h.save(c, service.FormUnit, &req, func(ctx context.Context) error { return h.refService.SaveUnit(ctx, &req) })
}

// SaveUnitOffering godoc
// POST /api/v1/reference/unit-offering
func (h *ReferenceHandler) SaveUnitOffering(c *gin.Context) {
	var req model.UnitOfferingRequest
	h.save(c, service.FormUnitOffering, &req, func(ctx context.Context) error { return h.refService.SaveUnitOffering(ctx, &req) })
}

// SaveUnitOfferingClassDetails godoc
// POST /api/v1/reference/unit-offering-class-details
func (h *ReferenceHandler) SaveUnitOfferingClassDetails(c *gin.Context) {
	var req model.UnitOfferingClassDetailsRequest
	h.save(c, service.FormUnitOfferingClassDetails, &req, func(ctx context.Context) error {
		return h.refService.SaveUnitOfferingClassDetails(ctx, &req)
	})
}

// SaveVenue godoc
// POST /api/v1/reference/venue
func (h *ReferenceHandler) SaveVenue(c *gin.Context) {
	var req model.VenueRequest
	h.save(c, service.FormVenue, &req, func(ctx context.Context) error { return h.refService.SaveVenue(ctx, &req) })
}

// SaveVenueType godoc
// POST /api/v1/reference/venue-type
func (h *ReferenceHandler) SaveVenueType(c *gin.Context) {
	var req model.VenueTypeRequest
	h.save(c, service.FormVenueType, &req, func(ctx context.Context) error { return h.refService.SaveVenueType(ctx, &req) })
}

// ListVenueTypes godoc
// GET /api/v1/reference/venue-types
func (h *ReferenceHandler) ListVenueTypes(c *gin.Context) {
	types, err := h.refService.ListVenueTypes(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"venueTypes": nonNil(types)})
}

// ListPositionTypes godoc
// GET /api/v1/reference/position-types
func (h *ReferenceHandler) ListPositionTypes(c *gin.Context) {
	positions, err := h.refService.ListPositionTypes(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"positionTypes": nonNil(positions)})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

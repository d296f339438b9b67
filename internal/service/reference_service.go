package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/logger"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/validator"
)

// Form names used in the submission log and the console.
const (
	FormCourse                   = "course"
	FormCourseUnitOffering       = "course-unit-offering"
	FormEducator                 = "educator"
	FormEducatorAvailability     = "educator-availability"
	FormEducatorUnitOffering     = "educator-unit-offering"
	FormPosition                 = "position"
	FormStudent                  = "student"
	FormUnit                     = "unit"
	FormUnitOffering             = "unit-offering"
	FormUnitOfferingClassDetails = "unit-offering-class-details"
	FormVenue                    = "venue"
	FormVenueType                = "venue-type"
)

// ReferenceService forwards reference-data forms to the ASTS backend.
type ReferenceService struct {
	backend  Backend
	recorder SubmissionRecorder
	log      zerolog.Logger
}

// NewReferenceService creates a new ReferenceService.
func NewReferenceService(b Backend, recorder SubmissionRecorder, log zerolog.Logger) *ReferenceService {
	validator.Setup()
	return &ReferenceService{
		backend:  b,
		recorder: recorder,
		log:      log.With().Str("component", "reference_service").Logger(),
	}
}

func (s *ReferenceService) SaveCourse(ctx context.Context, req *model.CourseRequest) error {
	return s.submit(ctx, FormCourse, backend.PathCourse, req)
}

func (s *ReferenceService) SaveCourseUnitOffering(ctx context.Context, req *model.CourseUnitOfferingRequest) error {
	return s.submit(ctx, FormCourseUnitOffering, backend.PathCourseUnitOffering, req)
}

func (s *ReferenceService) SaveEducator(ctx context.Context, req *model.EducatorRequest) error {
	return s.submit(ctx, FormEducator, backend.PathEducator, req)
}

func (s *ReferenceService) SaveEducatorAvailability(ctx context.Context, req *model.EducatorAvailabilityRequest) error {
	return s.submit(ctx, FormEducatorAvailability, backend.PathEducatorAvailability, req)
}

func (s *ReferenceService) SaveEducatorUnitOffering(ctx context.Context, req *model.EducatorUnitOfferingRequest) error {
	return s.submit(ctx, FormEducatorUnitOffering, backend.PathEducatorUnitOffering, req)
}

func (s *ReferenceService) SavePosition(ctx context.Context, req *model.PositionRequest) error {
	return s.submit(ctx, FormPosition, backend.PathPosition, req)
}

func (s *ReferenceService) SaveStudent(ctx context.Context, req *model.StudentRequest) error {
	return s.submit(ctx, FormStudent, backend.PathStudent, req)
}

func (s *ReferenceService) SaveUnit(ctx context.Context, req *model.UnitRequest) error {
	return s.submit(ctx, FormUnit, backend.PathUnit, req)
}

func (s *ReferenceService) SaveUnitOffering(ctx context.Context, req *model.UnitOfferingRequest) error {
	return s.submit(ctx, FormUnitOffering, backend.PathUnitOffering, req)
}

func (s *ReferenceService) SaveUnitOfferingClassDetails(ctx context.Context, req *model.UnitOfferingClassDetailsRequest) error {
	return s.submit(ctx, FormUnitOfferingClassDetails, backend.PathUnitOfferingClassDetails, req)
}

func (s *ReferenceService) SaveVenue(ctx context.Context, req *model.VenueRequest) error {
	return s.submit(ctx, FormVenue, backend.PathVenue, req)
}

func (s *ReferenceService) SaveVenueType(ctx context.Context, req *model.VenueTypeRequest) error {
	return s.submit(ctx, FormVenueType, backend.PathVenueType, req)
}

// ListVenueTypes returns the venue types offered by the venue form.
func (s *ReferenceService) ListVenueTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := s.backend.Get(ctx, backend.PathVenueTypes, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// ListPositionTypes returns the positions offered by the educator form.
func (s *ReferenceService) ListPositionTypes(ctx context.Context) ([]string, error) {
	var positions []string
	if err := s.backend.Get(ctx, backend.PathEducatorPositionTypes, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// submit trims and validates payload, posts it and records the outcome. Invalid
// payloads never reach the backend and are not recorded.
func (s *ReferenceService) submit(ctx context.Context, form, path string, payload interface{}) error {
	if t, ok := payload.(model.Trimmer); ok {
		t.Trim()
	}
	if fields := validator.Validate(payload); fields != nil {
		return &FieldError{Fields: fields}
	}
	if c, ok := payload.(model.Checker); ok {
		if fields := c.Check(); fields != nil {
			return &FieldError{Fields: fields}
		}
	}

	err := s.backend.Post(ctx, path, payload, nil)

	entry := model.SubmissionLog{
		Form:      form,
		Endpoint:  path,
		Success:   err == nil,
		RequestID: logger.RequestID(ctx),
	}
	if raw, mErr := json.Marshal(payload); mErr == nil {
		entry.Payload = raw
	}
	if err != nil {
		entry.Message = backend.Message(err)
	}
	s.recorder.Record(ctx, entry)

	if err != nil {
		log := logger.For(ctx, s.log)
		log.Warn().Err(err).Str("form", form).Msg("submission failed")
	}
	return err
}

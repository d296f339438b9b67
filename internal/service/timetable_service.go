package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/cache"
	"github.com/stemsi/asts-console/internal/config"
	"github.com/stemsi/asts-console/internal/export"
	"github.com/stemsi/asts-console/internal/logger"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/timetable"
	"github.com/stemsi/asts-console/internal/validator"
)

// ErrGenerationIncomplete is returned when the backend acknowledges a
// generation request but reports that no timetable was produced.
var ErrGenerationIncomplete = errors.New("timetable generation did not complete")

// TimetableService reads and generates timetables through the backend.
type TimetableService struct {
	backend   Backend
	cache     cache.Store
	publisher cache.Publisher
	cacheTTL  time.Duration
	log       zerolog.Logger
}

// NewTimetableService creates a new TimetableService. Pass cache.Nop{} for
// store and publisher when Redis is not configured.
func NewTimetableService(b Backend, store cache.Store, publisher cache.Publisher, cacheTTL time.Duration, log zerolog.Logger) *TimetableService {
	validator.Setup()
	return &TimetableService{
		backend:   b,
		cache:     store,
		publisher: publisher,
		cacheTTL:  cacheTTL,
		log:       log.With().Str("component", "timetable_service").Logger(),
	}
}

// Query fetches the general timetable of an offering. Results are cached
// per filter combination; cache failures fall through to the backend.
func (s *TimetableService) Query(ctx context.Context, q model.TimetableQuery) (*model.TimetableData, error) {
	q.Normalize()
	if fields := validator.Validate(&q); fields != nil {
		return nil, &FieldError{Fields: fields}
	}
	log := logger.For(ctx, s.log)
	key := config.CacheKey.TimetableQueryKey(q.OfferingYear, q.OfferingSemester, q.Day, q.UnitCode)

	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("timetable cache read failed")
	} else if ok {
		var data model.TimetableData
		if err := json.Unmarshal(raw, &data); err == nil {
			return &data, nil
		}
	}

	var data model.TimetableData
	if err := s.backend.Post(ctx, backend.PathTimetable, timetable.BuildQueryPayload(q), &data); err != nil {
		return nil, err
	}
	if data.ClassList == nil {
		data.ClassList = []model.TimetableClass{}
	}
	if data.OfferingYear == "" {
		data.OfferingYear, data.OfferingSemester = q.OfferingYear, q.OfferingSemester
	}

	if raw, err := json.Marshal(data); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("timetable cache write failed")
		}
	}
	return &data, nil
}

// EducatorTimetable fetches the timetable of one educator. It is never cached.
func (s *TimetableService) EducatorTimetable(ctx context.Context, q model.EducatorTimetableQuery) (*model.TimetableData, error) {
	if fields := validator.Validate(&q); fields != nil {
		return nil, &FieldError{Fields: fields}
	}
	var data model.TimetableData
	if err := s.backend.Post(ctx, backend.PathEducatorTimetable, q, &data); err != nil {
		return nil, err
	}
	if data.ClassList == nil {
		data.ClassList = []model.TimetableClass{}
	}
	return &data, nil
}

// Generate asks the backend to build the timetable of an offering. On
// success cached queries of that offering are dropped and a
// timetable.generated event is published.
func (s *TimetableService) Generate(ctx context.Context, req model.GenerateTimetableRequest) error {
	if fields := validator.Validate(&req); fields != nil {
		return &FieldError{Fields: fields}
	}
	log := logger.For(ctx, s.log).With().Str("year", req.Year).Str("semester", req.Semester).Logger()

	var generated bool
	if err := s.backend.Post(ctx, backend.PathGenerateTimetable, req, &generated); err != nil {
		return err
	}
	if !generated {
		log.Warn().Msg("backend reported incomplete generation")
		return ErrGenerationIncomplete
	}

	if err := s.cache.DeleteMatching(ctx, config.CacheKey.TimetableOfferingPattern(req.Year, req.Semester)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate timetable cache")
	}

	event, _ := json.Marshal(model.TimetableEvent{
		Event:     model.EventTimetableGenerated,
		Year:      req.Year,
		Semester:  req.Semester,
		Timestamp: time.Now().UnixMilli(),
	})
	if err := s.publisher.Publish(ctx, config.CacheKey.TimetableEventsChannel(), event); err != nil {
		log.Warn().Err(err).Msg("failed to publish timetable event")
	}

	log.Info().Msg("timetable generated")
	return nil
}

// Export returns the XLSX workbook of a general timetable query and its
// download name.
func (s *TimetableService) Export(ctx context.Context, q model.TimetableQuery) ([]byte, string, error) {
	data, err := s.Query(ctx, q)
	if err != nil {
		return nil, "", err
	}
	raw, err := export.XLSX(*data)
	if err != nil {
		return nil, "", err
	}
	return raw, export.Filename(*data), nil
}

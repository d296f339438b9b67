package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReferenceRouter(svc testServices) *gin.Engine {
	h := NewReferenceHandler(svc.ref)
	r := gin.New()
	r.POST("/api/v1/reference/unit", h.SaveUnit)
	r.POST("/api/v1/reference/venue-type", h.SaveVenueType)
	r.POST("/api/v1/reference/unit-offering-class-details", h.SaveUnitOfferingClassDetails)
	r.POST("/api/v1/reference/educator-availability", h.SaveEducatorAvailability)
	r.GET("/api/v1/reference/venue-types", h.ListVenueTypes)
	return r
}

func TestReferenceHandler_SaveVenueType(t *testing.T) {
	stub := newStubBackend(t)
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/reference/venue-type", map[string]string{"typeName": " LAB "})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "venue-type", env.Data["form"])
	assert.Equal(t, "Venue type added successfully!", env.Data["message"])

	sent := stub.received(backend.PathVenueType)
	require.Len(t, sent, 1)
	assert.Equal(t, "LAB", sent[0]["typeName"])
}

func TestReferenceHandler_BlankTextIsRejected(t *testing.T) {
	stub := newStubBackend(t)
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/reference/venue-type", map[string]string{"typeName": "   "})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Fields, "typeName")
	assert.Zero(t, stub.calls())
}

func TestReferenceHandler_ClassDurationInMinutes(t *testing.T) {
	stub := newStubBackend(t)
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/reference/unit-offering-class-details", map[string]interface{}{
		"unitCode":         "FIT3155",
		"offeringYear":     "2025",
		"offeringSemester": "1",
		"classType":        "LECTURE",
		"classDuration":    90,
		"numberOfStudents": 120,
	})

	require.Equal(t, http.StatusOK, w.Code)
	sent := stub.received(backend.PathUnitOfferingClassDetails)
	require.Len(t, sent, 1)
	assert.EqualValues(t, 90, sent[0]["classDuration"])
}

func TestReferenceHandler_UnitLevelIsNotClamped(t *testing.T) {
	stub := newStubBackend(t)
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/reference/unit", map[string]interface{}{
		"unitCode":                  "FIT2004",
		"unitName":                  "Algorithms and Data Structures",
		"unitLevel":                 11,
		"unitStatus":                "ACTIVE",
		"unitMaximumEnrolmentCount": 300,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Fields, "unitLevel")
	assert.Zero(t, stub.calls())
}

func TestReferenceHandler_BackendRejection(t *testing.T) {
	stub := newStubBackend(t)
	stub.reject(backend.PathVenueType, "Venue type already exists")
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/reference/venue-type", map[string]string{"typeName": "LAB"})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BACKEND_REJECTED", env.Error.Code)
	assert.Equal(t, "Venue type already exists", env.Error.Message)
}

func TestReferenceHandler_BackendUnavailable(t *testing.T) {
	stub := newStubBackend(t)
	svc := newTestServices(stub.srv.URL)
	stub.srv.Close()
	r := newReferenceRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/v1/reference/venue-type", map[string]string{"typeName": "LAB"})

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "BACKEND_UNAVAILABLE", decodeEnvelope(t, w).Error.Code)
}

func TestReferenceHandler_AvailabilityWindow(t *testing.T) {
	stub := newStubBackend(t)
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/reference/educator-availability", map[string]interface{}{
		"staffId":            "E100",
		"availableYear":      "2025",
		"availableSemester":  "1",
		"availableDay":       1,
		"availableStartTime": "14:00",
		"availableEndTime":   "09:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls())
}

func TestReferenceHandler_ListVenueTypes(t *testing.T) {
	stub := newStubBackend(t)
	stub.reply(backend.PathVenueTypes, []string{"LAB", "LECTURE_HALL"})
	r := newReferenceRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodGet, "/api/v1/reference/venue-types", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"LAB", "LECTURE_HALL"}, decodeEnvelope(t, w).Data["venueTypes"])
}

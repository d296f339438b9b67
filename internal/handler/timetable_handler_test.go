package handler

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimetableRouter(svc testServices) *gin.Engine {
	h := NewTimetableHandler(svc.tt)
	r := gin.New()
	r.POST("/api/v1/timetable/query", h.Query)
	r.POST("/api/v1/timetable/educator", h.Educator)
	r.POST("/api/v1/timetable/generate", h.Generate)
	r.GET("/api/v1/timetable/export", h.Export)
	return r
}

func sampleTimetable() model.TimetableData {
	return model.TimetableData{
		OfferingYear:     "2025",
		OfferingSemester: "1",
		ClassList: []model.TimetableClass{
			{ClassType: "Lecture", ClassDay: 1, ClassTimeStart: "09:00", ClassTimeEnd: "11:00", UnitCode: "FIT1045", VenueLocation: "MA_LT_5001"},
			{ClassType: "Lab", ClassDay: 3, ClassTimeStart: "14:00", ClassTimeEnd: "16:00", UnitCode: "FIT2004", VenueLocation: "MA_LAB_1"},
		},
	}
}

func TestTimetableHandler_Query(t *testing.T) {
	stub := newStubBackend(t)
	stub.reply(backend.PathTimetable, sampleTimetable())
	r := newTimetableRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/timetable/query", map[string]string{
		"offeringYear": "2025", "offeringSemester": "1", "mode": "detailed",
	})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	classes, ok := env.Data["classes"].([]interface{})
	require.True(t, ok)
	require.Len(t, classes, 2)
	assert.Equal(t, "Monday", classes[0].(map[string]interface{})["day"])

	grid, ok := env.Data["grid"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "detailed", grid["mode"])

	sent := stub.received(backend.PathTimetable)
	require.Len(t, sent, 1)
	assert.NotContains(t, sent[0], "day", "empty filters are not sent")
}

func TestTimetableHandler_QueryRejectsBadMode(t *testing.T) {
	stub := newStubBackend(t)
	r := newTimetableRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/timetable/query", map[string]string{
		"offeringYear": "2025", "offeringSemester": "1", "mode": "huge",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls())
}

func TestTimetableHandler_Educator(t *testing.T) {
	stub := newStubBackend(t)
	data := sampleTimetable()
	data.EducatorName = "Dr Ada Lovelace"
	stub.reply(backend.PathEducatorTimetable, data)
	r := newTimetableRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodPost, "/api/v1/timetable/educator", map[string]string{
		"offeringYear": "2025", "offeringSemester": "1", "educatorId": "E100",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Dr Ada Lovelace", decodeEnvelope(t, w).Data["educatorName"])
}

func TestTimetableHandler_Generate(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		stub := newStubBackend(t)
		stub.reply(backend.PathGenerateTimetable, true)
		r := newTimetableRouter(newTestServices(stub.srv.URL))

		w := doJSON(r, http.MethodPost, "/api/v1/timetable/generate", map[string]string{"year": "2025", "semester": "1"})

		require.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, true, env.Data["generated"])
		assert.Equal(t, "Timetable generated successfully!", env.Data["message"])
	})

	t.Run("incomplete", func(t *testing.T) {
		stub := newStubBackend(t)
		stub.reply(backend.PathGenerateTimetable, false)
		r := newTimetableRouter(newTestServices(stub.srv.URL))

		w := doJSON(r, http.MethodPost, "/api/v1/timetable/generate", map[string]string{"year": "2025", "semester": "1"})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "GENERATION_FAILED", decodeEnvelope(t, w).Error.Code)
	})
}

func TestTimetableHandler_Export(t *testing.T) {
	stub := newStubBackend(t)
	stub.reply(backend.PathTimetable, sampleTimetable())
	r := newTimetableRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodGet, "/api/v1/timetable/export?offeringYear=2025&offeringSemester=1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "timetable-2025-s1.xlsx")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestTimetableHandler_ExportNeedsOffering(t *testing.T) {
	stub := newStubBackend(t)
	r := newTimetableRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodGet, "/api/v1/timetable/export?offeringYear=2025", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

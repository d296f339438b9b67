package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsoleRouter(svc testServices) *gin.Engine {
	h := newTestConsole(svc)
	r := gin.New()
	r.GET("/console", h.Index)
	r.GET("/console/:view", h.Show)
	r.POST("/console/:view", h.Submit)
	return r
}

func unitForm(level string) url.Values {
	return url.Values{
		"unitCode":                  {"FIT2004"},
		"unitName":                  {"Algorithms and Data Structures"},
		"unitLevel":                 {level},
		"unitCreditPoint":           {"6"},
		"unitClassHoursPerWeek":     {"4"},
		"unitStatus":                {"active"},
		"unitMaximumEnrolmentCount": {"300"},
	}
}

func TestConsole_IndexRedirects(t *testing.T) {
	r := newConsoleRouter(newTestServices("http://127.0.0.1:1"))

	w := doJSON(r, http.MethodGet, "/console", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/console/dashboard", w.Header().Get("Location"))
}

func TestConsole_Dashboard(t *testing.T) {
	r := newConsoleRouter(newTestServices("http://127.0.0.1:1"))

	w := doJSON(r, http.MethodGet, "/console/dashboard", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to the ASTS dashboard.")
	assert.Contains(t, w.Body.String(), "Data Entry")
}

func TestConsole_FormClampsAndConfirms(t *testing.T) {
	stub := newStubBackend(t)
	r := newConsoleRouter(newTestServices(stub.srv.URL))

	w := doForm(r, "/console/unit", unitForm("11"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "✅ Unit inserted/updated successfully!")
	assert.NotContains(t, w.Body.String(), `value="FIT2004"`, "form resets after success")

	sent := stub.received(backend.PathUnit)
	require.Len(t, sent, 1)
	assert.EqualValues(t, 10, sent[0]["unitLevel"])
	assert.Equal(t, "ACTIVE", sent[0]["unitStatus"])
}

func TestConsole_ClassDurationKeepsMinutes(t *testing.T) {
	stub := newStubBackend(t)
	r := newConsoleRouter(newTestServices(stub.srv.URL))

	w := doForm(r, "/console/unit-offering-class-details", url.Values{
		"unitCode":         {"FIT3155"},
		"offeringYear":     {"2025"},
		"offeringSemester": {"1"},
		"classType":        {"lecture"},
		"classDuration":    {"90"},
		"numberOfStudents": {"120"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	sent := stub.received(backend.PathUnitOfferingClassDetails)
	require.Len(t, sent, 1)
	assert.EqualValues(t, 90, sent[0]["classDuration"])
	assert.Equal(t, "LECTURE", sent[0]["classType"])

	w = doJSON(r, http.MethodGet, "/console/unit-offering-class-details", nil)
	assert.Contains(t, w.Body.String(), "Class Duration (in minutes)")
}

func TestConsole_AvailabilityOffersTeachingDays(t *testing.T) {
	r := newConsoleRouter(newTestServices("http://127.0.0.1:1"))

	w := doJSON(r, http.MethodGet, "/console/educator-availability", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<option value="1">Monday</option>`)
	assert.Contains(t, body, `<option value="5">Friday</option>`)
	assert.NotContains(t, body, ">Sunday<")
	assert.NotContains(t, body, ">Saturday<")
}

func TestConsole_FormKeepsValuesOnRejection(t *testing.T) {
	stub := newStubBackend(t)
	stub.reject(backend.PathUnit, "Unit code is locked")
	r := newConsoleRouter(newTestServices(stub.srv.URL))

	w := doForm(r, "/console/unit", unitForm("3"))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "❌ Error: Unit code is locked")
	assert.Contains(t, w.Body.String(), `value="FIT2004"`)
}

func TestConsole_VenueFormNoticesMissingTypes(t *testing.T) {
	stub := newStubBackend(t)
	stub.reject(backend.PathVenueTypes, "Service down")
	r := newConsoleRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodGet, "/console/venue", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Could not load venue types: Service down")
}

func TestConsole_UnknownView(t *testing.T) {
	r := newConsoleRouter(newTestServices("http://127.0.0.1:1"))

	w := doJSON(r, http.MethodGet, "/console/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Content for reports")

	w = doForm(r, "/console/reports", url.Values{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConsole_GeneralTimetable(t *testing.T) {
	t.Run("instructions before a selection", func(t *testing.T) {
		stub := newStubBackend(t)
		r := newConsoleRouter(newTestServices(stub.srv.URL))

		w := doJSON(r, http.MethodGet, "/console/select-year-semester", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Please select an academic year")
		assert.Zero(t, stub.calls())
	})

	t.Run("grid with detail", func(t *testing.T) {
		stub := newStubBackend(t)
		stub.reply(backend.PathTimetable, sampleTimetable())
		r := newConsoleRouter(newTestServices(stub.srv.URL))

		w := doJSON(r, http.MethodGet, "/console/general-timetable?offeringYear=2025&offeringSemester=1&detail=1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Timetable for 2025 Semester 1")
		assert.Contains(t, body, "FIT1045")
		assert.Contains(t, body, "FIT2004 - Lab")
		assert.Contains(t, body, "2 hour(s)")
		assert.Contains(t, body, "Detailed view")
	})

	t.Run("empty selection", func(t *testing.T) {
		stub := newStubBackend(t)
		stub.reply(backend.PathTimetable, model.TimetableData{OfferingYear: "2025", OfferingSemester: "2"})
		r := newConsoleRouter(newTestServices(stub.srv.URL))

		w := doJSON(r, http.MethodGet, "/console/general-timetable?offeringYear=2025&offeringSemester=2", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No classes found for this selection.")
	})
}

func TestConsole_EducatorTimetable(t *testing.T) {
	stub := newStubBackend(t)
	stub.reply(backend.PathEducatorTimetable, model.TimetableData{
		EducatorName: "Dr Grace Hopper",
		ClassList: []model.TimetableClass{
			{ClassType: "Lecture", ClassDay: 0, ClassTimeStart: "09:00", ClassTimeEnd: "10:00", UnitCode: "FIT9999", VenueLocation: "MA_LT_1"},
			{ClassType: "Lab", ClassDay: 1, ClassTimeStart: "10:00", ClassTimeEnd: "12:00", UnitCode: "FIT1045", VenueLocation: "MA_LAB_2"},
		},
	})
	r := newConsoleRouter(newTestServices(stub.srv.URL))

	w := doJSON(r, http.MethodGet, "/console/educator-timetable?offeringYear=2025&offeringSemester=1&educatorId=E100", nil)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Dr Grace Hopper")
	assert.Contains(t, body, "<td>Sunday</td>")
	assert.Contains(t, body, "<td>Monday</td>")
}

func TestConsole_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := newStubBackend(t)
		stub.reply(backend.PathGenerateTimetable, true)
		r := newConsoleRouter(newTestServices(stub.srv.URL))

		w := doForm(r, "/console/generate-timetable", url.Values{"year": {"2025"}, "semester": {"1"}})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "✅ Timetable generated successfully!")
	})

	t.Run("rejected", func(t *testing.T) {
		stub := newStubBackend(t)
		stub.reject(backend.PathGenerateTimetable, "No venues available")
		r := newConsoleRouter(newTestServices(stub.srv.URL))

		w := doForm(r, "/console/generate-timetable", url.Values{"year": {"2025"}, "semester": {"1"}})

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "❌ Failed: No venues available")
	})

	t.Run("unreachable", func(t *testing.T) {
		r := newConsoleRouter(newTestServices("http://127.0.0.1:1"))

		w := doForm(r, "/console/generate-timetable", url.Values{"year": {"2025"}, "semester": {"1"}})

		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "❌ Request error:")
	})
}

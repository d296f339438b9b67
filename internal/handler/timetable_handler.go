package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/model"
	"github.com/stemsi/asts-console/internal/response"
	"github.com/stemsi/asts-console/internal/service"
	"github.com/stemsi/asts-console/internal/timetable"
	"github.com/stemsi/asts-console/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// TimetableHandler serves timetable queries, generation and export.
type TimetableHandler struct {
	ttService *service.TimetableService
}

func NewTimetableHandler(ttService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{ttService: ttService}
}

type timetableQueryRequest struct {
	model.TimetableQuery
	Mode string `json:"mode" binding:"omitempty,oneof=compact detailed"`
}

// Query godoc
// POST /api/v1/timetable/query
// Returns the class list in received order plus the weekly grid layout.
func (h *TimetableHandler) Query(c *gin.Context) {
	var req timetableQueryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	data, err := h.ttService.Query(c.Request.Context(), req.TimetableQuery)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"offeringYear":     data.OfferingYear,
		"offeringSemester": data.OfferingSemester,
		"educatorName":     data.EducatorName,
		"classes":          timetable.Rows(data.ClassList),
		"grid":             timetable.BuildGrid(data.ClassList, timetable.ParseMode(req.Mode)),
	})
}

// Educator godoc
// POST /api/v1/timetable/educator
func (h *TimetableHandler) Educator(c *gin.Context) {
	var req model.EducatorTimetableQuery
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	data, err := h.ttService.EducatorTimetable(c.Request.Context(), req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"offeringYear":     data.OfferingYear,
		"offeringSemester": data.OfferingSemester,
		"educatorName":     data.EducatorName,
		"classes":          timetable.Rows(data.ClassList),
	})
}

// Generate godoc
// POST /api/v1/timetable/generate
// Rate limited per client IP.
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req model.GenerateTimetableRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.ttService.Generate(c.Request.Context(), req); err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"generated": true, "message": generateSuccessMessage})
}

// Export godoc
// GET /api/v1/timetable/export?offeringYear=&offeringSemester=&day=&unitCode=
func (h *TimetableHandler) Export(c *gin.Context) {
	var q model.TimetableQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	raw, filename, err := h.ttService.Export(c.Request.Context(), q)
	if err != nil {
		failFromError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, raw)
}

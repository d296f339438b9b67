package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/response"
	"github.com/stemsi/asts-console/internal/service"
)

type SubmissionHandler struct {
	logService *service.SubmissionLogService
}

func NewSubmissionHandler(logService *service.SubmissionLogService) *SubmissionHandler {
	return &SubmissionHandler{logService: logService}
}

// List godoc
// GET /api/v1/submissions?limit=
func (h *SubmissionHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"limit": "limit must be a positive number"})
			return
		}
		limit = n
	}

	logs, err := h.logService.Recent(c.Request.Context(), limit)
	if err != nil {
		failFromError(c, err)
		return
	}
	summary, err := h.logService.Summary(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submissions": logs, "summary": summary})
}

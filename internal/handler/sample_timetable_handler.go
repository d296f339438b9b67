package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/service"
)

// SampleTimetableHandler serves the demo week under /api/timetable. Its
// responses are plain JSON, not the API envelope.
type SampleTimetableHandler struct {
	sampleService *service.SampleTimetableService
}

func NewSampleTimetableHandler(sampleService *service.SampleTimetableService) *SampleTimetableHandler {
	return &SampleTimetableHandler{sampleService: sampleService}
}

// List godoc
// GET /api/timetable?weekStart=
func (h *SampleTimetableHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"classes": h.sampleService.Classes(c.Query("weekStart"))})
}

// Create godoc
// POST /api/timetable
func (h *SampleTimetableHandler) Create(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	class, err := h.sampleService.Add(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"class": class, "success": true})
}

// Update godoc
// PUT /api/timetable/:id
func (h *SampleTimetableHandler) Update(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}

	msg, class := h.sampleService.Update(c.Param("id"), body)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg, "class": class})
}

// Delete godoc
// DELETE /api/timetable/:id
func (h *SampleTimetableHandler) Delete(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": h.sampleService.Delete(c.Param("id"))})
}

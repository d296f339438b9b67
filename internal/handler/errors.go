package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/asts-console/internal/backend"
	"github.com/stemsi/asts-console/internal/response"
	"github.com/stemsi/asts-console/internal/service"
)

// failFromError maps service and backend errors onto the API envelope.
func failFromError(c *gin.Context, err error) {
	var fe *service.FieldError
	var re *backend.ResultError
	switch {
	case errors.As(err, &fe):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fe.Fields)
	case errors.As(err, &re):
		response.FailWithMessage(c, http.StatusUnprocessableEntity, response.ErrBackendRejected, re.Error())
	case errors.Is(err, backend.ErrUnavailable):
		response.Fail(c, http.StatusBadGateway, response.ErrBackendUnavailable)
	case errors.Is(err, service.ErrGenerationIncomplete):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrGenerationFailed)
	case errors.Is(err, service.ErrLogDisabled):
		response.Fail(c, http.StatusServiceUnavailable, response.ErrFeatureDisabled)
	default:
		_ = c.Error(err)
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/ischool/courseinfo-backend/internal/response"
	"github.com/ischool/courseinfo-backend/internal/validator"
	"github.com/rs/zerolog"
)

// writeError maps service and repository errors onto the JSON envelope.
func writeError(c *gin.Context, log zerolog.Logger, err error) {
	var fields validator.FieldErrors
	switch {
	case errors.As(err, &fields):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
	case errors.Is(err, repository.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, repository.ErrConstraintViolation):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, repository.ErrReferenced):
		response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
	case errors.Is(err, repository.ErrInvalidReference):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidReference)
	default:
		log.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(response.ContextKeyRequestID)).
			Msg("Request failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// parseID reads the :id path parameter. Only positive integers are ids.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

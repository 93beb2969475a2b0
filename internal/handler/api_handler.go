package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/response"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/rs/zerolog"
)

// APIHandler serves the read-only JSON mirror of the public pages.
type APIHandler struct {
	details map[model.Kind]detailFunc
	log     zerolog.Logger
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(svc *service.Services, log zerolog.Logger) *APIHandler {
	return &APIHandler{
		details: detailReaders(svc),
		log:     log.With().Str("component", "api_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/{entity}
func (h *APIHandler) List(e registry.Entity) gin.HandlerFunc {
	key := strings.ToLower(e.Plural)
	return func(c *gin.Context) {
		recs, err := e.Admin.List(c.Request.Context())
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		items, err := presentAll(recs)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{key: items})
	}
}

// Detail godoc
// GET /api/v1/{entity}/:id
// Includes reverse relations (sections of a course, registrations of a student, ...).
func (h *APIHandler) Detail(e registry.Entity) gin.HandlerFunc {
	load := h.details[e.Kind]
	key := string(e.Kind)
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		if load == nil {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownEntity)
			return
		}

		rec, err := load(c.Request.Context(), id)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		item, err := present(rec)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{key: item})
	}
}

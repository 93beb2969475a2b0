package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/response"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/rs/zerolog"
)

const (
	defaultPerPage = 50
	maxPerPage     = 500
)

// AdminHandler serves the admin console: JSON CRUD for every registered
// entity plus spreadsheet export.
type AdminHandler struct {
	export *service.ExportService
	log    zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(export *service.ExportService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		export: export,
		log:    log.With().Str("component", "admin_handler").Logger(),
	}
}

// List godoc
// GET /admin/{entity}/?page=1&per_page=50
// Returns the entity schema and one page of records in default order.
func (h *AdminHandler) List(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
		if page < 1 {
			page = 1
		}
		if perPage < 1 || perPage > maxPerPage {
			perPage = defaultPerPage
		}

		recs, err := e.Admin.List(c.Request.Context())
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		pg := response.NewPagination(page, perPage, len(recs))
		start, end := pg.Bounds()

		items, err := presentAll(recs[start:end])
		if err != nil {
			writeError(c, h.log, err)
			return
		}

		response.SuccessWithPagination(c, http.StatusOK, gin.H{
			"entity": e.Kind,
			"schema": e.Schema,
			"items":  items,
		}, pg)
	}
}

// Get godoc
// GET /admin/{entity}/:id/
func (h *AdminHandler) Get(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		rec, err := e.Admin.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		h.respondRecord(c, http.StatusOK, e, rec)
	}
}

// Create godoc
// POST /admin/{entity}/
func (h *AdminHandler) Create(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := readBody(c)
		if !ok {
			return
		}
		rec, err := e.Admin.Create(c.Request.Context(), raw)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		item, err := present(rec)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		response.Created(c, "/admin"+e.Kind.DetailPath(rec.PK()), gin.H{string(e.Kind): item})
	}
}

// Update godoc
// PUT /admin/{entity}/:id/
func (h *AdminHandler) Update(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		raw, ok := readBody(c)
		if !ok {
			return
		}
		rec, err := e.Admin.Update(c.Request.Context(), id, raw)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		h.respondRecord(c, http.StatusOK, e, rec)
	}
}

// Delete godoc
// DELETE /admin/{entity}/:id/
// Records still referenced elsewhere are kept and 409 DEPENDENCY_EXISTS is returned.
func (h *AdminHandler) Delete(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		if err := e.Admin.Delete(c.Request.Context(), id); err != nil {
			writeError(c, h.log, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"deleted": id})
	}
}

// Export godoc
// GET /admin/{entity}/export.xlsx
func (h *AdminHandler) Export(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		buf, filename, err := h.export.Export(c.Request.Context(), e)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	}
}

func (h *AdminHandler) respondRecord(c *gin.Context, status int, e registry.Entity, rec model.Record) {
	item, err := present(rec)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	response.Success(c, status, gin.H{string(e.Kind): item})
}

// readBody reads the request payload, answering 413 when BodyLimit cut it off.
func readBody(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err == nil {
		return raw, true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrBodyTooLarge)
	} else {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
	}
	return nil, false
}

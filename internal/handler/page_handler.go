package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/repository"
	"github.com/ischool/courseinfo-backend/internal/service"
	"github.com/ischool/courseinfo-backend/internal/view"
	"github.com/rs/zerolog"
)

// pageData is what every page template receives.
type pageData struct {
	Title  string
	Nav    []registry.Entity
	Items  []model.Record
	Record model.Record
}

// PageHandler serves the public HTML list and detail pages.
type PageHandler struct {
	reg     *registry.Registry
	details map[model.Kind]detailFunc
	log     zerolog.Logger
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(reg *registry.Registry, svc *service.Services, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		reg:     reg,
		details: detailReaders(svc),
		log:     log.With().Str("component", "page_handler").Logger(),
	}
}

// List godoc
// GET /{entity}/
// Renders every record as a link to its detail page.
func (h *PageHandler) List(e registry.Entity) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := e.Admin.List(c.Request.Context())
		if err != nil {
			h.serverError(c, err)
			return
		}
		c.HTML(http.StatusOK, view.ListTemplate(e.Kind), pageData{
			Title: e.Plural,
			Nav:   h.reg.Exposed(),
			Items: items,
		})
	}
}

// Detail godoc
// GET /{entity}/:id/
func (h *PageHandler) Detail(e registry.Entity) gin.HandlerFunc {
	load := h.details[e.Kind]
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok || load == nil {
			h.NotFound(c)
			return
		}

		rec, err := load(c.Request.Context(), id)
		if errors.Is(err, repository.ErrNotFound) {
			h.NotFound(c)
			return
		}
		if err != nil {
			h.serverError(c, err)
			return
		}

		c.HTML(http.StatusOK, view.DetailTemplate(e.Kind), pageData{
			Title:  rec.String(),
			Nav:    h.reg.Exposed(),
			Record: rec,
		})
	}
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, view.NotFoundTemplate, pageData{
		Title: "Not found",
		Nav:   h.reg.Exposed(),
	})
}

func (h *PageHandler) serverError(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Page render failed")
	c.String(http.StatusInternalServerError, "internal server error")
}

package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ischool/courseinfo-backend/internal/config"
	"github.com/ischool/courseinfo-backend/internal/handler"
	"github.com/ischool/courseinfo-backend/internal/middleware"
	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/ischool/courseinfo-backend/internal/response"
	"github.com/ischool/courseinfo-backend/internal/view"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds admin payloads. Records are a handful of short fields.
const maxBodyBytes = 1 << 20

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Page      *handler.PageHandler
	API       *handler.APIHandler
	Admin     *handler.AdminHandler
	Dashboard *handler.DashboardHandler
	WS        *handler.WSHandler
	Monitor   *handler.MonitorHandler
	System    *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// The returned limiter must be stopped on shutdown.
func SetupRouter(
	reg *registry.Registry,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) (*gin.Engine, *middleware.RateLimiter, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	tmpl, err := view.Templates()
	if err != nil {
		return nil, nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request IDs first so the access log can carry them.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Logger(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Brotli())

	// Embedded stylesheet, cached for a day.
	static := router.Group("/static")
	static.Use(middleware.CacheControl(86400))
	{
		static.StaticFS("/", http.FS(view.Static()))
	}

	router.GET("/health", handlers.System.Health)

	// ─── 1. Public pages ───────────────────────────────────────────────
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, model.KindSection.Path())
	})
	for _, e := range reg.Exposed() {
		router.GET(e.Kind.Path(), handlers.Page.List(e))
		router.GET(e.Kind.Path()+":id/", handlers.Page.Detail(e))
	}

	// ─── 2. Read-only JSON API ─────────────────────────────────────────
	api := router.Group("/api/v1")
	for _, e := range reg.Exposed() {
		api.GET("/"+string(e.Kind), handlers.API.List(e))
		api.GET("/"+string(e.Kind)+"/:id", handlers.API.Detail(e))
	}

	// ─── 3. Admin console ──────────────────────────────────────────────
	limiter := middleware.NewRateLimiter(cfg.AdminRateLimit, time.Minute)

	admin := router.Group("/admin")
	admin.Use(
		middleware.NoStore(),
		limiter.WriteMiddleware(),
		middleware.BodyLimit(maxBodyBytes),
	)
	{
		admin.GET("/", handlers.Dashboard.GetDashboardData)
		admin.GET("/changes", handlers.WS.ChangeStream)
		admin.GET("/changes/stream", handlers.Monitor.ChangeStreamSSE)
		admin.GET("/system", handlers.System.Metrics)
		admin.GET("/system/stream", handlers.System.MetricsSSE)

		for _, e := range reg.All() {
			base := e.Kind.Path()
			admin.GET(base, handlers.Admin.List(e))
			admin.POST(base, handlers.Admin.Create(e))
			admin.GET(base+"export.xlsx", handlers.Admin.Export(e))
			admin.GET(base+":id/", handlers.Admin.Get(e))
			admin.PUT(base+":id/", handlers.Admin.Update(e))
			admin.DELETE(base+":id/", handlers.Admin.Delete(e))
		}
	}

	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		switch {
		case strings.HasPrefix(path, "/admin/"):
			seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/admin/"), "/")
			if _, ok := reg.Lookup(model.Kind(seg)); !ok {
				response.Fail(c, http.StatusNotFound, response.ErrUnknownEntity)
				return
			}
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case strings.HasPrefix(path, "/api/"):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			handlers.Page.NotFound(c)
		}
	})

	return router, limiter, nil
}

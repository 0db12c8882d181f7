package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"clubvenue/internal/handler/api"
	"clubvenue/internal/handler/middleware"
	"clubvenue/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, draftHandler *api.DraftHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, draftHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, draftHandler *api.DraftHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		catalogGroup := apiGroup.Group("/catalog")
		{
			addRoutes(catalogGroup, []route{
				{Method: http.MethodGet, Path: "/clubs", Handler: catalogHandler.ListClubs},
				{Method: http.MethodGet, Path: "/venues", Handler: catalogHandler.ListVenues},
			})
		}

		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: draftHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: draftHandler.Update},
				{Method: http.MethodGet, Path: "/:id", Handler: draftHandler.Get},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: draftHandler.Submit},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lease-engine/internal/handler/api"
	"lease-engine/internal/handler/middleware"
	"lease-engine/internal/handler/validation"
	"lease-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups the API handlers mounted under /v1.
type Handlers struct {
	Offers       *api.OfferHandler
	Leases       *api.LeaseHandler
	OwnerChanges *api.OwnerChangeHandler
	Resources    *api.ResourceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics http.Handler) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, metrics)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, metrics http.Handler) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled && metrics != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := engine.Group("/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		addRoutes(v1.Group("/offers"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Offers.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Offers.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Offers.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Offers.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Offers.Delete},
			{Method: http.MethodPost, Path: "/:id/claim", Handler: h.Offers.Claim},
		})

		addRoutes(v1.Group("/leases"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Leases.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Leases.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Leases.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Leases.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Leases.Delete},
		})

		addRoutes(v1.Group("/owner_changes"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.OwnerChanges.Create},
			{Method: http.MethodGet, Path: "", Handler: h.OwnerChanges.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.OwnerChanges.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.OwnerChanges.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.OwnerChanges.Delete},
		})

		addRoutes(v1.Group("/resources"), []route{
			{Method: http.MethodGet, Path: "/:type/:id/admin", Handler: h.Resources.CheckAdmin},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"casegate/internal/handler/api"
	"casegate/internal/handler/middleware"
	"casegate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Unlock  *api.UnlockHandler
	Contact *api.ContactHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// path the site's frontend has always posted to
	legacy := engine.Group("/functions/v1")
	addRoutes(legacy, []route{
		{Method: http.MethodPost, Path: "/unlock-case-study", Handler: h.Unlock.RequestUnlock},
		{Method: http.MethodOptions, Path: "/unlock-case-study", Handler: api.Preflight},
	})

	apiGroup := engine.Group("/api")
	{
		caseStudies := apiGroup.Group("/case-studies")
		addRoutes(caseStudies, []route{
			{Method: http.MethodPost, Path: "/unlock", Handler: h.Unlock.RequestUnlock},
			{Method: http.MethodOptions, Path: "/unlock", Handler: api.Preflight},
			{Method: http.MethodGet, Path: "/:id/redeem", Handler: h.Unlock.Redeem},
			{Method: http.MethodGet, Path: "/:id/access", Handler: h.Unlock.Access},
			{Method: http.MethodDelete, Path: "/access", Handler: h.Unlock.ClearAccess},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
			{Method: http.MethodOptions, Path: "/contact", Handler: api.Preflight},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/unlocks", Handler: h.Admin.ListUnlocks},
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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
		case http.MethodOptions:
			g.OPTIONS(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"group-deal-engine/internal/domain/user"
	"group-deal-engine/internal/handler/api"
	"group-deal-engine/internal/handler/middleware"
	"group-deal-engine/internal/pkg/config"
	"group-deal-engine/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, dealHandler *api.DealHandler, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, dealHandler, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// request IDs are assigned before recovery so panics are logged with one
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, dealHandler *api.DealHandler, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		deals := apiGroup.Group("/deals")
		addRoutes(deals, []route{
			{Method: http.MethodGet, Path: "", Handler: dealHandler.ListOpen},
			{Method: http.MethodGet, Path: "/my", Handler: dealHandler.ListMine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/by-product/:productId", Handler: dealHandler.GetByProduct},
			{Method: http.MethodGet, Path: "/:id", Handler: dealHandler.Get},
			{Method: http.MethodPost, Path: "/:id/join", Handler: dealHandler.Join, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodDelete, Path: "/:id/join", Handler: dealHandler.Leave, Mw: []gin.HandlerFunc{requireAuth}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/deals/sweep", Handler: dealHandler.Sweep},
			})
		}
	}
}

// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
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
		case http.MethodDelete:
			g.DELETE(r.Path, h)
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

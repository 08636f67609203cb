package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lunchmate/internal/domain/user"
	"lunchmate/internal/handler/api"
	"lunchmate/internal/handler/middleware"
	"lunchmate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	weekHandler *api.WeekHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, menuHandler, orderHandler, weekHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	weekHandler *api.WeekHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		cook := apiGroup.Group("/cook")
		cook.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleCook))
		{
			addRoutes(cook, []route{
				{Method: http.MethodGet, Path: "/menu-days", Handler: menuHandler.GetWeek},
				{Method: http.MethodGet, Path: "/menu-days/:date", Handler: menuHandler.GetMenuDay},
				{Method: http.MethodPut, Path: "/menu-days/:date", Handler: menuHandler.UpsertMenuDay},
				{Method: http.MethodPost, Path: "/orders/advance", Handler: orderHandler.AdvanceOrder},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleCustomer))
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.PlaceOrder},
				{Method: http.MethodDelete, Path: "", Handler: orderHandler.CancelOrder},
			})
		}

		cooks := apiGroup.Group("/cooks")
		cooks.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleCustomer))
		{
			addRoutes(cooks, []route{
				{Method: http.MethodGet, Path: "/:cookId/week", Handler: weekHandler.GetWeek},
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

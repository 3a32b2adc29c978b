package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"oficina-criativa/internal/domain/user"
	"oficina-criativa/internal/handler/api"
	"oficina-criativa/internal/handler/middleware"
	"oficina-criativa/internal/infra/metrics"
	"oficina-criativa/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Webhook      *api.WebhookHandler
	Auth         *api.AuthHandler
	Product      *api.ProductHandler
	Purchase     *api.PurchaseHandler
	Deliverable  *api.DeliverableHandler
	Notification *api.NotificationHandler
	Analytics    *api.AnalyticsHandler
	Assistant    *api.AssistantHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, handlers, authMiddleware, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Provider callbacks authenticate with the shared secret
		// header, never with a session.
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/hotmart", Handler: h.Webhook.HandleHotmart},
		})

		addRoutes(apiGroup.Group("/events"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Analytics.Track},
		})

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/:slug", Handler: h.Product.GetBySlug},
				{Method: http.MethodGet, Path: "/:slug/deliverables", Handler: h.Deliverable.ListForBuyer,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/magic-link", Handler: h.Auth.RequestMagicLink},
				{Method: http.MethodPost, Path: "/verify", Handler: h.Auth.VerifyMagicLink},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(authMiddleware.RequireAuth())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Purchase.Mine},
				{Method: http.MethodGet, Path: "/access/:slug", Handler: h.Purchase.Access},
			})
		}

		assistant := apiGroup.Group("/assistant")
		assistant.Use(authMiddleware.RequireAuth())
		{
			addRoutes(assistant, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Assistant.Run},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.ListAll},
				{Method: http.MethodPost, Path: "/products", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/products/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: h.Product.Delete},

				{Method: http.MethodGet, Path: "/deliverables/:slug", Handler: h.Deliverable.ListAdmin},
				{Method: http.MethodPost, Path: "/deliverables", Handler: h.Deliverable.Create},
				{Method: http.MethodDelete, Path: "/deliverables/:id", Handler: h.Deliverable.Delete},

				{Method: http.MethodPost, Path: "/purchases", Handler: h.Purchase.Grant},
				{Method: http.MethodGet, Path: "/purchases", Handler: h.Purchase.ListAdmin},
				{Method: http.MethodDelete, Path: "/purchases/:id", Handler: h.Purchase.Revoke},

				{Method: http.MethodPost, Path: "/notifications", Handler: h.Notification.Send},
				{Method: http.MethodPost, Path: "/notifications/auto", Handler: h.Notification.SendScheduled},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Notification.History},

				{Method: http.MethodGet, Path: "/analytics/summary", Handler: h.Analytics.Summary},
			})
		}
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bloom-express/internal/handler/api"
	"bloom-express/internal/handler/middleware"
	"bloom-express/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Slots      *api.SlotHandler
	Orders     *api.OrderHandler
	Webhooks   *api.WebhookHandler
	Blackouts  *api.BlackoutHandler
	AdminOrder *api.AdminOrderHandler
	Zipcodes   *api.ZipcodeHandler
	Settings   *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/slots", Handler: h.Slots.GetAvailableSlots},
			{Method: http.MethodGet, Path: "/delivery-cities", Handler: h.Slots.GetDeliveryCities},
			{Method: http.MethodGet, Path: "/validate-zipcode", Handler: h.Slots.ValidateZipcode},
			{Method: http.MethodGet, Path: "/store-settings", Handler: h.Settings.Get},

			{Method: http.MethodPost, Path: "/orders", Handler: h.Orders.CreateOrder},
			{Method: http.MethodGet, Path: "/orders/by-number", Handler: h.Orders.GetByNumber},
			{Method: http.MethodGet, Path: "/orders/by-payment-intent", Handler: h.Orders.GetByPaymentIntent},

			{Method: http.MethodPost, Path: "/webhooks/payment", Handler: h.Webhooks.HandlePaymentEvent},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/blocked-slots", Handler: h.Blackouts.List},
				{Method: http.MethodPost, Path: "/blocked-slots", Handler: h.Blackouts.Create},
				{Method: http.MethodDelete, Path: "/blocked-slots/:id", Handler: h.Blackouts.Delete},

				{Method: http.MethodGet, Path: "/orders", Handler: h.AdminOrder.List},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.AdminOrder.Get},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.AdminOrder.UpdateStatus},
				{Method: http.MethodPatch, Path: "/orders/:id/payment-status", Handler: h.AdminOrder.UpdatePaymentStatus},
				{Method: http.MethodGet, Path: "/orders-by-date", Handler: h.AdminOrder.ListByDate},
				{Method: http.MethodGet, Path: "/schedule", Handler: h.AdminOrder.GetSchedule},
				{Method: http.MethodGet, Path: "/stats", Handler: h.AdminOrder.GetStats},

				{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.GetAdmin},
				{Method: http.MethodPatch, Path: "/settings", Handler: h.Settings.Update},

				{Method: http.MethodGet, Path: "/zipcodes", Handler: h.Zipcodes.List},
				{Method: http.MethodPost, Path: "/zipcodes", Handler: h.Zipcodes.Create},
				{Method: http.MethodDelete, Path: "/zipcodes/:id", Handler: h.Zipcodes.Delete},
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

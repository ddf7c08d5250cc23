package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/restaurant-pos/internal/config"
	domainRepo "github.com/sangkips/restaurant-pos/internal/domain/repository"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/handler"
	"github.com/sangkips/restaurant-pos/internal/presentation/http/middleware"
	"github.com/sangkips/restaurant-pos/pkg/logger"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Order   *handler.OrderHandler
	Sales   *handler.SalesHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          logger.ZapLogger
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.ClientRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	if err := router.SetTrustedProxies(deps.Cfg.App.TrustedProxies); err != nil {
		deps.Logger.Warn("Invalid trusted proxies, trusting none", zap.Strings("proxies", deps.Cfg.App.TrustedProxies), zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	health := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	}
	router.GET("/health", health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.Middleware())
	}
	{
		v1.GET("/health", health)

		registerCatalogRoutes(v1, h)
		registerZoneRoutes(v1, h, deps)
		registerSalesRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", h.Catalog.List)
		catalog.GET("/categories", h.Catalog.Categories)
	}
}

func registerZoneRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	zones := v1.Group("/zones")
	{
		zones.GET("", h.Order.ListZones)
		zones.GET("/active", h.Order.GetActiveZone)
		zones.PUT("/active", h.Order.SelectZone)
		zones.GET("/:id", h.Order.GetZone)
		zones.POST("/:id/bills", h.Order.OpenBill)
		zones.PUT("/:id/bills/active", h.Order.SwitchBill)
		zones.POST("/:id/items", h.Order.AddItem)
		zones.PATCH("/:id/items/:index", h.Order.AdjustQuantity)
		zones.GET("/:id/receipt", h.Order.PreviewReceipt)

		// Idempotency only on checkout, a retried request must not close the next bill
		zones.POST("/:id/checkout", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo:   deps.IdempotencyRepo,
			Logger: deps.Logger,
		}), h.Order.Checkout)
	}
}

func registerSalesRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sales := v1.Group("/sales")
	{
		sales.GET("/today", h.Sales.Today)
		sales.DELETE("/today", h.Sales.ClearToday)
		sales.GET("/:date/export", h.Sales.Export)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printer := v1.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}

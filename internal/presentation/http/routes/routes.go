package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stayops/resortbill-api/internal/config"
	domainRepo "github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/internal/presentation/http/handler"
	"github.com/stayops/resortbill-api/internal/presentation/http/middleware"
	"github.com/stayops/resortbill-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Guest     *handler.GuestHandler
	Catalog   *handler.CatalogHandler
	Order     *handler.OrderHandler
	Invoice   *handler.InvoiceHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Log             *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Billing writes replay through the idempotency cache when the client
	// sends an Idempotency-Key header.
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Auth/Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Guests
	registerGuestRoutes(protected, h)

	// Catalog
	registerCatalogRoutes(protected, h)

	// Kitchen orders
	registerOrderRoutes(protected, h, idempotent)

	// Invoices
	registerInvoiceRoutes(protected, h, idempotent)

	// Reports
	registerReportRoutes(protected, h)

	// Settings (Admin)
	registerSettingsRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerGuestRoutes(protected *gin.RouterGroup, h *Handlers) {
	guests := protected.Group("/guests")
	{
		guests.GET("", h.Guest.List)
		guests.POST("", h.Guest.Create)
		guests.GET("/:id", h.Guest.Get)
		guests.PUT("/:id", h.Guest.Update)
		guests.DELETE("/:id", h.Guest.Delete)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	menuItems := protected.Group("/menu-items")
	{
		menuItems.GET("", h.Catalog.ListMenuItems)
		menuItems.POST("", h.Catalog.CreateMenuItem)
		menuItems.GET("/:id", h.Catalog.GetMenuItem)
		menuItems.PUT("/:id", h.Catalog.UpdateMenuItem)
		menuItems.DELETE("/:id", h.Catalog.DeleteMenuItem)
	}

	services := protected.Group("/services")
	{
		services.GET("", h.Catalog.ListServices)
		services.POST("", h.Catalog.CreateService)
		services.GET("/:id", h.Catalog.GetService)
		services.PUT("/:id", h.Catalog.UpdateService)
		services.DELETE("/:id", h.Catalog.DeleteService)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", idempotent, h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/convert", idempotent, h.Invoice.ConvertOrder)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers, idempotent gin.HandlerFunc) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", idempotent, h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id/payment", h.Invoice.UpdatePayment)
		invoices.DELETE("/:id", middleware.RequireRole("admin"), h.Invoice.Delete)
		invoices.POST("/:id/email", h.Invoice.Email)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/gst", h.Report.GST)
		reports.GET("/kitchen-items", h.Report.KitchenItems)
		reports.GET("/register", h.Report.Register)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", middleware.RequireRole("admin"), h.Settings.Update)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole("admin"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

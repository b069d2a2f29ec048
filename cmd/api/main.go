package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/stayops/resortbill-api/internal/application/service"
	"github.com/stayops/resortbill-api/internal/config"
	"github.com/stayops/resortbill-api/internal/infrastructure/database"
	"github.com/stayops/resortbill-api/internal/infrastructure/repository"
	"github.com/stayops/resortbill-api/internal/presentation/http/handler"
	"github.com/stayops/resortbill-api/internal/presentation/http/routes"
	"github.com/stayops/resortbill-api/pkg/email"
	"github.com/stayops/resortbill-api/pkg/logger"
	"github.com/stayops/resortbill-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New("info", cfg.App.Debug)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db, log); err != nil {
		log.Warnf("Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	orderRepo := repository.NewKitchenOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	reportRepo := repository.NewReportRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	guestService := service.NewGuestService(guestRepo)
	catalogService := service.NewCatalogService(menuItemRepo, serviceRepo)
	orderService := service.NewOrderService(orderRepo, menuItemRepo, guestRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, orderRepo, menuItemRepo, serviceRepo, guestRepo)
	reportService := service.NewReportService(reportRepo, invoiceRepo)
	dashboardService := service.NewDashboardService(reportRepo, invoiceRepo, orderRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Scheduled daily sales-report email, disabled unless a recipient is
	// configured.
	reportMailer := service.NewReportMailer(
		reportService,
		settingsService,
		emailService,
		log,
		cfg.Reports.DailyEmailTo,
		cfg.Reports.DailyEmailCron,
	)
	started, err := reportMailer.Start()
	if err != nil {
		log.Fatalf("Failed to start report mailer: %v", err)
	}
	if started {
		log.Infof("Daily sales report scheduled (%s) for %s", cfg.Reports.DailyEmailCron, cfg.Reports.DailyEmailTo)
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, userService),
		User:      handler.NewUserHandler(userService),
		Guest:     handler.NewGuestHandler(guestService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Order:     handler.NewOrderHandler(orderService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, settingsService, emailService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Log:             log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		reportMailer.Stop()
		os.Exit(0)
	}()

	log.Infof("Starting %s server on port %s (%s)", cfg.App.Name, port, cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/helpo-services/helpo-backend/config"
	"github.com/helpo-services/helpo-backend/internal/app/controller"
	"github.com/helpo-services/helpo-backend/internal/app/repository"
	"github.com/helpo-services/helpo-backend/internal/app/service"
	"github.com/helpo-services/helpo-backend/internal/middleware"
	"github.com/helpo-services/helpo-backend/internal/router"
	"github.com/helpo-services/helpo-backend/internal/scheduler"
	"github.com/helpo-services/helpo-backend/internal/sheets"
	"github.com/helpo-services/helpo-backend/internal/storage"
	"github.com/helpo-services/helpo-backend/pkg/logger"
	"github.com/helpo-services/helpo-backend/pkg/mailer"
	"github.com/helpo-services/helpo-backend/pkg/otp"
	"github.com/helpo-services/helpo-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting HELPO Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize Redis (OTP codes and registration locks)
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Fatal("Failed to connect to Redis", err)
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Spreadsheet store
	store := sheets.NewClient(cfg.Sheets)

	// Initialize repositories
	vendorRepo := repository.NewVendorRepository(store, cfg.Sheets.VendorTab)
	reviewRepo := repository.NewReviewRepository(store, cfg.Sheets.ReviewTab)
	leadRepo := repository.NewLeadRepository(store, cfg.Sheets.LeadTab)
	adRepo := repository.NewAdRepository(store, cfg.Sheets.AdTab)

	// Initialize services
	mail := mailer.New(cfg.SMTP)
	directoryService := service.NewDirectoryService(vendorRepo, reviewRepo, adRepo)
	vendorService := service.NewVendorService(vendorRepo, leadRepo, redis.NewLocker())
	authService := service.NewAuthService(vendorRepo, cfg.JWT, cfg.Admin)
	reviewService := service.NewReviewService(reviewRepo, vendorRepo)
	leadService := service.NewLeadService(leadRepo)
	verificationService := service.NewVerificationService(
		otp.NewClient(cfg.TwoFactor),
		mail,
		redis.NewCodes(),
	)
	adminService := service.NewAdminService(vendorRepo, reviewRepo)

	// Photo uploads
	photoStorage := storage.NewPhotoStorage(cfg.S3)

	// Initialize controllers
	directoryController := controller.NewDirectoryController(directoryService, reviewService)
	authController := controller.NewAuthController(authService, vendorService)
	vendorController := controller.NewVendorController(vendorService, leadService)
	reviewController := controller.NewReviewController(reviewService)
	leadController := controller.NewLeadController(leadService)
	otpController := controller.NewOTPController(verificationService)
	adminController := controller.NewAdminController(adminService)
	uploadController := controller.NewUploadController(photoStorage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		directoryController,
		authController,
		vendorController,
		reviewController,
		leadController,
		otpController,
		adminController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the daily lead digest
	digest := scheduler.NewLeadDigestScheduler(vendorRepo, leadRepo, mail)
	if err := digest.Start(); err != nil {
		logger.Warn("Failed to start lead digest scheduler", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer digest.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}

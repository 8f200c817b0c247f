package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-acoustics-backend/config"
	_ "go-acoustics-backend/docs" // Important for Swagger
	"go-acoustics-backend/internal/catalog"
	v1 "go-acoustics-backend/internal/delivery/http/v1"
	"go-acoustics-backend/internal/usecase"
	"go-acoustics-backend/pkg/email"
	"go-acoustics-backend/pkg/logger"
	"go-acoustics-backend/pkg/notify"
	"go-acoustics-backend/pkg/redis"
	"go-acoustics-backend/pkg/sheets"
	appvalidation "go-acoustics-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Veas Acoustics Backend API
// @version         1.0
// @description     Backend for the Veas Acoustics brochure site: contact pipeline and content catalogs.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting acoustics backend", "port", cfg.Port)

	// 3. Build Catalogs (fail fast on authoring mistakes)
	imageCatalog, err := catalog.NewImageCatalog(cfg.ImageBasePath)
	if err != nil {
		logger.Log.Error("Invalid image catalog", "error", err)
		os.Exit(1)
	}
	serviceCatalog, err := catalog.NewServiceCatalog()
	if err != nil {
		logger.Log.Error("Invalid service catalog", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Outbound Collaborators
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact emails will be skipped")
	}
	sheetsClient := sheets.NewClient(cfg.SheetsWebhookURL, cfg.SheetsSharedSecret)
	if !sheetsClient.IsConfigured() {
		logger.Log.Warn("Sheets webhook not configured - spreadsheet logging will be skipped")
	}

	// 6. Setup Notification Store (operator visibility for skipped/failed side effects)
	notifications := notify.NewStore()
	unsubscribe := notifications.Subscribe(func(events []notify.Event) {
		latest := events[len(events)-1]
		logger.Log.Info("operator notification", "level", latest.Level, "source", latest.Source, "message", latest.Message)
	})
	defer unsubscribe()

	// 7. Setup UseCases
	validate := validator.New()
	appvalidation.RegisterValidators(validate)

	contactUC := usecase.NewContactUsecase(
		validate,
		emailService,
		sheetsClient,
		notifications,
		logger.Log,
		time.Duration(cfg.DispatchTimeoutSeconds)*time.Second,
	)
	catalogUC := usecase.NewCatalogUsecase(serviceCatalog, imageCatalog, logger.Log)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:     contactUC,
		CatalogUC:     catalogUC,
		Notifications: notifications,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

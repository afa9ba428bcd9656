package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bwsolucoes/carteira-api/internal/config"
	"github.com/bwsolucoes/carteira-api/internal/database"
	"github.com/bwsolucoes/carteira-api/internal/handlers"
	"github.com/bwsolucoes/carteira-api/internal/jobs"
	"github.com/bwsolucoes/carteira-api/internal/middleware"
	"github.com/bwsolucoes/carteira-api/internal/repository"
	"github.com/bwsolucoes/carteira-api/internal/services"
	"github.com/bwsolucoes/carteira-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Carteira API
// @version 1.0
// @description REST API for the BW Soluções client portfolio

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

// scheduleJobs registers the recurring background jobs
func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Renewal radar: log services expiring within 30 days, once a day
	worker.ScheduleEveryImmediate(24*time.Hour, svcs.Dashboard.LogUpcomingRenewals)
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router.Use(sessions.Sessions("carteira_session", store))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Redirect root to swagger
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})

		// Swagger documentation
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Protected routes (requires an authenticated session)
		protected := v1.Group("")
		protected.Use(middleware.RequireAuth())
		{
			// Clients
			protected.GET("/clients", h.Client.Index)
			protected.POST("/clients", h.Client.Create)
			protected.GET("/clients/export", h.Client.Export)
			protected.GET("/clients/:client_id", h.Client.Show)
			protected.PUT("/clients/:client_id", h.Client.Update)
			protected.DELETE("/clients/:client_id", h.Client.Delete)
			protected.GET("/clients/:client_id/contracts", h.Client.Contracts)

			// Contracts
			protected.POST("/clients/:client_id/contracts", h.Contract.Create)
			protected.PUT("/contracts/:contract_id", h.Contract.Update)
			protected.DELETE("/contracts/:contract_id", h.Contract.Delete)
			protected.POST("/contracts/:contract_id/cancel", h.Contract.Cancel)
			protected.POST("/contracts/:contract_id/reactivate", h.Contract.Reactivate)

			// Services
			protected.POST("/contracts/:contract_id/services", h.Contract.CreateService)
			protected.PUT("/services/:service_id", h.Contract.UpdateService)
			protected.DELETE("/services/:service_id", h.Contract.DeleteService)

			// Audit trail
			protected.GET("/audits", h.Audit.Index)
			protected.GET("/audits/export", h.Audit.Export)

			// Dashboard, options, reports
			protected.GET("/dashboard/summary", h.Dashboard.Summary)
			protected.GET("/options", h.Options.Index)
			protected.GET("/reports/client_record_pdf", h.Report.ClientRecordPDF)

			// Admin
			protected.POST("/admin/migrate_legacy", h.Admin.MigrateLegacy)
		}
	}

	return router
}

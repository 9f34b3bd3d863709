package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labquote/internal/config"
	"labquote/internal/database"
	"labquote/internal/document"
	"labquote/internal/handlers"
	custommw "labquote/internal/middleware"
	"labquote/internal/repositories"
	"labquote/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	catalogRepo := repositories.NewCatalogRepository(db)
	quoteRepo := repositories.NewQuoteRepository(db)

	// Services
	logger := services.NewQuoteLogger(slog.Default())
	metrics := services.NewPrometheusMetrics()
	catalogService := services.NewCatalogService(catalogRepo, cfg.Catalog.SnapshotTTL, logger, metrics)
	quoteService := services.NewQuoteService(quoteRepo, cfg.Catalog.HistoryLimit, logger, metrics)
	cleanupService := services.NewCleanupService(catalogRepo, catalogService, logger, metrics)
	renderer := document.NewRenderer(cfg.Lab)
	documentService := services.NewDocumentService(quoteRepo, renderer, quoteService)

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	quoteHandler := handlers.NewQuoteHandler(quoteService, documentService)
	cleanupHandler := handlers.NewCleanupHandler(cleanupService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(echomw.Gzip())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	catalogGroup := api.Group("/catalog")
	catalogGroup.GET("", catalogHandler.Browse)
	catalogGroup.POST("", catalogHandler.CreateItem)
	catalogGroup.GET("/origins", catalogHandler.Origins)
	catalogGroup.GET("/schema", catalogHandler.Schema)
	catalogGroup.GET("/:id", catalogHandler.GetItem)
	catalogGroup.PUT("/:id", catalogHandler.UpdateItem)

	quoteGroup := api.Group("/quotes")
	quoteGroup.POST("", quoteHandler.SaveQuote)
	quoteGroup.GET("", quoteHandler.ListQuotes)
	quoteGroup.GET("/tiers", quoteHandler.ListTiers)
	quoteGroup.POST("/preview", quoteHandler.PreviewQuote)
	quoteGroup.GET("/:id", quoteHandler.GetQuote)
	quoteGroup.PUT("/:id", quoteHandler.UpdateQuote)
	quoteGroup.DELETE("/:id", quoteHandler.DeleteQuote)
	quoteGroup.PUT("/:id/status", quoteHandler.UpdateStatus)
	quoteGroup.GET("/:id/document", quoteHandler.GetDocument)

	cleanupGroup := api.Group("/cleanup")
	cleanupGroup.GET("", cleanupHandler.ListFields)
	cleanupGroup.GET("/:field", cleanupHandler.GetReport)
	cleanupGroup.POST("/:field/apply", cleanupHandler.ApplyCorrection)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Forced shutdown", "error", err.Error())
	}
}

// File: puresakura/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"puresakura/config"
	"puresakura/handlers"
	"puresakura/middleware"
	"puresakura/routes"
	"puresakura/services/booking"
	"puresakura/services/storage"
	"puresakura/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.AppConfig
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Spreadsheet client. Credentials are checked lazily so the site still
	// serves (and reports on /health) when they are missing.
	sheet := storage.NewSheetsStorage(storage.ServiceAccount{
		ClientEmail: cfg.GoogleClientEmail,
		PrivateKey:  cfg.GooglePrivateKey,
	}, cfg.GoogleSheetID, cfg.GoogleSheetName)
	if cfg.GoogleClientEmail == "" || cfg.GooglePrivateKey == "" || cfg.GoogleSheetID == "" {
		logger.Warn("main: Google Sheets credentials are not configured; bookings will fail")
	}

	// metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := utils.NewMetrics(reg)

	// services.
	bookingService := &booking.DefaultBookingService{
		Sheet:   sheet,
		Metrics: metrics,
		Logger:  logger,
	}
	bookingHandler := handlers.NewBookingHandler(bookingService, metrics, cfg.RequestTimeout())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: redis unavailable, rate limits are per instance", zap.Error(err))
	}
	if client := utils.GetCacheClient(); client != nil {
		router.Use(middleware.RedisRateLimitMiddleware(client, cfg.MaxRequestsPerMin))
	} else {
		router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Book:             bookingHandler.Book,
		GetCatalog:       bookingHandler.GetCatalog,
		Health:           handlers.Health,
		Metrics:          promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		MethodNotAllowed: handlers.MethodNotAllowed,
	}
	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, sheet, cfg.HealthCheckInterval(), cfg.RequestTimeout())

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("main: server forced to shutdown", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	submissionapp "github.com/interiors/backend/internal/application/submission"
	"github.com/interiors/backend/internal/infrastructure/config"
	"github.com/interiors/backend/internal/infrastructure/logger"
	"github.com/interiors/backend/internal/infrastructure/metrics"
	"github.com/interiors/backend/internal/infrastructure/telemetry"
	"github.com/interiors/backend/internal/interfaces/http/handler"
	"github.com/interiors/backend/internal/interfaces/http/middleware"
	"github.com/interiors/backend/internal/interfaces/http/router"
)

const healthPath = "/health"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}

	// Bootstrap logger, used until the OTLP log pipeline is up
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()
	telCfg := cfg.TelemetryOptions()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, telCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}

	// Rebuild the logger so entries also flow to the collector
	if loggerProvider.IsEnabled() {
		otelCore := telemetry.NewZapOTELCore(loggerProvider, telemetry.TracerName, logger.ParseLevel(cfg.Log.Level))
		if log, err = logger.New(logCfg, otelCore); err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting forms engine",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version),
		zap.String("port", cfg.App.Port),
	)

	var recorder *metrics.Recorder
	serviceOpts := []submissionapp.Option{submissionapp.WithFormatterOptions(cfg.FormatterOptions())}
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder(metrics.Config{
			Namespace:         cfg.Metrics.Namespace,
			RuntimeCollectors: cfg.Metrics.RuntimeCollectors,
		})
		serviceOpts = append(serviceOpts, submissionapp.WithMetrics(recorder))
	}

	submissionService := submissionapp.NewSubmissionService(logger.Named(log, "submission"), serviceOpts...)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	systemHandler := handler.NewSystemHandler(cfg.App.Name, cfg.App.Version)

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Probe and scrape endpoints are neither traced, logged nor counted
	quietPaths := []string{healthPath}
	if recorder != nil {
		quietPaths = append(quietPaths, cfg.Metrics.Path)
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Tracing - Server span, then request attributes and error status
	// 4. Logger - Log requests
	// 5. Metrics - Count requests
	// 6. Security - Add security headers
	// 7. CORS - Handle cross-origin requests
	// 8. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: telCfg.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
		SkipPaths:   quietPaths,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(logger.GinMiddleware(log, quietPaths...))
	if recorder != nil {
		engine.Use(middleware.HTTPMetrics(recorder, quietPaths...))
	}
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health and metrics live outside API versioning
	engine.GET(healthPath, systemHandler.Health)
	if recorder != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(recorder.Handler()))
		log.Info("Prometheus metrics enabled", zap.String("path", cfg.Metrics.Path))
	}
	engine.NoRoute(systemHandler.NoRoute)
	engine.NoMethod(systemHandler.NoMethod)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	groups := []*router.DomainGroup{
		handler.SubmissionRoutes(submissionHandler),
		handler.SystemRoutes(systemHandler),
	}
	for _, g := range groups {
		r.Register(g)
		for _, route := range g.Routes(r.BasePath()) {
			log.Debug("Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
		}
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Flush telemetry after the last request has been served
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Tracer provider shutdown incomplete", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		log.Warn("Logger provider shutdown incomplete", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

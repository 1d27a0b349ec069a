package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/number-o-meter/internal/api"
	"github.com/ZanzyTHEbar/number-o-meter/internal/cache"
	"github.com/ZanzyTHEbar/number-o-meter/internal/config"
	"github.com/ZanzyTHEbar/number-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/number-o-meter/internal/frontend"
	"github.com/ZanzyTHEbar/number-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/number-o-meter/internal/ratelimit"
	"github.com/ZanzyTHEbar/number-o-meter/internal/security"
)

// @title        Number-o-Meter API
// @version      1.0
// @description  Primality, factors, digit statistics and pairwise comparison of numbers.
// @BasePath     /
func main() {
	// Structured logging setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("NUMSTAT_CONFIG"))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	app, err := newApp(context.Background(), *cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		slog.Info("Starting server", "addr", srv.Addr, "gin_mode", cfg.GinMode, "rate_limit_per_min", cfg.RateLimitPerMin)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		app.close()
		os.Exit(1)
	}

	app.close()
	slog.Info("Server exited")
}

// app owns the router and the resources that outlive a request
type app struct {
	router  *gin.Engine
	limiter *ratelimit.RateLimiter
	redis   *ratelimit.RedisClient
	reports *cache.ReportCache
}

// newApp wires the analyzer, the page, the limiter and the middleware chain.
// An unreachable Redis degrades to per-instance rate limiting. A zero
// CacheTTL serves every request from the analyzer directly.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	page, err := frontend.LoadTemplate()
	if err != nil {
		return nil, errors.NewConfigurationError("page template", err)
	}

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()

	redisClient, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		slog.Warn("Redis unavailable, rate limiting is per instance", "error", err)
	}

	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.IPLimit = cfg.RateLimitPerMin
	limiter := ratelimit.NewRateLimiter(redisClient, limiterConfig, appMetrics)

	securityConfig := security.DefaultSecurityConfig()
	securityConfig.MaxInputLength = cfg.MaxInputLength
	securityConfig.RequestTimeout = cfg.RequestTimeout
	securityConfig.EnableHSTS = cfg.EnableHSTS

	var (
		engine  frontend.Engine = analysis.NewAnalyzer(cfg.MaxMagnitude)
		reports *cache.ReportCache
	)
	if cfg.CacheTTL > 0 {
		reports = cache.New(engine, cfg.CacheTTL, cfg.CacheEntries, appMetrics)
		engine = reports
	}

	handler := api.NewHandler(
		engine,
		page,
		security.NewSecurityMiddleware(securityConfig),
		limiter,
		appMetrics,
		appLogger,
		cfg,
	)

	if reports != nil {
		handler.SetReportCache(reports)
	}

	return &app{
		router:  api.NewRouter(handler),
		limiter: limiter,
		redis:   redisClient,
		reports: reports,
	}, nil
}

func (a *app) close() {
	a.limiter.Close()
	if a.reports != nil {
		a.reports.Close()
	}
	errors.SafeClose(a.redis, "redis")
}

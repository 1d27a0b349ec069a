package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/number-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/number-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/number-o-meter/internal/security"
)

// NewRouter builds the gin engine with the middleware chain and all routes
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()

	r.Use(RequestIDMiddleware())
	r.Use(apperrors.RecoveryHandler())

	// Monitoring sits outside the error handler so it sees the final status
	r.Use(monitoring.MonitoringMiddleware(h.metrics, h.logger))
	r.Use(monitoring.SecurityMonitoringMiddleware(h.logger))
	r.Use(apperrors.ErrorHandler())

	r.Use(cors.New(corsConfig(h.cfg.AllowedOrigins)))
	r.Use(security.SecurityHeadersMiddleware(h.security.Config().EnableHSTS))
	r.Use(security.CSPMiddleware(h.security.Config().CSPReportURI))
	r.Use(h.security.RequestTimeout)

	h.RegisterRoutes(r)

	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		config.AllowOrigins = allowedOrigins
	} else {
		config.AllowAllOrigins = true
	}
	return config
}

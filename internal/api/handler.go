// Package api exposes the analyzer over HTTP: JSON endpoints for single and
// pairwise analysis, the HTML page and the operational endpoints.
package api

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZanzyTHEbar/number-o-meter/docs"
	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/number-o-meter/internal/config"
	apperrors "github.com/ZanzyTHEbar/number-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/number-o-meter/internal/frontend"
	"github.com/ZanzyTHEbar/number-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/number-o-meter/internal/ratelimit"
	"github.com/ZanzyTHEbar/number-o-meter/internal/report"
	"github.com/ZanzyTHEbar/number-o-meter/internal/security"
)

// Version is reported by /health
const Version = "1.0.0"

// AnalyzeRequest is the body of POST /api/analyze
type AnalyzeRequest struct {
	Input string `json:"input" example:"42"`
}

// AnalyzeResponse is a report plus its rendered lines
type AnalyzeResponse struct {
	analysis.Report
	Lines []report.Line `json:"lines"`
}

// CompareRequest is the body of POST /api/compare
type CompareRequest struct {
	First  string `json:"first" example:"12"`
	Second string `json:"second" example:"18"`
}

// CompareResponse is a comparison plus its rendered sections
type CompareResponse struct {
	analysis.Comparison
	Sections []report.Section `json:"sections"`
}

// Handler provides HTTP API endpoints
type Handler struct {
	engine      frontend.Engine
	page        *template.Template
	security    *security.SecurityMiddleware
	limiter     *ratelimit.RateLimiter
	reportCache StatsSource
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
	cfg         config.Config
	started     time.Time
}

// NewHandler creates a new API handler. A nil limiter disables rate limiting.
func NewHandler(
	engine frontend.Engine,
	page *template.Template,
	sec *security.SecurityMiddleware,
	limiter *ratelimit.RateLimiter,
	metrics *monitoring.Metrics,
	logger *monitoring.Logger,
	cfg config.Config,
) *Handler {
	return &Handler{
		engine:   engine,
		page:     page,
		security: sec,
		limiter:  limiter,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		started:  time.Now(),
	}
}

// StatsSource reports the state of an optional component
type StatsSource interface {
	Stats() map[string]interface{}
}

// SetReportCache adds the report cache state to /health
func (h *Handler) SetReportCache(cache StatsSource) {
	h.reportCache = cache
}

// RegisterRoutes sets up all routes
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	page := frontend.NewPageHandler(h.engine, h.page, h.security)
	if h.limiter != nil {
		r.GET("/", h.limiter.IPRateLimitMiddleware(), page)
	} else {
		r.GET("/", page)
	}
	r.GET("/health", h.handleHealth)
	r.GET("/metrics", h.handleMetrics)

	if h.cfg.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	if h.limiter != nil {
		api.GET("/limits", h.limiter.HandleRateLimitStatus())
		api.Use(h.limiter.IPRateLimitMiddleware())
	}
	api.Use(h.security.ValidateContentType)

	api.POST("/analyze", h.handleAnalyzePost)
	api.GET("/analyze", h.handleAnalyzeGet)
	api.POST("/compare", h.handleComparePost)
	api.GET("/compare", h.handleCompareGet)
}

// handleHealth godoc
// @Summary      Health check
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) handleHealth(c *gin.Context) {
	response := gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   Version,
		"uptime":    time.Since(h.started).Round(time.Second).String(),
	}
	if h.limiter != nil {
		response["rate_limiter"] = h.limiter.GetStats()
	}
	if h.reportCache != nil {
		response["report_cache"] = h.reportCache.Stats()
	}
	c.JSON(http.StatusOK, response)
}

// handleMetrics godoc
// @Summary      Request and analysis counters
// @Tags         ops
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /metrics [get]
func (h *Handler) handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.GetStats())
}

// handleAnalyzePost godoc
// @Summary      Analyze one number
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      AnalyzeRequest  true  "Raw number text"
// @Success      200      {object}  AnalyzeResponse
// @Failure      400      {object}  apperrors.ErrorResponse
// @Failure      429      {object}  apperrors.ErrorResponse
// @Router       /api/analyze [post]
func (h *Handler) handleAnalyzePost(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.NewValidationError("invalid request body", "body"))
		return
	}
	h.analyze(c, req.Input)
}

// handleAnalyzeGet godoc
// @Summary      Analyze one number
// @Tags         analysis
// @Produce      json
// @Param        n    query     string  true  "Raw number text"
// @Success      200  {object}  AnalyzeResponse
// @Failure      400  {object}  apperrors.ErrorResponse
// @Router       /api/analyze [get]
func (h *Handler) handleAnalyzeGet(c *gin.Context) {
	h.analyze(c, c.Query("n"))
}

func (h *Handler) analyze(c *gin.Context, input string) {
	if err := h.security.ValidateInput("input", input); err != nil {
		h.fail(c, err)
		return
	}
	if err := c.Request.Context().Err(); err != nil {
		h.fail(c, err)
		return
	}

	start := time.Now()
	r, err := h.engine.Analyze(input)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.metrics.RecordAnalysis(r.IsInteger, r.IsPrime)
	h.logger.AnalysisLogger(len(input), r.IsInteger, r.IsPrime, len(r.Factors), time.Since(start))

	c.JSON(http.StatusOK, AnalyzeResponse{Report: r, Lines: report.Lines(r)})
}

// handleComparePost godoc
// @Summary      Compare two numbers
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        request  body      CompareRequest  true  "Raw number texts"
// @Success      200      {object}  CompareResponse
// @Failure      400      {object}  apperrors.ErrorResponse
// @Failure      429      {object}  apperrors.ErrorResponse
// @Router       /api/compare [post]
func (h *Handler) handleComparePost(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.NewValidationError("invalid request body", "body"))
		return
	}
	h.compare(c, req.First, req.Second)
}

// handleCompareGet godoc
// @Summary      Compare two numbers
// @Tags         analysis
// @Produce      json
// @Param        a    query     string  true  "First number"
// @Param        b    query     string  true  "Second number"
// @Success      200  {object}  CompareResponse
// @Failure      400  {object}  apperrors.ErrorResponse
// @Router       /api/compare [get]
func (h *Handler) handleCompareGet(c *gin.Context) {
	h.compare(c, c.Query("a"), c.Query("b"))
}

func (h *Handler) compare(c *gin.Context, first, second string) {
	if err := h.security.ValidateInput("first", first); err != nil {
		h.fail(c, err)
		return
	}
	if err := h.security.ValidateInput("second", second); err != nil {
		h.fail(c, err)
		return
	}
	if err := c.Request.Context().Err(); err != nil {
		h.fail(c, err)
		return
	}

	start := time.Now()
	cmp, err := h.engine.Compare(first, second)
	if err != nil {
		h.fail(c, err)
		return
	}

	var gcd uint64
	if cmp.Integers != nil {
		gcd = cmp.Integers.GCD
	}
	h.metrics.RecordComparison()
	h.logger.ComparisonLogger(cmp.Integers != nil, gcd, time.Since(start))

	c.JSON(http.StatusOK, CompareResponse{Comparison: cmp, Sections: report.CompareSections(cmp)})
}

// fail hands err to the error middleware, which renders it
func (h *Handler) fail(c *gin.Context, err error) {
	if apperrors.ToAppError(err).Category == apperrors.CategoryValidation {
		h.metrics.IncrementValidationFailure()
	}
	_ = c.Error(err)
}

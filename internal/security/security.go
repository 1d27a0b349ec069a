package security

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ZanzyTHEbar/number-o-meter/internal/errors"
)

// SecurityConfig holds security configuration
type SecurityConfig struct {
	MaxInputLength int           `json:"max_input_length"`
	RequestTimeout time.Duration `json:"request_timeout"`
	EnableHSTS     bool          `json:"enable_hsts"`
	CSPReportURI   string        `json:"csp_report_uri"`
}

// DefaultSecurityConfig returns secure defaults
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		MaxInputLength: 256,
		RequestTimeout: 10 * time.Second,
	}
}

// SecurityMiddleware validates number input and bounds request lifetimes
type SecurityMiddleware struct {
	config SecurityConfig
}

// NewSecurityMiddleware creates a new security middleware instance
func NewSecurityMiddleware(config SecurityConfig) *SecurityMiddleware {
	return &SecurityMiddleware{config: config}
}

// Config returns the active configuration
func (sm *SecurityMiddleware) Config() SecurityConfig {
	return sm.config
}

// ValidateInput rejects raw number text that is too long or not clean UTF-8.
// Whether the text is a number is left to the analyzer.
func (sm *SecurityMiddleware) ValidateInput(field, input string) error {
	if len(input) > sm.config.MaxInputLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("input exceeds maximum length of %d characters", sm.config.MaxInputLength), field)
	}

	if strings.ContainsRune(input, 0) {
		return apperrors.NewValidationError("input contains invalid characters", field)
	}

	if !utf8.ValidString(input) {
		return apperrors.NewValidationError("input contains invalid UTF-8 encoding", field)
	}

	return nil
}

// ValidateContentType rejects request bodies that are not JSON or form data
func (sm *SecurityMiddleware) ValidateContentType(c *gin.Context) {
	contentType := strings.ToLower(c.GetHeader("Content-Type"))

	allowedTypes := []string{
		"application/json",
		"application/x-www-form-urlencoded",
		"multipart/form-data",
	}

	if contentType != "" {
		for _, allowed := range allowedTypes {
			if strings.Contains(contentType, allowed) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
			"error": "unsupported content type",
		})
		return
	}

	c.Next()
}

// RequestTimeout attaches a deadline to the request context
func (sm *SecurityMiddleware) RequestTimeout(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), sm.config.RequestTimeout)
	defer cancel()

	c.Request = c.Request.WithContext(ctx)
	c.Header("X-Timeout", strconv.Itoa(int(sm.config.RequestTimeout.Seconds())))

	c.Next()
}

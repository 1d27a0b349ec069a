package frontend

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/number-o-meter/internal/report"
	"github.com/ZanzyTHEbar/number-o-meter/internal/security"
)

// NewPageHandler serves the analysis page. The query carries the mode and the
// raw inputs: ?mode=single|compare&a=…&b=…
func NewPageHandler(engine Engine, tmpl *template.Template, validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce := security.GetNonce(c)
		if nonce == "" {
			slog.Warn("CSP nonce not found in context, generating new one")
			var err error
			nonce, err = security.GenerateNonce()
			if err != nil {
				slog.Error("Failed to generate nonce", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
		}

		mode := report.ParseMode(c.Query("mode"))
		first, second := c.Query("a"), c.Query("b")

		page, ok := ValidatePage(validator, mode, first, second)
		if ok {
			page = BuildPage(engine, mode, first, second)
		}
		page.Nonce = nonce

		if err := Render(c, tmpl, page); err != nil {
			slog.Error("Failed to render page", "error", err, "mode", mode)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to render page"})
			return
		}
	}
}

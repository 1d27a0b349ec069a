package frontend

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/number-o-meter/internal/ratelimit"
	"github.com/ZanzyTHEbar/number-o-meter/internal/report"
	"github.com/ZanzyTHEbar/number-o-meter/internal/security"
)

func newEngine() Engine {
	return analysis.NewAnalyzer(0)
}

func sectionTitles(sections []report.Section) []string {
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	return titles
}

func TestBuildPage(t *testing.T) {
	engine := newEngine()

	tests := []struct {
		name       string
		mode       report.Mode
		first      string
		second     string
		wantTitles []string
		wantBody   string
		wantFailed bool
	}{
		{
			name:       "single blank renders the empty layout",
			mode:       report.ModeSingle,
			wantTitles: []string{report.TitleNumber},
			wantBody:   "Input: \n",
		},
		{
			name:       "single number",
			mode:       report.ModeSingle,
			first:      "28",
			wantTitles: []string{report.TitleNumber},
			wantBody:   "Divisor classification: perfect",
		},
		{
			name:       "single invalid",
			mode:       report.ModeSingle,
			first:      "abc",
			wantTitles: []string{report.TitleError},
			wantBody:   "Error: Invalid number",
			wantFailed: true,
		},
		{
			name: "compare both blank renders the empty layout",
			mode: report.ModeCompare,
			wantTitles: []string{
				report.TitleComparison, report.TitleArithmetic, report.TitleRelations,
				report.TitleFirst, report.TitleSecond,
			},
			wantBody: "GCD (integers): ",
		},
		{
			name:       "compare with one blank asks for both",
			mode:       report.ModeCompare,
			first:      "12",
			second:     "  ",
			wantTitles: []string{report.TitleError},
			wantBody:   MissingOperandMessage,
			wantFailed: true,
		},
		{
			name:   "compare two numbers",
			mode:   report.ModeCompare,
			first:  "12",
			second: "18",
			wantTitles: []string{
				report.TitleComparison, report.TitleArithmetic, report.TitleRelations,
				report.TitleFirst, report.TitleSecond,
			},
			wantBody: "GCD (integers): 6",
		},
		{
			name:       "compare reports the failing side",
			mode:       report.ModeCompare,
			first:      "12",
			second:     "abc",
			wantTitles: []string{report.TitleError},
			wantBody:   "Error: second number: Invalid number",
			wantFailed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := BuildPage(engine, tt.mode, tt.first, tt.second)

			assert.Equal(t, tt.mode, page.Mode)
			assert.Equal(t, tt.wantTitles, sectionTitles(page.Sections))
			assert.Contains(t, page.Sections[0].Body, tt.wantBody)
			assert.Equal(t, tt.wantFailed, page.Failed)
		})
	}
}

func TestBuildPageTabs(t *testing.T) {
	page := BuildPage(newEngine(), report.ModeCompare, "", "")

	require.Len(t, page.Tabs, 2)
	assert.False(t, page.Tabs[0].Active)
	assert.True(t, page.Tabs[1].Active)
	assert.Equal(t, report.ModeCompare, page.Tabs[1].Mode)
}

func TestSectionID(t *testing.T) {
	assert.Equal(t, "section-0-integer-relations", sectionID(0, "Integer relations"))
	assert.Equal(t, "section-3-first-number", sectionID(3, "First Number"))
}

func newValidator(maxLength int) *security.SecurityMiddleware {
	cfg := security.DefaultSecurityConfig()
	cfg.MaxInputLength = maxLength
	return security.NewSecurityMiddleware(cfg)
}

func newPageRouter(t *testing.T, middleware ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := LoadTemplate()
	require.NoError(t, err)

	r := gin.New()
	r.Use(security.CSPMiddleware(""))
	handlers := append(middleware, NewPageHandler(newEngine(), tmpl, newValidator(16)))
	r.GET("/", handlers...)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestPageHandlerSingle(t *testing.T) {
	r := newPageRouter(t)

	w := get(r, "/?a=42")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))

	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, "Input: 42")
	assert.Contains(t, body, "Prime factors: 2, 3, 7")
	assert.Contains(t, body, "Divisor classification: abundant")
	assert.Contains(t, body, `aria-expanded="true"`)
	assert.NotContains(t, body, `name="b"`)
}

func TestPageHandlerNonceMatchesPolicy(t *testing.T) {
	r := newPageRouter(t)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	policy := w.Header().Get("Content-Security-Policy")
	start := strings.Index(policy, "'nonce-")
	require.NotEqual(t, -1, start)
	nonce := policy[start+len("'nonce-"):]
	nonce = nonce[:strings.Index(nonce, "'")]

	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, `<script nonce="`+nonce+`">`)
	assert.Contains(t, body, `<style nonce="`+nonce+`">`)
}

func TestPageHandlerCompare(t *testing.T) {
	r := newPageRouter(t)

	w := get(r, "/?mode=compare&a=12&b=18")
	require.Equal(t, http.StatusOK, w.Code)

	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, `name="b"`)
	assert.Contains(t, body, "LCM (integers): 36")
	assert.Contains(t, body, "Shared Prime Factors: 2, 3")
	assert.Contains(t, body, "Relatively Prime: No")

	for _, title := range []string{"Comparison", "Arithmetic", "Integer relations", "First Number", "Second Number"} {
		assert.Contains(t, body, "<h2>"+title+"</h2>")
	}
}

func TestPageHandlerMissingOperand(t *testing.T) {
	r := newPageRouter(t)

	w := get(r, "/?mode=compare&a=12")
	require.Equal(t, http.StatusOK, w.Code)
	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, MissingOperandMessage)
	assert.Contains(t, body, "<h2>Error</h2>")
}

func TestValidatePage(t *testing.T) {
	v := newValidator(8)
	long := strings.Repeat("9", 9)

	tests := []struct {
		name   string
		mode   report.Mode
		first  string
		second string
		wantOK bool
	}{
		{name: "single within limit", mode: report.ModeSingle, first: "12345678", wantOK: true},
		{name: "single too long", mode: report.ModeSingle, first: long},
		{name: "single ignores b", mode: report.ModeSingle, first: "1", second: long, wantOK: true},
		{name: "compare second too long", mode: report.ModeCompare, first: "1", second: long},
		{name: "compare null byte", mode: report.ModeCompare, first: "1\x00", second: "2"},
		{name: "compare within limit", mode: report.ModeCompare, first: "12", second: "18", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, ok := ValidatePage(v, tt.mode, tt.first, tt.second)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				return
			}
			assert.True(t, page.Failed)
			assert.Equal(t, tt.mode, page.Mode)
			require.Len(t, page.Sections, 1)
			assert.Equal(t, report.TitleError, page.Sections[0].Title)
			assert.True(t, strings.HasPrefix(page.Sections[0].Body, "Error: input "))
		})
	}
}

func TestPageHandlerRejectsOversizedInput(t *testing.T) {
	r := newPageRouter(t)

	w := get(r, "/?mode=compare&a=12&b="+strings.Repeat("7", 17))
	require.Equal(t, http.StatusOK, w.Code)

	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, "Error: input exceeds maximum length of 16 characters")
	assert.NotContains(t, body, "GCD (integers)")
}

func TestPageHandlerRateLimited(t *testing.T) {
	config := ratelimit.DefaultConfig()
	config.IPLimit = 2
	limiter := ratelimit.NewRateLimiter(ratelimit.DisabledRedisClient(), config, nil)
	t.Cleanup(limiter.Close)

	r := newPageRouter(t, limiter.IPRateLimitMiddleware())

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusOK, get(r, "/?a=97").Code)
	}

	w := get(r, "/?a=97")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.NotContains(t, w.Body.String(), "Input: 97")
}

func TestPageHandlerEscapesInput(t *testing.T) {
	r := newPageRouter(t)

	w := get(r, "/?a=%3Cscript%3Ealert(1)%3C/script%3E")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), "Error: Invalid number")
}

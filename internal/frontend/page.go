package frontend

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ZanzyTHEbar/number-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/number-o-meter/internal/report"
)

// MissingOperandMessage is shown when compare mode has only one number.
const MissingOperandMessage = "Please enter both numbers to compare."

// Engine is the part of the analyzer the page needs
type Engine interface {
	Analyze(raw string) (analysis.Report, error)
	Compare(rawA, rawB string) (analysis.Comparison, error)
}

// Tab is one mode switch link
type Tab struct {
	Label  string
	Mode   report.Mode
	Active bool
}

// Page is everything the template renders
type Page struct {
	Nonce    string
	Mode     report.Mode
	First    string
	Second   string
	Tabs     []Tab
	Sections []report.Section
	Failed   bool
}

// Validator checks raw query values before they reach the engine
type Validator interface {
	ValidateInput(field, input string) error
}

func newPage(mode report.Mode, first, second string) Page {
	return Page{
		Mode:   mode,
		First:  first,
		Second: second,
		Tabs: []Tab{
			{Label: "Single", Mode: report.ModeSingle, Active: mode == report.ModeSingle},
			{Label: "Compare", Mode: report.ModeCompare, Active: mode == report.ModeCompare},
		},
	}
}

// BuildPage computes the sections for a mode and its raw inputs. Blank
// inputs produce the empty layout instead of an error.
func BuildPage(engine Engine, mode report.Mode, first, second string) Page {
	page := newPage(mode, first, second)

	firstBlank := strings.TrimSpace(first) == ""
	secondBlank := strings.TrimSpace(second) == ""

	if mode != report.ModeCompare {
		if firstBlank {
			page.Sections = report.EmptySections(report.ModeSingle)
			return page
		}
		r, err := engine.Analyze(first)
		if err != nil {
			return page.fail(err.Error())
		}
		page.Sections = report.SingleSections(r)
		return page
	}

	switch {
	case firstBlank && secondBlank:
		page.Sections = report.EmptySections(report.ModeCompare)
		return page
	case firstBlank || secondBlank:
		page.Failed = true
		page.Sections = []report.Section{report.ErrorSection(MissingOperandMessage)}
		return page
	}

	c, err := engine.Compare(first, second)
	if err != nil {
		return page.fail(err.Error())
	}
	page.Sections = report.CompareSections(c)
	return page
}

// ValidatePage rejects oversized or malformed query values before any
// analysis runs. The second value is only checked in compare mode.
func ValidatePage(v Validator, mode report.Mode, first, second string) (Page, bool) {
	fields := map[string]string{"a": first}
	if mode == report.ModeCompare {
		fields["b"] = second
	}
	for _, field := range []string{"a", "b"} {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		if err := v.ValidateInput(field, raw); err != nil {
			return newPage(mode, first, second).fail(messageOf(err)), false
		}
	}
	return Page{}, true
}

func messageOf(err error) string {
	var msg interface{ Message() string }
	if errors.As(err, &msg) {
		return msg.Message()
	}
	return err.Error()
}

func (p Page) fail(message string) Page {
	p.Failed = true
	p.Sections = []report.Section{report.ErrorSection("Error: " + message)}
	return p
}

// Render executes the page template and writes it uncached
func Render(c *gin.Context, tmpl *template.Template, page Page) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	return nil
}

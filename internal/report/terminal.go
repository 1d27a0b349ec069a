package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Separator divides sections in plain terminal output.
const Separator = "---"

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6b7785")
	alert  = lipgloss.Color("#e53935")
)

// Styles controls how the terminal renderer decorates sections.
type Styles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Error lipgloss.Style
	Plain bool
}

// PlainStyles renders undecorated text, suitable for pipes and tests.
func PlainStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle(),
		Label: lipgloss.NewStyle(),
		Value: lipgloss.NewStyle(),
		Error: lipgloss.NewStyle(),
		Plain: true,
	}
}

// ColorStyles colors titles and labels for an interactive terminal.
func ColorStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label: lipgloss.NewStyle().Foreground(muted),
		Value: lipgloss.NewStyle(),
		Error: lipgloss.NewStyle().Bold(true).Foreground(alert),
	}
}

// Terminal writes sections as text blocks separated by Separator.
type Terminal struct {
	w      io.Writer
	styles Styles
}

// NewTerminal creates a renderer that writes to w.
func NewTerminal(w io.Writer, styles Styles) *Terminal {
	return &Terminal{w: w, styles: styles}
}

// Render writes each section body. Titles are shown for multi-section
// layouts, plain or not; untitled sections are written as bare blocks.
func (t *Terminal) Render(sections []Section) error {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString(Separator + "\n")
		}
		if len(sections) > 1 && s.Title != "" {
			b.WriteString(t.styles.Title.Render(s.Title) + "\n")
		}
		if s.Title == TitleError {
			b.WriteString(t.styles.Error.Render(s.Body) + "\n")
			continue
		}
		b.WriteString(t.body(s.Body) + "\n")
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}

// Footer writes a trailing separator followed by a muted note.
func (t *Terminal) Footer(note string) error {
	_, err := io.WriteString(t.w, Separator+"\n"+t.styles.Label.Render(note)+"\n")
	return err
}

func (t *Terminal) body(text string) string {
	if t.styles.Plain {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		label, value, ok := strings.Cut(line, ": ")
		if !ok {
			lines[i] = t.styles.Value.Render(line)
			continue
		}
		lines[i] = t.styles.Label.Render(label+":") + " " + t.styles.Value.Render(value)
	}
	return strings.Join(lines, "\n")
}

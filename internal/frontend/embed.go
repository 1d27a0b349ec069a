package frontend

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

// LoadTemplate parses the embedded page template
func LoadTemplate() (*template.Template, error) {
	tmpl, err := template.New("index.html.tmpl").
		Funcs(template.FuncMap{
			"sectionID": sectionID,
		}).
		ParseFS(templatesFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return tmpl, nil
}

func sectionID(index int, title string) string {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	return fmt.Sprintf("section-%d-%s", index, slug)
}

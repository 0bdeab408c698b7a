package docs

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	// anchor matches the heading ids generated by markdown renderers
	"anchor": strings.ToLower,
	"join":   strings.Join,
}

// LoadTemplates parses the embedded page templates: header, object and objects
func LoadTemplates() (*template.Template, error) {
	return template.New("docs").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
}

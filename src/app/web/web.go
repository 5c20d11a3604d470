// Package web holds the embedded HTML templates of the site.
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every page template together with the shared layout
// partials. Each page is addressed by its file name, e.g. "login.html".
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcMap()).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		// field returns m[key] and tolerates a nil map.
		"field": func(m map[string]string, key string) string {
			return m[key]
		},
	}
}

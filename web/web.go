// Package web holds the HTML templates of the profile viewer page
package web

import (
	"embed"
	"html/template"
)

//go:embed templates
var files embed.FS

// Templates parses every page and layout template
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(files,
		"templates/layouts/*.html",
		"templates/*.html",
	)
}

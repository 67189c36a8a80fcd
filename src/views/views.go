// Package views holds the HTML templates rendered by the controllers.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// FormTemplate is the template name of the record form page.
const FormTemplate = "form.html"

// Templates parses every embedded template.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}

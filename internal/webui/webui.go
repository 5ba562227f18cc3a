// Package webui serves the browser-facing dashboard page, its illustrative
// image and a debug dump of the loaded dataset.
package webui

import (
	"embed"
	"html/template"

	"worlddeaths.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

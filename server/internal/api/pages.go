package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gymtrack/gymtrack-web/server/internal/api/respond"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages holds every parsed page template.
var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HomeHandler serves the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new home handler
func NewHomeHandler() *HomeHandler { return &HomeHandler{} }

// Show handles GET /
func (h *HomeHandler) Show(w http.ResponseWriter, r *http.Request) {
	respond.WriteHTML(w, http.StatusOK, pages, "home", nil)
}

package controllers

import (
	"net/http"

	"github.com/mxchen/qrpanel/services"
)

// HomeController handles the landing page
type HomeController struct {
	services *services.Services
}

// NewHomeController creates a new home controller
func NewHomeController(services *services.Services) *HomeController {
	return &HomeController{
		services: services,
	}
}

// Index handles GET /
func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	data := statsTemplateData{
		Title: "QR Panel",
		Stats: c.services.Audit.Snapshot(),
	}

	renderTemplate(w, "index", "templates/index.html", data)
}

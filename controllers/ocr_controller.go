package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/mxchen/qrpanel/middleware"
	"github.com/mxchen/qrpanel/models"
	"github.com/mxchen/qrpanel/services"
)

// OCRController handles text extraction requests
type OCRController struct {
	services *services.Services
}

// NewOCRController creates a new OCR controller
func NewOCRController(services *services.Services) *OCRController {
	return &OCRController{
		services: services,
	}
}

// Extract handles POST /ocr
func (c *OCRController) Extract(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	image, err := requireFormImage(r)
	if err != nil {
		c.services.Audit.Log(ip, models.ActionOCRError, err.Error())
		errorResponse(w, r, err)
		return
	}

	text, err := c.services.OCR.Extract(image)
	if err != nil {
		c.services.Audit.Log(ip, models.ActionOCRError, err.Error())
		errorResponse(w, r, err)
		return
	}

	c.services.Audit.Log(ip, models.ActionOCR, fmt.Sprintf("extracted %d characters", len(text)))

	render.JSON(w, r, map[string]string{"text": text})
}

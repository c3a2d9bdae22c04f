package controllers

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mxchen/qrpanel/apperrors"
	"github.com/mxchen/qrpanel/models"
	"github.com/mxchen/qrpanel/services"
)

// maxUploadSize caps how much of a multipart body is held in memory.
const maxUploadSize = 10 << 20 // 10 MiB

// Controllers holds all controller instances
type Controllers struct {
	Home  *HomeController
	QR    *QRController
	OCR   *OCRController
	Stats *StatsController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, logger *zap.Logger) *Controllers {
	return &Controllers{
		Home:  NewHomeController(services),
		QR:    NewQRController(services),
		OCR:   NewOCRController(services),
		Stats: NewStatsController(services, logger),
	}
}

// errorResponse serializes a failure as JSON at the status its kind
// maps to.
func errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, apperrors.KindOf(err).HTTPStatus())
	render.JSON(w, r, map[string]string{"error": err.Error()})
}

// parseOptionalBool accepts the usual form encodings of a checkbox
func parseOptionalBool(value string) bool {
	if value == "on" {
		return true
	}
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

// readFormFile reads an uploaded file into memory. A missing file is
// not an error; the caller decides whether the field is required.
func readFormFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("invalid %s upload", field), err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("failed to read %s upload", field), err)
	}

	return data, nil
}

// requireFormImage parses the multipart body and returns the mandatory
// image field.
func requireFormImage(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "malformed multipart form", err)
	}

	data, err := readFormFile(r, "image")
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperrors.New(apperrors.KindValidation, "image file is required")
	}

	return data, nil
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, templateName string, pageTemplate string, data interface{}) error {
	tmpl := template.New(templateName)

	// Parse layout and page template
	_, err := tmpl.ParseFiles("templates/layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// statsTemplateData is shared by the landing page templates
type statsTemplateData struct {
	Title string
	Stats models.StatsSnapshot
}

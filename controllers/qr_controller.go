package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/mxchen/qrpanel/apperrors"
	"github.com/mxchen/qrpanel/middleware"
	"github.com/mxchen/qrpanel/models"
	"github.com/mxchen/qrpanel/services"
)

// QRController handles QR generation and decoding requests
type QRController struct {
	services *services.Services
}

// NewQRController creates a new QR controller
func NewQRController(services *services.Services) *QRController {
	return &QRController{
		services: services,
	}
}

// Generate handles POST /generate
func (c *QRController) Generate(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	form, err := parseGenerationForm(r)
	if err != nil {
		c.services.Audit.Log(ip, models.ActionGenerateError, err.Error())
		errorResponse(w, r, err)
		return
	}

	symbol, err := c.services.QR.Generate(form)
	if err != nil {
		c.services.Audit.Log(ip, models.ActionGenerateError, err.Error())
		errorResponse(w, r, err)
		return
	}

	// Detail records input length, never the content itself
	c.services.Audit.Log(ip, models.ActionGenerate,
		fmt.Sprintf("text length: %d, compress: %t", len(form.Text), form.Compress))

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(symbol)
}

// Decode handles POST /decode
func (c *QRController) Decode(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	image, err := requireFormImage(r)
	if err != nil {
		c.services.Audit.Log(ip, models.ActionDecodeError, err.Error())
		errorResponse(w, r, err)
		return
	}

	text, err := c.services.QR.Decode(image)
	if err != nil {
		c.services.Audit.Log(ip, models.ActionDecodeError, err.Error())
		errorResponse(w, r, err)
		return
	}

	c.services.Audit.Log(ip, models.ActionDecode, fmt.Sprintf("decoded payload length: %d", len(text)))

	render.JSON(w, r, map[string]string{"decoded": text})
}

// parseGenerationForm reads the generation fields from either a
// urlencoded or a multipart body (the latter when a logo is attached).
func parseGenerationForm(r *http.Request) (*models.GenerationForm, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return nil, apperrors.Wrap(apperrors.KindValidation, "malformed multipart form", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "malformed form", err)
	}

	form := &models.GenerationForm{
		Text:     r.FormValue("text"),
		Compress: parseOptionalBool(r.FormValue("compress")),
		Color:    r.FormValue("color"),
		BGColor:  r.FormValue("bg_color"),
	}
	if form.Color == "" {
		form.Color = "#000000"
	}
	if form.BGColor == "" {
		form.BGColor = "#FFFFFF"
	}

	if r.MultipartForm != nil {
		logo, err := readFormFile(r, "logo")
		if err != nil {
			return nil, err
		}
		form.Logo = logo
	}

	return form, nil
}

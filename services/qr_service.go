package services

import (
	"strings"

	"github.com/mxchen/qrpanel/apperrors"
	"github.com/mxchen/qrpanel/codec"
	"github.com/mxchen/qrpanel/models"
)

// QRService validates generation and decode requests and delegates the
// vision work to the codec adapters.
type QRService interface {
	Generate(form *models.GenerationForm) ([]byte, error)
	Decode(image []byte) (string, error)
}

type qrService struct {
	encoder codec.Encoder
	decoder codec.Decoder
}

// NewQRService creates a new QR service
func NewQRService(encoder codec.Encoder, decoder codec.Decoder) QRService {
	return &qrService{encoder: encoder, decoder: decoder}
}

// Generate validates the form and renders a QR symbol
func (s *qrService) Generate(form *models.GenerationForm) ([]byte, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.New(apperrors.KindValidation, strings.Join(errs, "; "))
	}

	fg, err := codec.ParseHexColor(form.Color)
	if err != nil {
		return nil, err
	}
	bg, err := codec.ParseHexColor(form.BGColor)
	if err != nil {
		return nil, err
	}

	return s.encoder.Encode(codec.EncodeRequest{
		Text:       form.Text,
		Compress:   form.Compress,
		Foreground: fg,
		Background: bg,
		Logo:       form.Logo,
	})
}

// Decode extracts the payload from an uploaded image
func (s *qrService) Decode(image []byte) (string, error) {
	if len(image) == 0 {
		return "", apperrors.New(apperrors.KindValidation, "image file is required")
	}

	return s.decoder.Decode(image)
}

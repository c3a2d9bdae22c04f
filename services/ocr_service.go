package services

import (
	"github.com/mxchen/qrpanel/apperrors"
	"github.com/mxchen/qrpanel/recognition"
)

// OCRService validates extraction requests and delegates to the
// recognition adapter.
type OCRService interface {
	Extract(image []byte) (string, error)
}

type ocrService struct {
	recognizer recognition.Recognizer
}

// NewOCRService creates a new OCR service
func NewOCRService(recognizer recognition.Recognizer) OCRService {
	return &ocrService{recognizer: recognizer}
}

// Extract recognizes text in an uploaded image
func (s *ocrService) Extract(image []byte) (string, error) {
	if len(image) == 0 {
		return "", apperrors.New(apperrors.KindValidation, "image file is required")
	}

	return s.recognizer.Recognize(image)
}

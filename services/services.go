package services

import (
	"go.uber.org/zap"

	"github.com/mxchen/qrpanel/codec"
	"github.com/mxchen/qrpanel/recognition"
	"github.com/mxchen/qrpanel/repositories"
)

// Services holds all service instances
type Services struct {
	Audit AuditService
	QR    QRService
	OCR   OCRService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, encoder codec.Encoder, decoder codec.Decoder, recognizer recognition.Recognizer, logger *zap.Logger) *Services {
	return &Services{
		Audit: NewAuditService(repos.Audit, logger),
		QR:    NewQRService(encoder, decoder),
		OCR:   NewOCRService(recognizer),
	}
}

package codec

import (
	"bytes"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"

	"github.com/mxchen/qrpanel/apperrors"
)

// Fixed preprocessing factors, tuned for noisy photographs.
const (
	decodeContrast = 60.0
	decodeSharpen  = 2.0
)

// Decode extracts the payload from an image containing a QR symbol
func (c *QRCodec) Decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindValidation, "unreadable image file", err)
	}

	// Grayscale with boosted contrast and sharpness helps the detector
	// on low-quality photographs.
	prepared := imaging.Sharpen(imaging.AdjustContrast(imaging.Grayscale(img), decodeContrast), decodeSharpen)

	bmp, err := gozxing.NewBinaryBitmapFromImage(prepared)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "failed to prepare image for detection", err)
	}

	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindNotFound, "no QR code detected in image", err)
	}

	text := result.GetText()
	if text == "" {
		return "", apperrors.New(apperrors.KindNotFound, "no QR code detected in image")
	}

	if strings.HasSuffix(text, compressionMarker) {
		text, err = decompressPayload(text)
		if err != nil {
			return "", apperrors.Wrap(apperrors.KindDecompression, "invalid compressed payload", err)
		}
	}

	return text, nil
}

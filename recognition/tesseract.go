package recognition

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/mxchen/qrpanel/apperrors"
)

// Fixed preprocessing factors, tuned for photographed documents.
const (
	recognizeContrast = 50.0
	recognizeSharpen  = 2.0
)

// TesseractRecognizer is the production Recognizer. Tesseract runs
// CPU-only; each call uses a fresh client because the client is not
// safe for concurrent use.
type TesseractRecognizer struct {
	languages []string
}

// NewTesseractRecognizer creates a recognizer for the given language
// models (e.g. "eng", "chi_sim").
func NewTesseractRecognizer(languages []string) *TesseractRecognizer {
	return &TesseractRecognizer{languages: languages}
}

// Recognize extracts text from the image
func (r *TesseractRecognizer) Recognize(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindValidation, "unreadable image file", err)
	}

	// Color image with boosted contrast and sharpness; the model reads
	// photographed documents better that way.
	prepared := imaging.Sharpen(imaging.AdjustContrast(imaging.Clone(img), recognizeContrast), recognizeSharpen)

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "failed to prepare image for recognition", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(r.languages...); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "failed to configure recognition languages", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "failed to load image for recognition", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindInternal, "text recognition failed", err)
	}

	// Tesseract reports regions line by line; keep that ordering and
	// drop blank lines.
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return "", apperrors.New(apperrors.KindNotFound, "no text detected in image")
	}

	return strings.Join(lines, "\n"), nil
}

// Package recognition wraps the external text-recognition capability
// behind an interface so the request pipeline can be tested without a
// Tesseract installation.
package recognition

// Recognizer extracts text from an image, one line per detected
// region, joined in reading order with newlines.
type Recognizer interface {
	Recognize(image []byte) (string, error)
}

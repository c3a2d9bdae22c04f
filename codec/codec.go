// Package codec wraps the external QR encoding and decoding libraries
// behind capability interfaces so the request pipeline can be tested
// without the real vision stack.
package codec

import "image/color"

// EncodeRequest describes one QR generation.
type EncodeRequest struct {
	Text       string
	Compress   bool
	Foreground color.Color
	Background color.Color
	Logo       []byte
}

// Encoder renders a QR symbol for a payload.
type Encoder interface {
	Encode(req EncodeRequest) ([]byte, error)
}

// Decoder extracts the payload from an image containing a QR symbol.
type Decoder interface {
	Decode(image []byte) (string, error)
}

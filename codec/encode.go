package codec

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	// Logo uploads and decode targets arrive in whatever format the
	// client had on disk.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/mxchen/qrpanel/apperrors"
)

// symbolSize is the edge length in pixels of rendered symbols.
const symbolSize = 512

// QRCodec is the production Encoder and Decoder, backed by go-qrcode
// for rendering and gozxing for detection.
type QRCodec struct{}

// NewQRCodec creates the production codec
func NewQRCodec() *QRCodec {
	return &QRCodec{}
}

// Encode renders a QR symbol as PNG bytes
func (c *QRCodec) Encode(req EncodeRequest) ([]byte, error) {
	if req.Text == "" {
		return nil, apperrors.New(apperrors.KindValidation, "text must not be empty")
	}

	data := req.Text
	if req.Compress {
		var err error
		data, err = compressPayload(data)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInternal, "failed to compress text", err)
		}
	}

	// Lowest error correction holds the most data, so try it first and
	// step up once before giving up.
	qr, err := qrcode.New(data, qrcode.Low)
	if err != nil {
		qr, err = qrcode.New(data, qrcode.Medium)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindCapacityExceeded,
				"text exceeds QR code capacity, shorten it or enable compression", err)
		}
	}

	if req.Foreground != nil {
		qr.ForegroundColor = req.Foreground
	}
	if req.Background != nil {
		qr.BackgroundColor = req.Background
	}

	img := qr.Image(symbolSize)

	if len(req.Logo) > 0 {
		img, err = overlayLogo(img, req.Logo)
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to render symbol", err)
	}

	return buf.Bytes(), nil
}

// overlayLogo centers the logo over the symbol at a quarter of its
// shorter dimension, compositing with alpha.
func overlayLogo(symbol image.Image, logo []byte) (image.Image, error) {
	logoImg, _, err := image.Decode(bytes.NewReader(logo))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindLogoProcessing, "failed to read logo image", err)
	}

	bounds := symbol.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	side /= 4

	resized := imaging.Resize(logoImg, side, side, imaging.Lanczos)

	canvas := imaging.Clone(symbol)
	x := bounds.Min.X + (bounds.Dx()-side)/2
	y := bounds.Min.Y + (bounds.Dy()-side)/2
	draw.Draw(canvas, image.Rect(x, y, x+side, y+side), resized, image.Point{}, draw.Over)

	return canvas, nil
}

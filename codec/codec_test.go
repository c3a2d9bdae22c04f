package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxchen/qrpanel/apperrors"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := NewQRCodec()
	text := "https://example.com/path?q=hello world"

	symbol, err := codec.Encode(EncodeRequest{Text: text})
	require.NoError(t, err)
	require.NotEmpty(t, symbol)

	decoded, err := codec.Decode(symbol)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestEncodeDecodeRoundTripWithColors(t *testing.T) {
	codec := NewQRCodec()
	text := "colored symbol"

	fg, err := ParseHexColor("#1a1a2e")
	require.NoError(t, err)
	bg, err := ParseHexColor("#f5f5f5")
	require.NoError(t, err)

	symbol, err := codec.Encode(EncodeRequest{Text: text, Foreground: fg, Background: bg})
	require.NoError(t, err)

	decoded, err := codec.Decode(symbol)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestCompressionRoundTrip(t *testing.T) {
	codec := NewQRCodec()
	// Repetitive text that overflows the raw capacity budget but
	// compresses far below it.
	text := strings.Repeat("lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 100)

	// Uncompressed it must not fit at either error-correction level.
	_, err := codec.Encode(EncodeRequest{Text: text})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCapacityExceeded, apperrors.KindOf(err))

	symbol, err := codec.Encode(EncodeRequest{Text: text, Compress: true})
	require.NoError(t, err)

	decoded, err := codec.Decode(symbol)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestCompressPayloadCarriesMarker(t *testing.T) {
	payload, err := compressPayload("hello")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(payload, compressionMarker))

	text, err := decompressPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestEncodeEmptyText(t *testing.T) {
	codec := NewQRCodec()

	_, err := codec.Encode(EncodeRequest{Text: ""})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestEncodeCapacityExceeded(t *testing.T) {
	codec := NewQRCodec()

	_, err := codec.Encode(EncodeRequest{Text: strings.Repeat("x", 4000)})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindCapacityExceeded, apperrors.KindOf(err))
}

func TestEncodeWithLogo(t *testing.T) {
	codec := NewQRCodec()
	logo := encodePNG(t, solidImage(64, 64, color.NRGBA{R: 200, A: 255}))

	symbol, err := codec.Encode(EncodeRequest{Text: "with logo", Logo: logo})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(symbol))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 512, img.Bounds().Dy())
}

func TestEncodeWithBadLogo(t *testing.T) {
	codec := NewQRCodec()

	_, err := codec.Encode(EncodeRequest{Text: "with logo", Logo: []byte("not an image")})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindLogoProcessing, apperrors.KindOf(err))
}

func TestDecodeNoSymbol(t *testing.T) {
	codec := NewQRCodec()
	blank := encodePNG(t, solidImage(256, 256, color.White))

	_, err := codec.Decode(blank)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDecodeUnreadableImage(t *testing.T) {
	codec := NewQRCodec()

	_, err := codec.Decode([]byte("definitely not an image"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestDecodeMalformedCompressedPayload(t *testing.T) {
	codec := NewQRCodec()

	// A symbol whose payload carries the marker but is not valid
	// base64-wrapped zlib data.
	symbol, err := codec.Encode(EncodeRequest{Text: "####" + compressionMarker})
	require.NoError(t, err)

	_, err = codec.Decode(symbol)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDecompression, apperrors.KindOf(err))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#0a1B2c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x0a, G: 0x1b, B: 0x2c, A: 255}, c)

	_, err = ParseHexColor("black")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

package codec

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// compressionMarker tags payloads that went through the compression
// transform so the decode side can reverse it. The marker travels
// inside the symbol itself.
const compressionMarker = "|compressed"

// compressPayload deflates the UTF-8 text, base64-encodes it and
// appends the marker. The transform is a hedge against the symbol's
// fixed capacity budget for repetitive content.
func compressPayload(text string) (string, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write([]byte(text)); err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()) + compressionMarker, nil
}

// decompressPayload reverses compressPayload. The input must still
// carry the marker.
func decompressPayload(data string) (string, error) {
	encoded := strings.TrimSuffix(data, compressionMarker)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("invalid base64 in compressed payload: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("invalid zlib stream in compressed payload: %w", err)
	}
	defer zr.Close()

	text, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("truncated compressed payload: %w", err)
	}

	return string(text), nil
}

package codec

import (
	"fmt"
	"image/color"

	"github.com/mxchen/qrpanel/apperrors"
)

// ParseHexColor parses a #RRGGBB value into an opaque color.
func ParseHexColor(s string) (color.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, fmt.Sprintf("invalid color %q, expected #RRGGBB", s), err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

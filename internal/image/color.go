package imagepkg

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

var white = color.NRGBA{255, 255, 255, 255}

// defaultDecorationColor is white at 10% opacity.
var defaultDecorationColor = color.NRGBA{255, 255, 255, 26}

// HexToRGB parses "#rrggbb" (the leading '#' is optional). Malformed input
// yields white.
func HexToRGB(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// ParseColor accepts "#rrggbb" and "#rrggbbaa". Malformed input yields
// opaque white.
func ParseColor(s string) color.NRGBA {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		r, g, b := HexToRGB(hex)
		return color.NRGBA{r, g, b, 255}
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return white
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	default:
		return white
	}
}

// WithOpacity converts a "#rrggbb" color to an NRGBA with alpha = opacity.
// Opacity is clamped to [0,1].
func WithOpacity(hex string, opacity float64) color.NRGBA {
	r, g, b := HexToRGB(hex)
	opacity = math.Max(0, math.Min(1, opacity))
	return color.NRGBA{r, g, b, uint8(math.Round(opacity * 255))}
}

func colorOr(s string, fallback color.NRGBA) color.NRGBA {
	if s == "" {
		return fallback
	}
	return ParseColor(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

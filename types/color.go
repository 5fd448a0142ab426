package types

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// An 8-bit per channel RGB color.
type Color [3]uint8

// Define a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Scale each channel by k. Scaled channels are truncated (not rounded)
// towards zero and then clamped to [0, 255].
func (c Color) Scale(k float64) Color {
	return Color{
		clampChannel(int(float64(c[0]) * k)),
		clampChannel(int(float64(c[1]) * k)),
		clampChannel(int(float64(c[2]) * k)),
	}
}

// Blend with another color: c*(1-k) + c2*k, truncated per channel.
func (c Color) Blend(c2 Color, k float64) Color {
	var out Color
	for i := 0; i < 3; i++ {
		out[i] = clampChannel(int(float64(c[i])*(1-k) + float64(c2[i])*k))
	}
	return out
}

// Implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2])
}

// Parse a color from a "r,g,b" string.
func ParseColor(s string) (Color, error) {
	tokens := strings.Split(s, ",")
	if len(tokens) != 3 {
		return Color{}, fmt.Errorf("color: expected 3 comma-separated channels; got %d", len(tokens))
	}

	var c Color
	for i, tok := range tokens {
		v, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color: invalid channel %q: %w", tok, err)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

package mayjs3d

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns a new, opaque Color from a 0xRRGGBB value.
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// ParseHexColor parses a "#rrggbb" or "rrggbb" string into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("parse color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return NewColorFromHex(uint32(v)), nil
}

// SetRGBA returns a copy of the Color with its components set to the values given.
func (c Color) SetRGBA(r, g, b, a float32) Color {
	c.R = r
	c.G = g
	c.B = b
	c.A = a
	return c
}

// AddRGB returns a copy of the Color with the value given added to the R, G and B channels.
func (c Color) AddRGB(value float32) Color {
	c.R += value
	c.G += value
	c.B += value
	return c
}

// Multiply returns a copy of the Color with each channel multiplied by the matching channel of the other Color.
func (c Color) Multiply(other Color) Color {
	c.R *= other.R
	c.G *= other.G
	c.B *= other.B
	c.A *= other.A
	return c
}

// MultiplyScalarRGB returns a copy of the Color with the R, G and B channels multiplied by the scalar given.
func (c Color) MultiplyScalarRGB(scalar float32) Color {
	c.R *= scalar
	c.G *= scalar
	c.B *= scalar
	return c
}

// Mix returns the Color linearly interpolated towards the other Color by the percentage given (0 to 1).
func (c Color) Mix(other Color, percentage float32) Color {
	percentage = clamp(percentage, 0, 1)
	c.R += (other.R - c.R) * percentage
	c.G += (other.G - c.G) * percentage
	c.B += (other.B - c.B) * percentage
	c.A += (other.A - c.A) * percentage
	return c
}

// Clamped returns a copy of the Color with every channel limited to the 0 to 1 range.
func (c Color) Clamped() Color {
	c.R = clamp(c.R, 0, 1)
	c.G = clamp(c.G, 0, 1)
	c.B = clamp(c.B, 0, 1)
	c.A = clamp(c.A, 0, 1)
	return c
}

// RGBA64 returns the Color's channels as float64 values.
func (c Color) RGBA64() (float64, float64, float64, float64) {
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}

// ToNRGBA64 converts the Color to an image/color value.
func (c Color) ToNRGBA64() color.NRGBA64 {
	c = c.Clamped()
	return color.NRGBA64{
		R: uint16(c.R * math.MaxUint16),
		G: uint16(c.G * math.MaxUint16),
		B: uint16(c.B * math.MaxUint16),
		A: uint16(c.A * math.MaxUint16),
	}
}

// ConvertTosRGB returns a copy of the Color converted from linear space to sRGB.
func (c Color) ConvertTosRGB() Color {

	conv := func(v float32) float32 {
		if v <= 0.0031308 {
			return v * 12.92
		}
		return float32(1.055*math.Pow(float64(v), 1/2.4) - 0.055)
	}

	c.R = conv(c.R)
	c.G = conv(c.G)
	c.B = conv(c.B)
	return c

}

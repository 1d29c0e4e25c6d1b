package utils

import (
	"image/color"

	"github.com/edwinsyarief/neongrid/surface"
)

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the
// given values constitute a valid premultiplied-alpha color
// (a >= r,g,b). On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}

// Converts an opaque color to a surface color. Alpha is ignored.
func FromColor(clr color.Color) surface.RGB {
	r16, g16, b16, _ := clr.RGBA()
	return surface.RGB{R: float64(r16) / 65535.0, G: float64(g16) / 65535.0, B: float64(b16) / 65535.0}
}

// Converts a surface color to the opaque [color.RGBA] closest to it.
func ToColor(rgb surface.RGB) color.RGBA {
	return color.RGBA{toU8(rgb.R), toU8(rgb.G), toU8(rgb.B), 255}
}

// Returns the color as a vec3 shader uniform value.
func Uniform3(rgb surface.RGB) []float32 {
	return []float32{float32(rgb.R), float32(rgb.G), float32(rgb.B)}
}

func toU8(channel float64) uint8 {
	return uint8(surface.Clamp(channel, 0, 1)*255 + 0.5)
}

package surface

import "math"

// Number of grid cells per texture coordinate unit, on each axis.
const GridTiles = 44.0

const ditherStrength = 0.012

// Linear RGB triple, channels nominally in [0, 1].
type RGB struct{ R, G, B float64 }

// Final fragment color. A is always 1.
type RGBA struct{ R, G, B, A float64 }

func (self RGB) mix(other RGB, t float64) RGB {
	return RGB{Mix(self.R, other.R, t), Mix(self.G, other.G, t), Mix(self.B, other.B, t)}
}

func (self RGB) add(other RGB, weight float64) RGB {
	return RGB{self.R + other.R*weight, self.G + other.G*weight, self.B + other.B*weight}
}

func (self RGB) scale(k float64) RGB {
	return RGB{self.R * k, self.G * k, self.B * k}
}

// Colors used by [Shade].
type Palette struct {
	Base    RGB // near black background
	Accent  RGB // violet raised areas
	Neon    RGB // grid lines and peaks
	Horizon RGB // tint added toward the far edge
}

// The default neon synthwave palette.
var DefaultPalette = Palette{
	Base:    RGB{0.01, 0.01, 0.07},
	Accent:  RGB{0.12, 0.02, 0.24},
	Neon:    RGB{1, 0, 0.6},
	Horizon: RGB{0.08, 0, 0.18},
}

// Per-fragment inputs. DU and DV are the screen-space rates of change
// of the tiled grid coordinates (what fwidth returns on the GPU).
type Fragment struct {
	U, V      float64
	Elevation float64
	DU, DV    float64
}

// Deterministic per-texel noise in [0, 1).
func Hash(u, v float64) float64 {
	return Fract(math.Sin(u*12.9898+v*78.233) * 43758.5453)
}

// Anti-aliased grid line intensity at (u, v), in [0, 1]. The result
// is 1 exactly on a line and falls to 0 one derivative width away.
func GridLine(u, v, du, dv float64) float64 {
	lx := gridAxis(u*GridTiles, du)
	ly := gridAxis(v*GridTiles, dv)
	return 1 - math.Min(math.Min(lx, ly), 1)
}

func gridAxis(coord, width float64) float64 {
	dist := math.Abs(Fract(coord-0.5) - 0.5)
	if width <= 0 {
		if dist == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return dist / width
}

// Shade computes the surface color for a single fragment.
func Shade(frag Fragment, time float64, palette Palette) RGBA {
	e := frag.Elevation

	// base
	col := palette.Base.mix(palette.Accent, Clamp(e*1.5+0.2, 0, 1))

	// neon grid
	grid := GridLine(frag.U, frag.V, frag.DU, frag.DV)
	pulse := 0.6 + 0.4*math.Sin(1.5*time+10*frag.U+8*frag.V)
	col = col.mix(palette.Neon, Clamp(grid*0.25*pulse, 0, 0.6))

	// peaks
	col = col.mix(palette.Neon, Smoothstep(0.12, 0.35, e)*0.2)

	// horizon
	col = col.add(palette.Horizon, Smoothstep(0.2, 0.9, frag.V)*0.25)

	// vignette
	dist := math.Hypot(frag.U-0.5, frag.V-0.5)
	col = col.scale(1.2 - Smoothstep(0.2, 0.8, dist))

	// dither, only ever brightens
	noise := Hash(frag.U, frag.V) * ditherStrength
	col = RGB{col.R + noise, col.G + noise, col.B + noise}

	return RGBA{
		R: Clamp(col.R, 0, 1),
		G: Clamp(col.G, 0, 1),
		B: Clamp(col.B, 0, 1),
		A: 1,
	}
}

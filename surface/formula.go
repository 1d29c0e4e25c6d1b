// Package surface implements the procedural displacement and shading
// formula for the neon grid surface, together with the tessellated
// grid that the formula is evaluated over.
//
// Nothing in this package depends on a rendering backend. The Kage
// shader in the root package mirrors [Shade] line by line, so any
// change here must be carried over there too.
package surface

import "math"

// Scale applied to the normalized pointer position before comparing
// it against world space (x, z) coordinates.
const PointerWorldScale = 6.0

const (
	bumpRadius   = 5.0
	bumpStrength = 0.4
)

// Per-frame inputs for the formula. Pointer is expected in
// normalized [-1, 1] coordinates, Y up.
type Params struct {
	Time     float64
	PointerX float64
	PointerY float64

	// Zero means [PointerWorldScale].
	PointerScale float64
}

func (self Params) pointerScale() float64 {
	if self.PointerScale == 0 {
		return PointerWorldScale
	}
	return self.PointerScale
}

// Smoothstep is the standard cubic Hermite step. Edges can be given
// in reverse order, in which case the curve decreases.
func Smoothstep(edge0, edge1, x float64) float64 {
	u := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return u * u * (3 - 2*u)
}

func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Sum of three traveling sine waves. Bounded to [-0.4, 0.4].
func WaveElevation(x, z, t float64) float64 {
	return 0.15*math.Sin(0.8*x+0.5*t) +
		0.15*math.Sin(0.5*z+0.3*t) +
		0.10*math.Sin(0.3*(x+z)+0.2*t)
}

// Returns the bump contributed by a pointer at world coordinates
// (px, pz). The distance is measured on the flat plane, before any
// displacement is applied.
func PointerInfluence(x, z, px, pz float64) float64 {
	d := math.Hypot(x-px, z-pz)
	return Smoothstep(bumpRadius, 0, d) * bumpStrength
}

// Final surface elevation at (x, z). This value is also the
// elevation input of [Shade].
func Elevation(x, z float64, params Params) float64 {
	scale := params.pointerScale()
	px, pz := params.PointerX*scale, params.PointerY*scale
	return WaveElevation(x, z, params.Time) + PointerInfluence(x, z, px, pz)
}

package neongrid

import (
	"github.com/edwinsyarief/neongrid/frame"
	"github.com/edwinsyarief/neongrid/surface"
	"github.com/hajimehoshi/ebiten/v2"
)

// Opens the window and runs the animated surface until the window
// is closed. Equivalent to [ebiten.RunGame]() for the neongrid
// controller.
//
// The configuration is normalized first, so a zero Config is valid
// and equivalent to [DefaultConfig]().
func Run(cfg Config) error {
	return pkgController.run(cfg)
}

// Returns whether a layout change has happened on the current tick.
// Layout changes happen whenever the window is resized, the game
// switches between windowed and fullscreen modes, or the device scale
// factor changes (possibly due to a monitor change).
func LayoutHasChanged() bool {
	return pkgController.layoutHasChanged
}

// Returns the size of the canvas the surface is drawn to, in
// device pixels.
func CanvasSize() (width, height int) {
	return pkgController.hiResWidth, pkgController.hiResHeight
}

// --- surface ---

// See [Surface]().
type AccessorSurface struct{}

// Provides access to the surface generator in a structured
// manner. Use through method chaining, e.g.:
//
//	params := neongrid.Surface().Params()
func Surface() AccessorSurface { return AccessorSurface{} }

// Returns the frame parameters computed on the last tick.
func (AccessorSurface) Params() surface.Params {
	return pkgController.driver.Params()
}

// Returns the surface grid, or nil before [Run]().
func (AccessorSurface) Grid() *surface.Grid {
	return pkgController.grid
}

// Returns the palette in use.
func (AccessorSurface) Palette() surface.Palette {
	return pkgController.palette
}

// Changes the palette. The new colors are uploaded on the next draw.
//
// Must only be called during initialization or event handlers.
func (AccessorSurface) SetPalette(palette surface.Palette) {
	pkgController.surfaceSetPalette(palette)
}

// Evaluates the shading formula on the CPU for the given fragment,
// using the current frame time and palette. Useful for sampling the
// background color under UI elements.
func (AccessorSurface) ShadeAt(frag surface.Fragment) surface.RGBA {
	ctrl := &pkgController
	return surface.Shade(frag, ctrl.driver.Params().Time, ctrl.palette)
}

// --- debug ---

// See [Debug]().
type AccessorDebug struct{}

// Provides access to debugging functionality in a structured
// manner. Use through method chaining, e.g.:
//
//	neongrid.Debug().Drawf("current tick: %d", neongrid.Tick().Now())
func Debug() AccessorDebug { return AccessorDebug{} }

// Similar to Printf debugging, but drawing the text on the top
// left of the screen (instead of printing on the terminal).
// Multi-line text is not supported; use multiple Drawf commands
// in sequence instead.
//
// You can call this function at any point. Strings will be queued
// and rendered at the end of the next draw.
func (AccessorDebug) Drawf(format string, args ...any) {
	pkgController.debugDrawf(format, args...)
}

// Similar to [fmt.Printf](), but only prints every N ticks. With the
// tick rate synced to a 60Hz display, N = 60 prints once per second.
func (AccessorDebug) Printfe(everyNTicks uint64, format string, args ...any) {
	pkgController.debugPrintfe(everyNTicks, format, args...)
}

// Similar to [fmt.Printf](), but only prints if the given key is pressed.
// Common keys: [ebiten.KeyShiftLeft], [ebiten.KeyControl], [ebiten.KeyDigit1].
func (AccessorDebug) Printfk(key ebiten.Key, format string, args ...any) {
	pkgController.debugPrintfk(key, format, args...)
}

// Enables or disables the built-in stats line (tick, elapsed time
// and smoothed pointer).
func (AccessorDebug) SetStats(enabled bool) {
	pkgController.debugStats = enabled
}

// --- ticks ---

// See [Tick]().
type AccessorTick struct{}

// Provides access to frame tick functions in a structured
// manner. Use through method chaining, e.g.:
//
//	currentTick := neongrid.Tick().Now()
func Tick() AccessorTick { return AccessorTick{} }

// Returns the number of frames processed so far.
func (AccessorTick) Now() uint64 {
	return pkgController.driver.Ticks()
}

// Returns the elapsed time in seconds at the last tick.
func (AccessorTick) Elapsed() float64 {
	return pkgController.driver.Params().Time
}

// Returns the current actual ticks per second, as measured by
// Ebitengine. Ticks are synced to the display refresh rate.
func (AccessorTick) TPS() float64 {
	return ebiten.ActualTPS()
}

// Ensures the controller exists even if [Run]() hasn't been called,
// so accessors can be used during initialization.
func init() {
	pkgController.driver = frame.NewDriver(frame.Options{})
}

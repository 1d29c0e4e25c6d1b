package neongrid

import (
	"github.com/edwinsyarief/neongrid/frame"
	"github.com/edwinsyarief/neongrid/tracker"
)

// See [Camera]().
type AccessorCamera struct{}

// Provides access to pointer tracking and view related functionality
// in a structured manner. Use through method chaining, e.g.:
//
//	neongrid.Camera().SetTracker(tracker.Instant)
func Camera() AccessorCamera { return AccessorCamera{} }

// --- pointer tracking ---

// Returns the tracker explicitly set with [AccessorCamera.SetTracker](),
// or nil if the one derived from the config is in use.
func (AccessorCamera) GetTracker() tracker.Tracker {
	return pkgController.cameraGetTracker()
}

// Sets the tracker in charge of smoothing the pointer position.
// By default pointer smoothing is handled by a [tracker.Exponential]
// with the factor given in the config. Passing nil restores
// [tracker.Smooth].
func (AccessorCamera) SetTracker(tr tracker.Tracker) {
	pkgController.cameraSetTracker(tr)
}

// Feeds the newest pointer position, in canvas pixels. Pointer moves
// are tracked automatically; this is only needed to steer the bump
// from code, like in scripted demos.
func (AccessorCamera) NotifyCoordinates(x, y float64) {
	pkgController.cameraNotifyCoordinates(x, y)
}

// Immediately sets both raw and smoothed pointer positions, in
// normalized [-1, 1] coordinates.
func (AccessorCamera) ResetCoordinates(x, y float64) {
	pkgController.cameraResetCoordinates(x, y)
}

// Returns the raw and smoothed pointer positions.
func (AccessorCamera) Pointer() frame.PointerState {
	return pkgController.cameraPointer()
}

// --- parallax ---

// Moves the camera vertically as if the given number of wheel steps
// had been scrolled. The offset is clamped to the configured range.
func (AccessorCamera) Scroll(steps float64) {
	pkgController.cameraScroll(steps)
}

// Returns the current vertical parallax offset in world units.
func (AccessorCamera) Parallax() float64 {
	return pkgController.camera.parallax
}

package neongrid

import (
	"fmt"
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/neongrid/frame"
	"github.com/edwinsyarief/neongrid/surface"
	"github.com/edwinsyarief/neongrid/tracker"
)

const nearPlane = 0.1

// A pinhole camera above the surface, looking toward negative Z and
// tilted down by pitch radians.
type viewCamera struct {
	height   float64
	distance float64
	pitch    float64
	fovY     float64

	parallax      float64 // vertical offset added to height
	parallaxRange float64
	parallaxStep  float64
}

func newViewCamera(cfg CameraConfig) viewCamera {
	return viewCamera{
		height:        cfg.Height,
		distance:      cfg.Distance,
		pitch:         cfg.Pitch * math.Pi / 180,
		fovY:          cfg.FOV * math.Pi / 180,
		parallaxRange: cfg.ParallaxRange,
		parallaxStep:  cfg.ParallaxStep,
	}
}

// Projects a world position to canvas pixel coordinates. The
// returned depth is the distance along the view direction, clamped
// to the near plane.
func (self *viewCamera) project(x, y, z float64, width, height int) (ebimath.Vector, float64) {
	dy := y - (self.height + self.parallax)
	dz := z - self.distance
	sin, cos := math.Sincos(self.pitch)

	camY := dy*cos - dz*sin
	depth := max(-dy*sin-dz*cos, nearPlane)

	focal := float64(height) / 2 / math.Tan(self.fovY/2)
	sx := float64(width)/2 + x/depth*focal
	sy := float64(height)/2 - camY/depth*focal
	return ebimath.V(sx, sy), depth
}

// Scrolling moves the camera up or down within the parallax range.
func (self *viewCamera) scroll(amount float64) {
	self.parallax = surface.Clamp(self.parallax+amount*self.parallaxStep, -self.parallaxRange, self.parallaxRange)
}

// ---- pointer tracking ----

func (self *controller) cameraGetTracker() tracker.Tracker {
	return self.pointerTracker
}

func (self *controller) cameraSetTracker(tr tracker.Tracker) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "set tracker"))
	}
	self.pointerTracker = tr
	self.driver.SetTracker(tr)
}

func (self *controller) cameraNotifyCoordinates(x, y float64) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "notify pointer coordinates"))
	}
	self.driver.Notify(frame.NormalizePointer(x, y, self.hiResWidth, self.hiResHeight))
}

func (self *controller) cameraResetCoordinates(x, y float64) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "reset pointer coordinates"))
	}
	self.driver.Reset(ebimath.V(x, y))
}

func (self *controller) cameraPointer() frame.PointerState {
	return self.driver.Pointer()
}

// ---- parallax ----

func (self *controller) cameraScroll(amount float64) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "scroll camera"))
	}
	self.camera.scroll(amount)
}

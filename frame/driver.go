// Package frame implements the per-frame driver of the surface: an
// elapsed time clock plus a smoothed pointer position, combined into
// the [surface.Params] consumed by the shading formula.
//
// A Driver is not safe for concurrent use. It is meant to be owned
// by the single goroutine that runs the render loop, with pointer
// events delivered on that same goroutine.
package frame

import (
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/neongrid/surface"
	"github.com/edwinsyarief/neongrid/tracker"
)

// Hero content offset, in logical pixels, per unit of smoothed pointer.
const HeroParallax = 25.0

// Raw and smoothed pointer positions, in normalized coordinates.
type PointerState struct {
	Target   ebimath.Vector
	Smoothed ebimath.Vector
	speed    ebimath.Vector
}

type Options struct {
	// Defaults to [tracker.Smooth].
	Tracker tracker.Tracker

	// World scale for the pointer. Zero means [surface.PointerWorldScale].
	PointerScale float64

	// Clock origin. Defaults to time.Now() at construction.
	Start time.Time
}

type Driver struct {
	start        time.Time
	pointer      PointerState
	tracker      tracker.Tracker
	pointerScale float64
	ticks        uint64
	last         surface.Params
	cursor       Cursor
	cursorLive   bool
}

func NewDriver(opts Options) *Driver {
	driver := &Driver{
		start:        opts.Start,
		tracker:      opts.Tracker,
		pointerScale: opts.PointerScale,
		cursor:       Cursor{RingScale: RingScaleIdle},
		cursorLive:   true,
	}
	if driver.start.IsZero() {
		driver.start = time.Now()
	}
	if driver.tracker == nil {
		driver.tracker = tracker.Smooth
	}
	return driver
}

// Maps a position in screen pixels to normalized [-1, 1] pointer
// coordinates, with Y pointing up.
func NormalizePointer(px, py float64, width, height int) ebimath.Vector {
	if width <= 0 || height <= 0 {
		return ebimath.V(0, 0)
	}
	return ebimath.V(2*px/float64(width)-1, 1-2*py/float64(height))
}

// Sets the raw pointer target. Smoothing toward it happens on the
// following ticks.
func (self *Driver) Notify(target ebimath.Vector) {
	self.pointer.Target = target
}

// Immediately sets both target and smoothed positions.
func (self *Driver) Reset(position ebimath.Vector) {
	self.pointer.Target = position
	self.pointer.Smoothed = position
	self.pointer.speed = ebimath.V(0, 0)
}

func (self *Driver) SetTracker(tr tracker.Tracker) {
	if tr == nil {
		tr = tracker.Smooth
	}
	self.tracker = tr
}

func (self *Driver) Pointer() PointerState { return self.pointer }

func (self *Driver) Ticks() uint64 { return self.ticks }

// Cursor decoration state owned by the driver. The ring only trails
// the dot on ticks where the decorations are live.
func (self *Driver) Cursor() *Cursor { return &self.cursor }

// Turns the cursor decorations and hero parallax on or off. Both are
// on after [NewDriver].
func (self *Driver) SetDecorations(live bool) { self.cursorLive = live }

func (self *Driver) Decorations() bool { return self.cursorLive }

// Offset of the hero content for the current smoothed pointer, in
// logical pixels with Y pointing down. Zero while decorations are off.
func (self *Driver) HeroOffset() ebimath.Vector {
	if !self.cursorLive {
		return ebimath.V(0, 0)
	}
	p := self.pointer.Smoothed
	return ebimath.V(p.X*HeroParallax, -p.Y*HeroParallax)
}

// Returns the params computed on the last tick.
func (self *Driver) Params() surface.Params { return self.last }

// Advances the driver one frame: reads the elapsed time at now,
// moves the smoothed pointer toward the target, lets the cursor ring
// trail the dot, and returns the frame parameters for the surface.
func (self *Driver) Tick(now time.Time) surface.Params {
	elapsed := now.Sub(self.start).Seconds()
	if elapsed < self.last.Time {
		elapsed = self.last.Time // monotonic even if the clock jumps back
	}

	p := &self.pointer
	dx, dy := self.tracker.Update(
		p.Smoothed.X, p.Smoothed.Y,
		p.Target.X, p.Target.Y,
		p.speed.X, p.speed.Y,
	)
	p.Smoothed = ebimath.V(p.Smoothed.X+dx, p.Smoothed.Y+dy)
	p.speed = ebimath.V(dx, dy)

	if self.cursorLive {
		self.cursor.Follow()
	}

	self.ticks += 1
	self.last = surface.Params{
		Time:         elapsed,
		PointerX:     p.Smoothed.X,
		PointerY:     p.Smoothed.Y,
		PointerScale: self.pointerScale,
	}
	return self.last
}

package frame

import ebimath "github.com/edwinsyarief/ebi-math"

const (
	// Fraction of the remaining distance the ring covers each tick.
	RingFollow = 0.2

	RingScaleIdle  = 1.0
	RingScaleHover = 1.18
	RingScalePress = 0.95
)

// Cursor decorations, in canvas pixels: a dot pinned to the raw
// pointer and a ring that trails behind it.
type Cursor struct {
	Dot       ebimath.Vector
	Ring      ebimath.Vector
	RingScale float64
}

// Places dot and ring at pos and restores the idle ring scale.
func (self *Cursor) Reset(pos ebimath.Vector) {
	self.Dot = pos
	self.Ring = pos
	self.RingScale = RingScaleIdle
}

func (self *Cursor) Move(pos ebimath.Vector) { self.Dot = pos }

// Moves the ring one step toward the dot.
func (self *Cursor) Follow() {
	self.Ring = ebimath.V(
		self.Ring.X+(self.Dot.X-self.Ring.X)*RingFollow,
		self.Ring.Y+(self.Dot.Y-self.Ring.Y)*RingFollow,
	)
}

// The pointer entered an interactive region.
func (self *Cursor) Enter() { self.RingScale = RingScaleHover }

// The pointer left an interactive region.
func (self *Cursor) Leave() { self.RingScale = RingScaleIdle }

func (self *Cursor) Press() { self.RingScale = RingScalePress }

// Release always goes back to idle, even over an interactive region.
func (self *Cursor) Release() { self.RingScale = RingScaleIdle }

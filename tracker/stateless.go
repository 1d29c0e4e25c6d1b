package tracker

import ebimath "github.com/edwinsyarief/ebi-math"

type tracker = Tracker

// Smoothing factor used by the default [Exponential] tracker.
const DefaultFactor = 0.05

// A few stateless built-in trackers.
var (
	// Update(...) always returns (0, 0).
	Frozen tracker = frozenTracker{}

	// Update(...) always returns (target - current).
	Instant tracker = instantTracker{}

	// Exponential smoothing with [DefaultFactor].
	Smooth tracker = Exponential{Factor: DefaultFactor}
)

type frozenTracker struct{}

func (frozenTracker) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	return 0, 0
}

type instantTracker struct{}

func (instantTracker) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	return targetX - currentX, targetY - currentY
}

// An exponential moving average: each frame the current position
// advances by Factor times the remaining distance. For factors in
// (0, 1) the position converges without overshooting, and after n
// frames the residual distance is (1 - Factor)^n of the original.
type Exponential struct {
	Factor float64
}

func (self Exponential) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	return (targetX - currentX) * self.Factor, (targetY - currentY) * self.Factor
}

// Like [Exponential], but snapping to the target once both axes are
// within Epsilon, so the smoothed position stops drifting forever.
type Settling struct {
	Factor  float64
	Epsilon float64
}

func (self Settling) Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64) {
	// stabilization
	if ebimath.Abs(targetX-currentX) < self.Epsilon && ebimath.Abs(targetY-currentY) < self.Epsilon {
		return targetX - currentX, targetY - currentY
	}
	return (targetX - currentX) * self.Factor, (targetY - currentY) * self.Factor
}

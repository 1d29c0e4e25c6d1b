// This package defines the [Tracker] interface used by the frame
// driver to move the smoothed pointer toward the raw pointer target,
// and provides a few implementations.
//
// Trackers work on normalized pointer coordinates and are invoked
// exactly once per frame.
package tracker

// The interface for pointer trackers.
//
// Given the current smoothed position and the latest raw target,
// Update() returns the change to apply to the smoothed position
// for this frame. prevSpeedX and prevSpeedY are the changes that
// were returned on the previous frame.
type Tracker interface {
	Update(currentX, currentY, targetX, targetY, prevSpeedX, prevSpeedY float64) (float64, float64)
}

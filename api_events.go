package neongrid

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// See [AccessorEvents.On]().
type EventKind uint8

const (
	// X, Y hold the cursor position in canvas pixels.
	EventPointerMove EventKind = iota

	// X, Y hold the new canvas size in device pixels.
	EventResize

	// Y holds the vertical wheel offset, X the horizontal one.
	EventScroll

	// X, Y hold the cursor position in canvas pixels.
	EventClick

	// Key holds the key that was just pressed.
	EventKeyPress

	// Left mouse button went down. X, Y hold the cursor position.
	EventPress

	// Left mouse button went up. X, Y hold the cursor position.
	EventRelease

	// The cursor moved onto a hover region. X, Y hold its position.
	EventPointerEnter

	// The cursor moved off every hover region. X, Y hold its position.
	EventPointerLeave

	eventKindEndSentinel
)

// Returns a string representation of the event kind.
func (self EventKind) String() string {
	switch self {
	case EventPointerMove:
		return "PointerMove"
	case EventResize:
		return "Resize"
	case EventScroll:
		return "Scroll"
	case EventClick:
		return "Click"
	case EventKeyPress:
		return "KeyPress"
	case EventPress:
		return "Press"
	case EventRelease:
		return "Release"
	case EventPointerEnter:
		return "PointerEnter"
	case EventPointerLeave:
		return "PointerLeave"
	default:
		panic("invalid EventKind")
	}
}

type Event struct {
	Kind EventKind
	X, Y float64
	Key  ebiten.Key
}

type EventHandler func(Event)

// See [Events]().
type AccessorEvents struct{}

// Provides access to the event dispatch table in a structured
// manner. Use through method chaining, e.g.:
//
//	neongrid.Events().On(neongrid.EventClick, func(ev neongrid.Event) { ... })
func Events() AccessorEvents { return AccessorEvents{} }

// Registers a handler for the given event kind. Handlers run on the
// update goroutine, in registration order, each one to completion
// before the next. Built-in handlers (pointer tracking, parallax,
// overlay) are registered first.
//
// Must not be called from [ebiten.Game] draw callbacks.
func (AccessorEvents) On(kind EventKind, handler EventHandler) {
	pkgController.eventsOn(kind, handler)
}

// Dispatches a synthetic event as if it came from the input devices.
// Useful for scripted demos and tests.
func (AccessorEvents) Dispatch(event Event) {
	pkgController.events.dispatch(event)
}

// Registers an extra interactive region, in canvas pixels. The cursor
// ring grows while the pointer is over any hover region. The hero
// block and the open overlay panel are always hover regions.
//
// Must not be called from [ebiten.Game] draw callbacks.
func (AccessorEvents) AddHoverRegion(region image.Rectangle) {
	pkgController.eventsAddHoverRegion(region)
}

// Removes every region added with [AccessorEvents.AddHoverRegion]().
func (AccessorEvents) ClearHoverRegions() {
	pkgController.eventsClearHoverRegions()
}

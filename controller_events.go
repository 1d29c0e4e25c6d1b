package neongrid

import (
	"fmt"
	"image"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/neongrid/frame"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direct dispatch table keyed by event kind.
type eventTable struct {
	handlers [eventKindEndSentinel][]EventHandler
}

func (self *eventTable) on(kind EventKind, handler EventHandler) {
	if kind >= eventKindEndSentinel {
		panic("invalid EventKind")
	}
	if handler == nil {
		panic("nil EventHandler")
	}
	self.handlers[kind] = append(self.handlers[kind], handler)
}

func (self *eventTable) dispatch(event Event) {
	if event.Kind >= eventKindEndSentinel {
		panic("invalid EventKind")
	}
	for _, handler := range self.handlers[event.Kind] {
		handler(event)
	}
}

func (self *eventTable) count(kind EventKind) int {
	return len(self.handlers[kind])
}

func (self *controller) eventsOn(kind EventKind, handler EventHandler) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "register event handlers"))
	}
	self.events.on(kind, handler)
}

func (self *controller) eventsAddHoverRegion(region image.Rectangle) {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "add hover regions"))
	}
	self.hoverRegions = append(self.hoverRegions, region.Canon())
}

func (self *controller) eventsClearHoverRegions() {
	if self.inDraw {
		panic(fmt.Sprintf(drawStageMisuse, "clear hover regions"))
	}
	self.hoverRegions = self.hoverRegions[:0]
}

func (self *controller) registerDefaultHandlers() {
	self.events.on(EventPointerMove, func(ev Event) {
		self.driver.Notify(frame.NormalizePointer(ev.X, ev.Y, self.hiResWidth, self.hiResHeight))
		self.driver.Cursor().Move(ebimath.V(ev.X, ev.Y))
	})
	self.events.on(EventPointerEnter, func(Event) { self.driver.Cursor().Enter() })
	self.events.on(EventPointerLeave, func(Event) { self.driver.Cursor().Leave() })
	self.events.on(EventPress, func(Event) { self.driver.Cursor().Press() })
	self.events.on(EventRelease, func(Event) { self.driver.Cursor().Release() })
	self.events.on(EventScroll, func(ev Event) {
		self.camera.scroll(ev.Y)
	})
	self.events.on(EventClick, func(ev Event) {
		self.setOverlayOpen(true)
	})
	self.events.on(EventKeyPress, func(ev Event) {
		if ev.Key == ebiten.KeyEscape {
			self.setOverlayOpen(false)
		}
	})
}

var watchedKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyF1}

// Translates this tick's input state into events.
func (self *controller) pollInput() {
	x, y := ebiten.CursorPosition() // already in canvas pixels
	if !self.cursorKnown || x != self.cursorX || y != self.cursorY {
		self.cursorX, self.cursorY, self.cursorKnown = x, y, true
		self.events.dispatch(Event{Kind: EventPointerMove, X: float64(x), Y: float64(y)})
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		self.events.dispatch(Event{Kind: EventScroll, X: wx, Y: wy})
	}

	self.updateHover(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		self.events.dispatch(Event{Kind: EventPress, X: float64(x), Y: float64(y)})
		self.events.dispatch(Event{Kind: EventClick, X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		self.events.dispatch(Event{Kind: EventRelease, X: float64(x), Y: float64(y)})
	}

	for _, key := range watchedKeys {
		if inpututil.IsKeyJustPressed(key) {
			self.events.dispatch(Event{Kind: EventKeyPress, Key: key})
		}
	}
}

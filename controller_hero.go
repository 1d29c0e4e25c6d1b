package neongrid

import (
	"image"
	"math"
	"unicode/utf8"

	"github.com/edwinsyarief/neongrid/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Logical window width at or below which the cursor decorations and
// the hero parallax are off.
const decorationMinWidth = 768

const (
	debugGlyphWidth = 6
	debugLineHeight = 16

	heroTypeDelay    = 1.3   // seconds
	heroTypeInterval = 0.045 // seconds per character

	cursorRingRadius = 16 // logical pixels
	cursorRingStroke = 1.5
	cursorDotRadius  = 4
)

var (
	cursorRingColor = utils.RGB(255, 0, 153)
	cursorDotColor  = utils.RGB(255, 255, 255)
)

// Returns the part of text typed out after elapsed seconds.
func typedPrefix(text string, elapsed float64) string {
	if elapsed < heroTypeDelay {
		return ""
	}
	n := int((elapsed - heroTypeDelay) / heroTypeInterval)
	if n >= utf8.RuneCountInString(text) {
		return text
	}
	return string([]rune(text)[:n])
}

// Canvas rectangle covered by the hero text, parallax included.
func (self *controller) heroBounds() image.Rectangle {
	chars := max(utf8.RuneCountInString(self.cfg.Hero.Title), utf8.RuneCountInString(self.cfg.Hero.Tagline))
	width := chars * debugGlyphWidth
	height := debugLineHeight * 5 / 2
	offset := self.driver.HeroOffset()
	x := self.hiResWidth/2 - width/2 + int(math.Round(offset.X*self.canvasScale))
	y := self.hiResHeight*2/5 + int(math.Round(offset.Y*self.canvasScale))
	return image.Rect(x, y, x+width, y+height)
}

func (self *controller) drawHero(target *ebiten.Image) {
	bounds := self.heroBounds()
	ebitenutil.DebugPrintAt(target, self.cfg.Hero.Title, bounds.Min.X, bounds.Min.Y)
	tagline := typedPrefix(self.cfg.Hero.Tagline, self.lastParams.Time)
	ebitenutil.DebugPrintAt(target, tagline, bounds.Min.X, bounds.Min.Y+debugLineHeight*3/2)
}

func (self *controller) drawCursor(target *ebiten.Image) {
	if !self.driver.Decorations() {
		return
	}
	cursor := self.driver.Cursor()
	scale := float32(self.canvasScale)
	radius := cursorRingRadius * scale * float32(cursor.RingScale)
	vector.StrokeCircle(target, float32(cursor.Ring.X), float32(cursor.Ring.Y),
		radius, cursorRingStroke*scale, cursorRingColor, true)
	vector.DrawFilledCircle(target, float32(cursor.Dot.X), float32(cursor.Dot.Y),
		cursorDotRadius*scale, cursorDotColor, true)
}

// --- hover ---

func (self *controller) hoverHit(pt image.Point) bool {
	if pt.In(self.heroBounds()) {
		return true
	}
	if self.overlayOpen && pt.In(self.overlayPanel(self.hiResWidth, self.hiResHeight)) {
		return true
	}
	for _, region := range self.hoverRegions {
		if pt.In(region) {
			return true
		}
	}
	return false
}

// Dispatches enter or leave when the cursor crosses a hover region
// boundary.
func (self *controller) updateHover(x, y int) {
	inside := self.hoverHit(image.Pt(x, y))
	if inside == self.hovering {
		return
	}
	self.hovering = inside
	kind := EventPointerLeave
	if inside {
		kind = EventPointerEnter
	}
	self.events.dispatch(Event{Kind: kind, X: float64(x), Y: float64(y)})
}

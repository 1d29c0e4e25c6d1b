package neongrid

import (
	"bytes"
	"image"
	"log/slog"
	"strings"
	"testing"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/neongrid/frame"
)

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		scale, max   float64
		wantW, wantH int
	}{
		{"clamped", 800, 600, 3, 2, 1600, 1200},
		{"below max", 800, 600, 1.5, 2, 1200, 900},
		{"rounds up", 101, 33, 1.5, 2, 152, 50},
		{"unit", 640, 480, 1, 2, 640, 480},
	}
	for _, tt := range tests {
		w, h := canvasSize(tt.w, tt.h, tt.scale, tt.max)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("%s: canvasSize = %dx%d, want %dx%d", tt.name, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestApplyLayoutDispatchesResize(t *testing.T) {
	ctrl := newTestController(t, Config{})
	var resizes []Event
	ctrl.events.on(EventResize, func(ev Event) { resizes = append(resizes, ev) })

	w, h := ctrl.applyLayout(1000, 700, 3)
	if w != 2000 || h != 1400 {
		t.Fatalf("layout = %dx%d, want 2000x1400", w, h)
	}
	if len(resizes) != 1 || resizes[0].X != 2000 || resizes[0].Y != 1400 {
		t.Fatalf("resize events = %+v", resizes)
	}
	if !ctrl.layoutHasChanged {
		t.Error("layoutHasChanged not set")
	}

	ctrl.applyLayout(1000, 700, 2)
	if len(resizes) != 1 {
		t.Errorf("unchanged canvas dispatched resize: %+v", resizes)
	}

	ctrl.applyLayout(1000, 700, 1)
	if len(resizes) != 2 || resizes[1].X != 1000 || resizes[1].Y != 700 {
		t.Errorf("resize events after scale change = %+v", resizes)
	}
}

func TestApplyLayoutPlacesCursorOnce(t *testing.T) {
	ctrl := newTestController(t, Config{})
	ctrl.hiResWidth, ctrl.hiResHeight = 0, 0

	ctrl.applyLayout(1000, 600, 1)
	cursor := ctrl.driver.Cursor()
	if cursor.Dot != ebimath.V(500, 300) || cursor.Ring != ebimath.V(500, 300) {
		t.Fatalf("cursor not centered: %+v", *cursor)
	}

	ctrl.events.dispatch(Event{Kind: EventPointerMove, X: 10, Y: 20})
	ctrl.applyLayout(1200, 800, 1)
	if cursor.Dot != ebimath.V(10, 20) {
		t.Errorf("second layout moved the cursor dot to %+v", cursor.Dot)
	}
}

func TestApplyLayoutDecorationsFollowWidth(t *testing.T) {
	ctrl := newTestController(t, Config{})

	ctrl.applyLayout(768, 600, 1)
	if ctrl.driver.Decorations() {
		t.Error("decorations should be off at width 768")
	}
	ctrl.applyLayout(769, 600, 1)
	if !ctrl.driver.Decorations() {
		t.Error("decorations should be on at width 769")
	}
}

func TestApplyLayoutWarnsOnClamp(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	ctrl := newTestController(t, Config{})
	ctrl.applyLayout(800, 600, 3)
	ctrl.applyLayout(900, 600, 3)
	if n := strings.Count(buf.String(), "device scale clamped"); n != 1 {
		t.Errorf("clamp warnings = %d, want 1; log: %q", n, buf.String())
	}

	buf.Reset()
	ctrl.applyLayout(900, 600, 1.5)
	if buf.Len() != 0 {
		t.Errorf("unexpected warning for unclamped scale: %q", buf.String())
	}
}

func TestCursorEventsDriveRing(t *testing.T) {
	ctrl := newTestController(t, Config{})
	cursor := ctrl.driver.Cursor()
	cursor.Reset(ebimath.V(0, 0))

	ctrl.events.dispatch(Event{Kind: EventPointerMove, X: 50, Y: 100})
	ctrl.driver.Tick(ctrl.now())
	if cursor.Dot != ebimath.V(50, 100) {
		t.Errorf("dot = %+v, want raw pointer (50, 100)", cursor.Dot)
	}
	if cursor.Ring != ebimath.V(10, 20) {
		t.Errorf("ring = %+v, want (10, 20)", cursor.Ring)
	}

	steps := []struct {
		kind EventKind
		want float64
	}{
		{EventPointerEnter, frame.RingScaleHover},
		{EventPress, frame.RingScalePress},
		{EventRelease, frame.RingScaleIdle},
		{EventPointerEnter, frame.RingScaleHover},
		{EventPointerLeave, frame.RingScaleIdle},
	}
	for _, st := range steps {
		ctrl.events.dispatch(Event{Kind: st.kind})
		if cursor.RingScale != st.want {
			t.Errorf("after %s: ring scale = %g, want %g", st.kind, cursor.RingScale, st.want)
		}
	}
}

func TestHoverRegions(t *testing.T) {
	ctrl := newTestController(t, Config{})
	var kinds []EventKind
	record := func(ev Event) { kinds = append(kinds, ev.Kind) }
	ctrl.events.on(EventPointerEnter, record)
	ctrl.events.on(EventPointerLeave, record)

	hero := ctrl.heroBounds()
	ctrl.updateHover(5, 5)
	ctrl.updateHover(hero.Min.X+1, hero.Min.Y+1)
	ctrl.updateHover(hero.Min.X+2, hero.Min.Y+2)
	if ctrl.driver.Cursor().RingScale != frame.RingScaleHover {
		t.Errorf("ring scale over hero = %g", ctrl.driver.Cursor().RingScale)
	}
	ctrl.updateHover(5, 5)

	ctrl.eventsAddHoverRegion(image.Rect(10, 10, 0, 0))
	ctrl.updateHover(5, 5)
	ctrl.eventsClearHoverRegions()
	ctrl.updateHover(5, 5)

	want := []EventKind{EventPointerEnter, EventPointerLeave, EventPointerEnter, EventPointerLeave}
	if len(kinds) != len(want) {
		t.Fatalf("hover events = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("hover event %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestOverlayPanelIsHoverRegion(t *testing.T) {
	ctrl := newTestController(t, Config{})
	panel := ctrl.overlayPanel(ctrl.hiResWidth, ctrl.hiResHeight)
	corner := image.Pt(panel.Max.X-1, panel.Max.Y-1)
	if ctrl.hoverHit(corner) {
		t.Fatal("closed overlay should not be hoverable")
	}
	ctrl.setOverlayOpen(true)
	if !ctrl.hoverHit(corner) {
		t.Error("open overlay panel should be hoverable")
	}
}

func TestHeroParallax(t *testing.T) {
	ctrl := newTestController(t, Config{})
	ctrl.canvasScale = 2
	rest := ctrl.heroBounds()

	ctrl.driver.Reset(ebimath.V(0.5, 0.5))
	moved := ctrl.heroBounds()
	if dx, dy := moved.Min.X-rest.Min.X, moved.Min.Y-rest.Min.Y; dx != 25 || dy != -25 {
		t.Errorf("hero shift = (%d, %d), want (25, -25)", dx, dy)
	}

	ctrl.driver.SetDecorations(false)
	if still := ctrl.heroBounds(); still != rest {
		t.Errorf("hero moved with decorations off: %v vs %v", still, rest)
	}
}

func TestTypedPrefix(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    string
	}{
		{0, ""},
		{1.29, ""},
		{1.3 + 0.5*0.045, ""},
		{1.3 + 1.5*0.045, "C"},
		{1.3 + 8.5*0.045, "Creating"},
		{60, "Creating Interactive UI..."},
	}
	for _, tt := range tests {
		if got := typedPrefix("Creating Interactive UI...", tt.elapsed); got != tt.want {
			t.Errorf("typedPrefix at %gs = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

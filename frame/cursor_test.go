package frame

import (
	"math"
	"testing"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
)

func TestCursorRingFollow(t *testing.T) {
	var cursor Cursor
	cursor.Reset(ebimath.V(0, 0))
	cursor.Move(ebimath.V(100, -50))

	cursor.Follow()
	if cursor.Ring.X != 20 || cursor.Ring.Y != -10 {
		t.Fatalf("ring after one step = %+v, want (20, -10)", cursor.Ring)
	}
	if cursor.Dot.X != 100 || cursor.Dot.Y != -50 {
		t.Fatalf("dot moved by follow: %+v", cursor.Dot)
	}

	for i := 2; i <= 10; i++ {
		cursor.Follow()
	}
	want := 100 * (1 - math.Pow(0.8, 10))
	if math.Abs(cursor.Ring.X-want) > 1e-9 {
		t.Errorf("ring x after 10 steps = %g, want %g", cursor.Ring.X, want)
	}
}

func TestCursorRingScale(t *testing.T) {
	var cursor Cursor
	cursor.Reset(ebimath.V(5, 5))
	steps := []struct {
		name string
		step func()
		want float64
	}{
		{"enter", cursor.Enter, 1.18},
		{"press", cursor.Press, 0.95},
		{"release", cursor.Release, 1},
		{"enter again", cursor.Enter, 1.18},
		{"leave", cursor.Leave, 1},
		{"press outside", cursor.Press, 0.95},
		{"leave while pressed", cursor.Leave, 1},
	}
	if cursor.RingScale != RingScaleIdle {
		t.Fatalf("scale after reset = %g", cursor.RingScale)
	}
	for _, st := range steps {
		st.step()
		if cursor.RingScale != st.want {
			t.Errorf("%s: scale = %g, want %g", st.name, cursor.RingScale, st.want)
		}
	}
}

func TestDriverTicksCursor(t *testing.T) {
	start := time.Unix(0, 0)
	driver := NewDriver(Options{Start: start})
	if driver.Cursor().RingScale != RingScaleIdle {
		t.Fatalf("initial ring scale = %g", driver.Cursor().RingScale)
	}
	driver.Cursor().Reset(ebimath.V(400, 300))
	driver.Cursor().Move(ebimath.V(500, 300))

	driver.Tick(start)
	if got := driver.Cursor().Ring.X; got != 420 {
		t.Errorf("ring x after tick = %g, want 420", got)
	}

	driver.SetDecorations(false)
	driver.Tick(start)
	if got := driver.Cursor().Ring.X; got != 420 {
		t.Errorf("ring moved while decorations were off: %g", got)
	}
}

func TestDriverHeroOffset(t *testing.T) {
	driver := NewDriver(Options{Start: time.Unix(0, 0)})
	driver.Reset(ebimath.V(0.4, 0.2))

	offset := driver.HeroOffset()
	if math.Abs(offset.X-10) > 1e-12 || math.Abs(offset.Y+5) > 1e-12 {
		t.Errorf("hero offset = %+v, want (10, -5)", offset)
	}

	driver.SetDecorations(false)
	if offset := driver.HeroOffset(); offset.X != 0 || offset.Y != 0 {
		t.Errorf("hero offset with decorations off = %+v", offset)
	}
}

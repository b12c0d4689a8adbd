package control

import (
	"image/color"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/iburimskiy/gesture-nebula/internal/gesture"
	"github.com/iburimskiy/gesture-nebula/internal/nebula"
)

type nullSurface struct{ circles int }

func (s *nullSurface) Size() (float64, float64) { return 640, 480 }
func (s *nullSurface) SetTransform(nebula.Transform) {}
func (s *nullSurface) Fill(color.NRGBA) {}
func (s *nullSurface) Circle(_, _, _ float64, _ color.NRGBA) { s.circles++ }
func (s *nullSurface) Glow(_, _, _ float64, _ color.NRGBA) {}

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func tick(n int) time.Time {
	return epoch.Add(time.Duration(n) * time.Second / 60)
}

func newTestController() *Controller {
	field := nebula.NewField(nebula.Options{Particles: 100, Rand: rand.New(rand.NewSource(1))})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewController(gesture.NewClassifier(gesture.Options{}), field, log)
}

func handAt(x, reach float64) gesture.Snapshot {
	s := make(gesture.Snapshot, gesture.LandmarkCount)
	for i := range s {
		s[i] = gesture.Landmark{X: x, Y: 0.6}
	}
	for _, i := range []int{gesture.ThumbTip, gesture.IndexTip, gesture.MiddleTip, gesture.RingTip, gesture.PinkyTip} {
		s[i] = gesture.Landmark{X: x, Y: 0.6 - reach}
	}
	return s
}

func TestAbsentThenOpenHandGrowsNebula(t *testing.T) {
	c := newTestController()
	surf := &nullSurface{}

	n := 0
	for ; n < 5; n++ {
		c.Observe(nil, tick(n))
		c.Render(surf)
		if c.Status() != statusNoHand {
			t.Fatalf("expected no-hand status, got %q", c.Status())
		}
		if c.LastResult() != (gesture.Result{}) {
			t.Fatalf("expected zero result, got %+v", c.LastResult())
		}
	}
	if c.Scale() != 1 {
		t.Fatalf("expected scale untouched while absent, got %v", c.Scale())
	}

	c.Observe(handAt(0.5, 0.3), tick(n))
	if !c.LastResult().Open {
		t.Fatalf("expected open hand on first present tick, got %+v", c.LastResult())
	}
	if c.Hand() == nil {
		t.Fatal("expected hand to be kept for the overlay")
	}

	prev := c.field.Scale()
	c.Render(surf)
	if c.field.Scale() <= prev {
		t.Fatalf("expected drawn scale to grow, got %v -> %v", prev, c.field.Scale())
	}

	for n++; n < 400; n++ {
		c.Observe(handAt(0.5, 0.3), tick(n))
		c.Render(surf)
	}
	if c.Scale() != nebula.MaxScale {
		t.Fatalf("expected commanded scale at max, got %v", c.Scale())
	}
	if math.Abs(c.field.Scale()-nebula.MaxScale) > 0.01 {
		t.Fatalf("expected drawn scale near max, got %v", c.field.Scale())
	}
}

func TestFistShrinksToMinimum(t *testing.T) {
	c := newTestController()
	for n := 0; n < 100; n++ {
		c.Observe(handAt(0.5, 0), tick(n))
	}
	if c.Scale() != nebula.MinScale {
		t.Fatalf("expected min scale, got %v", c.Scale())
	}
	if c.Status() != statusGrab {
		t.Fatalf("expected grab status, got %q", c.Status())
	}
}

func TestNeutralHandHoldsScale(t *testing.T) {
	c := newTestController()
	c.Observe(handAt(0.5, 0.2), tick(0))
	if c.Scale() != 1 || c.Status() != statusReady {
		t.Fatalf("expected unchanged scale and ready status, got %v %q", c.Scale(), c.Status())
	}
}

func TestSwipeSwitchesNebula(t *testing.T) {
	c := newTestController()
	c.Observe(handAt(0.3, 0.2), tick(0))
	c.Observe(handAt(0.6, 0.2), tick(6))
	if c.field.Index() != 1 {
		t.Fatalf("expected next nebula after right swipe, got %d", c.field.Index())
	}
	if c.Status() != statusRight {
		t.Fatalf("expected right status, got %q", c.Status())
	}

	// Still inside the cooldown.
	c.Observe(handAt(0.2, 0.2), tick(12))
	if c.field.Index() != 1 {
		t.Fatalf("expected no switch during cooldown, got %d", c.field.Index())
	}

	c.Observe(handAt(0.6, 0.2), tick(120))
	c.Observe(handAt(0.3, 0.2), tick(126))
	if c.field.Index() != 0 {
		t.Fatalf("expected previous nebula after left swipe, got %d", c.field.Index())
	}
	if c.Nebula().Name != nebula.Catalog[0].Name {
		t.Fatalf("unexpected nebula %+v", c.Nebula())
	}
}

func TestKeyboardCommands(t *testing.T) {
	c := newTestController()

	c.Command(CommandLarger)
	if math.Abs(c.Scale()-1.1) > 1e-9 || math.Abs(c.field.Target()-1.1) > 1e-9 {
		t.Fatalf("expected 1.1, got %v/%v", c.Scale(), c.field.Target())
	}
	for i := 0; i < 50; i++ {
		c.Command(CommandLarger)
	}
	if c.Scale() != nebula.MaxScale {
		t.Fatalf("expected clamp at max, got %v", c.Scale())
	}
	for i := 0; i < 50; i++ {
		c.Command(CommandSmaller)
	}
	if c.Scale() != nebula.MinScale || c.field.Target() != nebula.MinScale {
		t.Fatalf("expected clamp at min, got %v", c.Scale())
	}

	c.Command(CommandPrevious)
	if c.field.Index() != len(nebula.Catalog)-1 {
		t.Fatalf("expected wrap to last nebula, got %d", c.field.Index())
	}
	c.Command(CommandNext)
	if c.field.Index() != 0 || c.Status() != statusNext {
		t.Fatalf("expected first nebula, got %d %q", c.field.Index(), c.Status())
	}
}

func TestRenderDrawsEveryParticle(t *testing.T) {
	c := newTestController()
	surf := &nullSurface{}
	c.Render(surf)
	if surf.circles != 100 {
		t.Fatalf("expected 100 particles, got %d", surf.circles)
	}
}

package gesture

import (
	"math"
	"time"
)

// Swipe is a discrete horizontal hand motion.
type Swipe int

const (
	SwipeNone Swipe = iota
	SwipeLeft
	SwipeRight
)

func (s Swipe) String() string {
	switch s {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return "none"
	}
}

// Result is the classification of a single snapshot.
type Result struct {
	Openness float64
	Swipe    Swipe
	Grabbing bool
	Open     bool
}

// Options tunes the classifier. Zero fields take the DefaultOptions value.
type Options struct {
	// GrabThreshold and OpenThreshold bound the openness metric.
	GrabThreshold float64
	OpenThreshold float64

	// SwipeThreshold is the horizontal travel, in SwipeSpan units, needed
	// for a swipe. SwipeSpan is the width normalized x is projected onto,
	// typically the capture frame width in pixels.
	SwipeThreshold float64
	SwipeSpan      float64

	Window   time.Duration
	Cooldown time.Duration
}

// DefaultOptions returns the thresholds used by the visualizer.
func DefaultOptions() Options {
	return Options{
		GrabThreshold:  0.15,
		OpenThreshold:  0.25,
		SwipeThreshold: 100,
		SwipeSpan:      640,
		Window:         500 * time.Millisecond,
		Cooldown:       1000 * time.Millisecond,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GrabThreshold <= 0 {
		o.GrabThreshold = d.GrabThreshold
	}
	if o.OpenThreshold <= 0 {
		o.OpenThreshold = d.OpenThreshold
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = d.SwipeThreshold
	}
	if o.SwipeSpan <= 0 {
		o.SwipeSpan = d.SwipeSpan
	}
	if o.Window <= 0 {
		o.Window = d.Window
	}
	if o.Cooldown <= 0 {
		o.Cooldown = d.Cooldown
	}
	return o
}

// Classifier turns a stream of snapshots into gesture results. It keeps the
// swipe tracking anchor between calls and is not safe for concurrent use.
type Classifier struct {
	opts Options

	anchorX     float64
	hasAnchor   bool
	anchorTime  time.Time
	lastGesture time.Time
}

// NewClassifier returns a classifier with no prior sample.
func NewClassifier(opts Options) *Classifier {
	return &Classifier{opts: opts.withDefaults()}
}

// Options returns the effective thresholds.
func (c *Classifier) Options() Options { return c.opts }

// Classify evaluates one snapshot observed at now. A nil or incomplete
// snapshot yields a zero Result and leaves the swipe tracking state as it
// was, so a hand that disappears and reappears is measured against the
// anchor it left behind.
func (c *Classifier) Classify(s Snapshot, now time.Time) Result {
	if !s.Valid() {
		return Result{}
	}
	openness := Openness(s)
	return Result{
		Openness: openness,
		Swipe:    c.detectSwipe(s, now),
		Grabbing: openness < c.opts.GrabThreshold,
		Open:     openness > c.opts.OpenThreshold,
	}
}

// Reset forgets the anchor and the cooldown.
func (c *Classifier) Reset() {
	c.hasAnchor = false
	c.anchorX = 0
	c.anchorTime = time.Time{}
	c.lastGesture = time.Time{}
}

func (c *Classifier) detectSwipe(s Snapshot, now time.Time) Swipe {
	// Hard gate: nothing is touched while cooling down.
	if !c.lastGesture.IsZero() && now.Sub(c.lastGesture) < c.opts.Cooldown {
		return SwipeNone
	}

	x := s[MiddleBase].X * c.opts.SwipeSpan
	if !c.hasAnchor {
		c.anchorX, c.anchorTime, c.hasAnchor = x, now, true
		return SwipeNone
	}

	dx := x - c.anchorX
	dt := now.Sub(c.anchorTime)

	switch {
	case dx < -c.opts.SwipeThreshold && dt < c.opts.Window:
		c.lastGesture = now
		c.hasAnchor = false
		return SwipeLeft
	case dx > c.opts.SwipeThreshold && dt < c.opts.Window:
		c.lastGesture = now
		c.hasAnchor = false
		return SwipeRight
	case dt > c.opts.Window:
		c.anchorX, c.anchorTime = x, now
	}
	return SwipeNone
}

// Openness is the mean distance from the wrist to the five fingertips in
// normalized coordinates. It is 0 for an incomplete snapshot.
func Openness(s Snapshot) float64 {
	if !s.Valid() {
		return 0
	}
	wrist := s[Wrist]
	var total float64
	for _, i := range fingertips {
		total += math.Hypot(s[i].X-wrist.X, s[i].Y-wrist.Y)
	}
	return total / float64(len(fingertips))
}

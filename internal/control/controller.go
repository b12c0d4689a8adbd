package control

import (
	"log/slog"
	"time"

	"github.com/iburimskiy/gesture-nebula/internal/gesture"
	"github.com/iburimskiy/gesture-nebula/internal/nebula"
)

const (
	// gestureStep is applied every tick a hand is held open or closed.
	gestureStep = 0.02
	// keyStep is applied once per key press.
	keyStep = 0.1
)

// Command is a discrete keyboard control.
type Command int

const (
	CommandSmaller Command = iota
	CommandLarger
	CommandPrevious
	CommandNext
)

func (c Command) String() string {
	switch c {
	case CommandSmaller:
		return "smaller"
	case CommandLarger:
		return "larger"
	case CommandPrevious:
		return "previous"
	case CommandNext:
		return "next"
	}
	return "unknown"
}

// Status lines shown in the HUD.
const (
	statusReady    = "Ready - open or close your hand, swipe to switch"
	statusKeyboard = "Keyboard mode - +/- to scale, arrows to switch"
	statusNoHand   = "Place your hand in front of the camera"
	statusGrab     = "Grab - shrinking"
	statusOpen     = "Open - growing"
	statusLeft     = "Swipe left - previous nebula"
	statusRight    = "Swipe right - next nebula"
	statusSmaller  = "Shrinking nebula"
	statusLarger   = "Growing nebula"
	statusPrevious = "Previous nebula"
	statusNext     = "Next nebula"
)

// Controller routes gesture results and keyboard commands into the field.
// It owns both components and is driven from the game tick only.
type Controller struct {
	classifier *gesture.Classifier
	field      *nebula.Field
	log        *slog.Logger

	base   float64
	status string
	last   gesture.Result
	hand   gesture.Snapshot
}

// NewController wires a classifier and a field together.
func NewController(classifier *gesture.Classifier, field *nebula.Field, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		classifier: classifier,
		field:      field,
		log:        log,
		base:       field.Target(),
		status:     statusKeyboard,
	}
}

// Observe feeds the snapshot seen at now. A nil snapshot means no hand is
// visible; the classifier is not consulted so its swipe tracking is left
// as it was.
func (c *Controller) Observe(s gesture.Snapshot, now time.Time) {
	if !s.Valid() {
		c.hand = nil
		c.last = gesture.Result{}
		c.status = statusNoHand
		return
	}
	c.hand = s

	res := c.classifier.Classify(s, now)
	c.last = res

	switch {
	case res.Grabbing:
		c.base = nebula.ClampScale(c.base - gestureStep)
		c.status = statusGrab
	case res.Open:
		c.base = nebula.ClampScale(c.base + gestureStep)
		c.status = statusOpen
	default:
		c.status = statusReady
	}
	c.field.SetTarget(c.base)

	switch res.Swipe {
	case gesture.SwipeLeft:
		c.field.Previous()
		c.status = statusLeft
		c.logSwitch("swipe", res.Swipe.String())
	case gesture.SwipeRight:
		c.field.Next()
		c.status = statusRight
		c.logSwitch("swipe", res.Swipe.String())
	}
}

// Command applies one keyboard press.
func (c *Controller) Command(cmd Command) {
	switch cmd {
	case CommandSmaller:
		c.base = nebula.ClampScale(c.base - keyStep)
		c.field.SetTarget(c.base)
		c.status = statusSmaller
	case CommandLarger:
		c.base = nebula.ClampScale(c.base + keyStep)
		c.field.SetTarget(c.base)
		c.status = statusLarger
	case CommandPrevious:
		c.field.Previous()
		c.status = statusPrevious
		c.logSwitch("key", cmd.String())
	case CommandNext:
		c.field.Next()
		c.status = statusNext
		c.logSwitch("key", cmd.String())
	default:
		c.log.Warn("unknown command", "command", int(cmd))
	}
}

func (c *Controller) logSwitch(source, action string) {
	cur := c.field.Current()
	c.log.Info("nebula switched", "source", source, "action", action, "nebula", cur.Name, "index", c.field.Index())
}

// Render draws one frame of the field.
func (c *Controller) Render(dst nebula.Surface) {
	c.field.Render(dst)
}

// Scale is the commanded scale, shown as a percentage in the HUD.
func (c *Controller) Scale() float64 { return c.base }

// Nebula describes the selected archetype.
func (c *Controller) Nebula() nebula.Info { return c.field.Current() }

// Status is the last action message.
func (c *Controller) Status() string { return c.status }

// LastResult is the classification of the last observed snapshot.
func (c *Controller) LastResult() gesture.Result { return c.last }

// Hand is the last valid snapshot, or nil when no hand is visible.
func (c *Controller) Hand() gesture.Snapshot { return c.hand }

// SetStatus overrides the status line, e.g. for errors from the outer layer.
func (c *Controller) SetStatus(s string) { c.status = s }

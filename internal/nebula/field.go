package nebula

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Scale bounds and smoothing.
const (
	MinScale        = 0.3
	MaxScale        = 3.0
	SmoothingFactor = 0.1

	// SettleEpsilon is how close current must be to target to count as settled.
	SettleEpsilon = 0.001

	DefaultParticleCount = 2000

	trailAlpha      = 0.05
	glowAlpha       = 0.3
	glowRadius      = 3.0
	centerGlowAlpha = 0.3
	centerRadius    = 100.0
)

// Options configures a Field.
type Options struct {
	Particles int
	// Rand drives particle generation and ring jitter. A time-seeded
	// source is used when nil.
	Rand *rand.Rand
}

// Info describes the selected archetype for display.
type Info struct {
	Name  string
	Color string
}

// RGB parses Color.
func (i Info) RGB() color.RGBA { return hexToRGB(i.Color) }

// Field owns the particle population of the selected archetype and its
// scale. It is driven from a single goroutine.
type Field struct {
	rng   *rand.Rand
	count int

	index     int
	particles []Particle

	current float64
	target  float64
}

// NewField returns a field showing the first archetype at scale 1.
func NewField(opts Options) *Field {
	if opts.Particles <= 0 {
		opts.Particles = DefaultParticleCount
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Field{
		rng:     opts.Rand,
		count:   opts.Particles,
		current: 1,
		target:  1,
	}
	f.regenerate()
	return f
}

func (f *Field) regenerate() {
	f.particles = make([]Particle, f.count)
	for i := range f.particles {
		f.particles[i] = newParticle(f.rng)
	}
}

// Next selects the following archetype and regenerates the population.
func (f *Field) Next() {
	f.index = (f.index + 1) % len(Catalog)
	f.regenerate()
}

// Previous selects the preceding archetype and regenerates the population.
func (f *Field) Previous() {
	n := len(Catalog)
	f.index = (f.index - 1 + n) % n
	f.regenerate()
}

// Index is the position of the selected archetype in Catalog.
func (f *Field) Index() int { return f.index }

// Archetype returns the selected preset.
func (f *Field) Archetype() Archetype { return Catalog[f.index] }

// Current returns the label data of the selected archetype.
func (f *Field) Current() Info {
	a := Catalog[f.index]
	return Info{Name: a.Name, Color: a.Color}
}

// Particles exposes the live population. Callers must not retain it across
// archetype changes.
func (f *Field) Particles() []Particle { return f.particles }

// SetTarget clamps s to [MinScale, MaxScale] and makes it the scale the
// field converges to.
func (f *Field) SetTarget(s float64) {
	f.target = ClampScale(s)
}

// Target is the scale being converged to.
func (f *Field) Target() float64 { return f.target }

// Scale is the smoothed scale used for drawing.
func (f *Field) Scale() float64 { return f.current }

// Settled reports whether the scale has reached its target.
func (f *Field) Settled() bool {
	return math.Abs(f.target-f.current) < SettleEpsilon
}

func (f *Field) smooth() {
	f.current += (f.target - f.current) * SmoothingFactor
}

// Render produces one frame on dst: smooth the scale, fade the previous
// frame, draw every particle around the centre, then the centre light.
func (f *Field) Render(dst Surface) {
	f.smooth()

	dst.SetTransform(Identity)
	dst.Fill(color.NRGBA{A: uint8(math.Round(trailAlpha * 255))})

	w, h := dst.Size()
	cx, cy := w/2, h/2
	dst.SetTransform(Transform{OffsetX: cx, OffsetY: cy, Scale: f.current})

	a := Catalog[f.index]
	base := a.RGB()
	for i := range f.particles {
		p := &f.particles[i]
		p.Angle += p.Speed

		x, y := Layout(*p, a.Shape, f.rng)
		c := tint(base, p.ColorOffset, p.Opacity)
		dst.Circle(x, y, p.Size, c)
		if p.Size > GlowSize {
			halo := c
			halo.A = uint8(clamp01(p.Opacity*glowAlpha) * 255)
			dst.Glow(x, y, p.Size*glowRadius, halo)
		}
	}

	dst.SetTransform(Identity)
	dst.Glow(cx, cy, centerRadius*f.current, tint(base, 0, centerGlowAlpha))
}

// ClampScale limits s to the supported scale range.
func ClampScale(s float64) float64 {
	if math.IsNaN(s) {
		return MinScale
	}
	return math.Max(MinScale, math.Min(MaxScale, s))
}

package nebula

import (
	"math"
	"math/rand"
)

// Particle generation ranges, half-open.
const (
	MaxDistance = 300.0

	MinSize     = 0.5
	MaxSize     = 2.5
	MinSpeed    = 0.001
	MaxSpeed    = 0.003
	MinOpacity  = 0.2
	MaxOpacity  = 1.0
	ColorSpread = 30.0

	// GlowSize is the size above which a particle gets a halo.
	GlowSize = 1.5

	ringBase      = 150.0
	ringThickness = 50.0
)

// Particle is one point of the field. Angle advances by Speed radians per
// tick; every other attribute is fixed at generation.
type Particle struct {
	Angle       float64
	Distance    float64
	Size        float64
	Speed       float64
	Opacity     float64
	ColorOffset float64
}

func newParticle(rng *rand.Rand) Particle {
	return Particle{
		Angle:       rng.Float64() * 2 * math.Pi,
		Distance:    rng.Float64() * MaxDistance,
		Size:        MinSize + rng.Float64()*(MaxSize-MinSize),
		Speed:       MinSpeed + rng.Float64()*(MaxSpeed-MinSpeed),
		Opacity:     MinOpacity + rng.Float64()*(MaxOpacity-MinOpacity),
		ColorOffset: rng.Float64()*2*ColorSpread - ColorSpread,
	}
}

// Layout places p for the given shape, centred on the origin and before
// scaling. Ring jitter is drawn from rng.
func Layout(p Particle, shape Shape, rng *rand.Rand) (x, y float64) {
	a, d := p.Angle, p.Distance
	switch shape {
	case ShapeSpiral:
		r := d * (1 + a/(2*math.Pi))
		return math.Cos(a) * r, math.Sin(a) * r
	case ShapeSpherical:
		phi := math.Acos(2*(d/MaxDistance) - 1)
		return math.Cos(a) * math.Sin(phi) * d, math.Sin(a) * math.Sin(phi) * d * 0.7
	case ShapeRing:
		r := ringBase + d*0.5 + (rng.Float64()-0.5)*ringThickness
		return math.Cos(a) * r, math.Sin(a) * r * 0.3
	case ShapeElliptical:
		return math.Cos(a) * d * 1.5, math.Sin(a) * d * 0.6
	case ShapeIrregular:
		r := d + 50*math.Sin(5*a)
		return math.Cos(a) * r, math.Sin(a) * r
	case ShapeCircular:
		return math.Cos(a) * d, math.Sin(a) * d
	}
	return math.Cos(a) * d, math.Sin(a) * d
}

package nebula

import "image/color"

// Transform maps field coordinates to surface pixels:
// px = OffsetX + x*Scale, py = OffsetY + y*Scale.
type Transform struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// Identity is the untransformed mapping.
var Identity = Transform{Scale: 1}

// Apply maps a point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.OffsetX + x*t.Scale, t.OffsetY + y*t.Scale
}

// Surface is the drawing target a Field renders into. Coordinates and radii
// passed to Circle and Glow are in the space of the current transform.
type Surface interface {
	Size() (w, h float64)
	SetTransform(t Transform)
	// Fill covers the whole surface with c, blending over what is there.
	Fill(c color.NRGBA)
	Circle(x, y, r float64, c color.NRGBA)
	// Glow paints a radial gradient from c at the centre to transparent at
	// radius r.
	Glow(x, y, r float64, c color.NRGBA)
}

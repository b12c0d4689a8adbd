package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gesture-nebula/internal/nebula"
)

const glowSpriteSize = 64

// canvas is the persistent render target of the field. It is never cleared
// so the trail fill leaves a fading history of previous frames.
type canvas struct {
	img  *ebiten.Image
	glow *ebiten.Image
	t    nebula.Transform
}

func newCanvas(w, h int) *canvas {
	img := ebiten.NewImage(w, h)
	img.Fill(color.Black)
	return &canvas{
		img:  img,
		glow: newGlowSprite(glowSpriteSize),
		t:    nebula.Identity,
	}
}

// newGlowSprite renders a white radial gradient, opaque at the centre and
// transparent at the rim, in premultiplied alpha.
func newGlowSprite(size int) *ebiten.Image {
	pix := make([]byte, size*size*4)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			a := clamp01(1 - math.Hypot(dx, dy)/r)
			v := uint8(a * 255)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

func (c *canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvas) SetTransform(t nebula.Transform) { c.t = t }

func (c *canvas) Fill(clr color.NRGBA) {
	w, h := c.Size()
	vector.DrawFilledRect(c.img, 0, 0, float32(w), float32(h), clr, false)
}

func (c *canvas) Circle(x, y, r float64, clr color.NRGBA) {
	px, py := c.t.Apply(x, y)
	vector.DrawFilledCircle(c.img, float32(px), float32(py), float32(r*c.t.Scale), clr, true)
}

func (c *canvas) Glow(x, y, r float64, clr color.NRGBA) {
	px, py := c.t.Apply(x, y)
	pr := r * c.t.Scale
	if pr <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*pr/glowSpriteSize, 2*pr/glowSpriteSize)
	op.GeoM.Translate(px-pr, py-pr)
	op.ColorScale.ScaleWithColor(clr)
	op.Blend = ebiten.BlendSourceOver
	c.img.DrawImage(c.glow, op)
}

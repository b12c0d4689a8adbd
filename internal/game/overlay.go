package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gesture-nebula/internal/gesture"
)

// Hand inset in the lower right corner, sized like a 4:3 camera preview.
const (
	insetWidth  = 240
	insetHeight = 180
	insetMargin = 20

	handHint = "Show your hand to the camera"
)

var (
	boneColor  = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	wristColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	insetBg    = color.RGBA{R: 10, G: 12, B: 20, A: 160}
	insetEdge  = color.RGBA{R: 60, G: 70, B: 90, A: 255}
)

// drawHand paints the skeleton of s into an inset; with no hand it shows
// the placement hint instead.
func drawHand(screen *ebiten.Image, s gesture.Snapshot) {
	b := screen.Bounds()
	x0 := float32(b.Dx() - insetWidth - insetMargin)
	y0 := float32(b.Dy() - insetHeight - insetMargin)

	vector.DrawFilledRect(screen, x0, y0, insetWidth, insetHeight, insetBg, false)
	vector.StrokeRect(screen, x0, y0, insetWidth, insetHeight, 1, insetEdge, false)

	if !s.Valid() {
		drawLabel(screen, handHint, int(x0)+8, int(y0)+insetHeight/2)
		return
	}

	point := func(l gesture.Landmark) (float32, float32) {
		return x0 + float32(l.X)*insetWidth, y0 + float32(l.Y)*insetHeight
	}
	for _, bone := range gesture.Connections {
		ax, ay := point(s[bone[0]])
		bx, by := point(s[bone[1]])
		vector.StrokeLine(screen, ax, ay, bx, by, 2, boneColor, true)
	}
	for i, l := range s[:gesture.LandmarkCount] {
		x, y := point(l)
		r, clr := float32(3), boneColor
		if i == gesture.Wrist {
			r, clr = 5, wristColor
		}
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		vector.StrokeCircle(screen, x, y, r, 1, color.White, true)
	}
}

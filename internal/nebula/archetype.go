package nebula

import (
	"image/color"
	"strconv"
	"strings"
)

// Shape selects the layout function used to place particles.
type Shape int

const (
	ShapeCircular Shape = iota
	ShapeSpiral
	ShapeSpherical
	ShapeRing
	ShapeElliptical
	ShapeIrregular
)

func (s Shape) String() string {
	switch s {
	case ShapeSpiral:
		return "spiral"
	case ShapeSpherical:
		return "spherical"
	case ShapeRing:
		return "ring"
	case ShapeElliptical:
		return "elliptical"
	case ShapeIrregular:
		return "irregular"
	default:
		return "circular"
	}
}

// Archetype is one preset of the catalog.
type Archetype struct {
	Name  string
	Shape Shape
	// Color is the base colour as "#rrggbb".
	Color string
}

// RGB returns the base colour. Malformed hex falls back to white.
func (a Archetype) RGB() color.RGBA {
	return hexToRGB(a.Color)
}

// Catalog is the fixed, ordered list of nebula presets.
var Catalog = []Archetype{
	{Name: "Spiral Nebula", Shape: ShapeSpiral, Color: "#ff00ff"},
	{Name: "Spherical Nebula", Shape: ShapeSpherical, Color: "#00ffff"},
	{Name: "Ring Nebula", Shape: ShapeRing, Color: "#ffff00"},
	{Name: "Elliptical Nebula", Shape: ShapeElliptical, Color: "#ff6600"},
	{Name: "Irregular Nebula", Shape: ShapeIrregular, Color: "#00ff00"},
}

func hexToRGB(hex string) color.RGBA {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return white
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return white
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// tint offsets every channel of base by off, clamped to [0,255], with the
// given alpha in [0,1].
func tint(base color.RGBA, off, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: channel(float64(base.R) + off),
		G: channel(float64(base.G) + off),
		B: channel(float64(base.B) + off),
		A: uint8(clamp01(alpha) * 255),
	}
}

func channel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Package render paints pages (heading, quote, sky and mountain) for terminal
// display. Scene generation stays in package scene; this package only maps
// descriptors to cells.
package render

import (
	"math"

	"github.com/vovakirdan/turtleshell/internal/core"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

// cellAspect is how many columns make up the height of one row.
const cellAspect = 2.0

// shapeUnit is the half-size of a scale-1 shape as a fraction of the sky height.
const shapeUnit = 1.0 / 24

// PaintSky fills area with the scene's base color and draws its elements in order.
func PaintSky(s *core.Screen, area core.Rect, sc scene.SceneResult) {
	if area.Empty() {
		return
	}
	base := core.Color(sc.BaseColor)
	s.FillRect(area, base)

	for _, el := range sc.Elements {
		paintElement(s, area, el, sc.Perspective, base)
	}
}

// DepthScale is the apparent magnification of a shape pushed d pixels towards
// a viewer at distance p.
func DepthScale(perspective, depth int) float64 {
	p := float64(perspective)
	d := float64(depth)
	if p <= 0 || d >= p {
		return 1
	}
	return p / (p - d)
}

func paintElement(s *core.Screen, area core.Rect, el scene.ElementDescriptor, perspective int, base core.Color) {
	cx := float64(area.X) + el.Left/100*float64(area.W)
	cy := float64(area.Y) + el.Top/100*float64(area.H)
	half := el.Scale * DepthScale(perspective, el.Depth) * shapeUnit * float64(area.H)
	color := core.Blend(core.Color(el.Color), base, el.Opacity)
	cell := core.Cell{Rune: shade(el.Opacity), FG: color, BG: color}

	theta := el.Rotation * math.Pi / 180
	sin, cos := math.Sincos(theta)

	// A rotated square reaches at most sqrt(2)*half from its center.
	reach := half*math.Sqrt2 + 1
	minX := int(math.Floor(cx - reach*cellAspect))
	maxX := int(math.Ceil(cx + reach*cellAspect))
	minY := int(math.Floor(cy - reach))
	maxY := int(math.Ceil(cy + reach))

	painted := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !area.Contains(x, y) {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / cellAspect
			dy := float64(y) + 0.5 - cy
			u := dx*cos + dy*sin
			v := -dx*sin + dy*cos
			if math.Abs(u) <= half && math.Abs(v) <= half {
				s.Set(x, y, cell)
				painted = true
			}
		}
	}

	// Shapes smaller than a cell still leave a mark.
	if !painted {
		s.Set(area.PercentX(el.Left), area.PercentY(el.Top), cell)
	}
}

// shadeRunes stand in for opacity when colors are unavailable.
var shadeRunes = []rune{'░', '▒', '▓', '█'}

// shade picks a block rune for an opacity in [0, 1). With foreground equal to
// background the rune is invisible in color output.
func shade(opacity float64) rune {
	i := int(opacity * float64(len(shadeRunes)))
	return shadeRunes[core.Clamp(i, 0, len(shadeRunes)-1)]
}

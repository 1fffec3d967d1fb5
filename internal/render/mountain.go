package render

import (
	"github.com/vovakirdan/turtleshell/internal/core"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

// mountainArt is the silhouette, drawn bottom-aligned.
// '#' is rock in the dark color, '+' a highlight, '.' a faint highlight.
var mountainArt = []string{
	"          ##          ",
	"         ####         ",
	"        ##++##        ",
	"       ###++###       ",
	"      ####+.####      ",
	"     #####+.#####     ",
	"    ######..######    ",
	"   #####++####.####   ",
	"  ######++#####.####  ",
	" #####################",
	"######################",
}

// highlight opacities of the light color over the dark rock
const (
	strongHighlight = 0.6
	faintHighlight  = 0.2
)

// MountainSize returns the silhouette size in cells.
func MountainSize() (w, h int) {
	return len(mountainArt[0]), len(mountainArt)
}

// PaintMountain draws the silhouette centered in area, lifted m.Bottom
// percent of the area height above the bottom edge. Cells outside area are clipped.
func PaintMountain(s *core.Screen, area core.Rect, m scene.Mountain) {
	if area.Empty() {
		return
	}
	w, h := MountainSize()
	dark := core.Color(m.Dark)
	strong := core.Blend(core.Color(m.Light), dark, strongHighlight)
	faint := core.Blend(core.Color(m.Light), dark, faintHighlight)

	lift := int(m.Bottom / 100 * float64(area.H))
	left := area.X + (area.W-w)/2
	top := area.Bottom() - lift - h

	for row, line := range mountainArt {
		y := top + row
		for col, r := range line {
			x := left + col
			if !area.Contains(x, y) {
				continue
			}
			var bg core.Color
			switch r {
			case '#':
				bg = dark
			case '+':
				bg = strong
			case '.':
				bg = faint
			default:
				continue
			}
			s.Set(x, y, core.Cell{Rune: r, FG: bg, BG: bg})
		}
	}
}

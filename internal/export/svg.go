package export

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/vovakirdan/turtleshell/internal/registry"
	"github.com/vovakirdan/turtleshell/internal/render"
)

// SVG draws the sky and mountain the way the web page lays them out:
// positions in percent of the canvas, rotation in degrees, scale and opacity
// applied per shape.
type SVG struct {
	Width  int
	Height int
	Unit   int // side of a scale-1 shape in pixels
}

// NewSVG returns an exporter for a 1200x800 canvas.
func NewSVG() SVG {
	return SVG{Width: 1200, Height: 800, Unit: 40}
}

func (SVG) ID() string        { return "svg" }
func (SVG) Title() string     { return "SVG image" }
func (SVG) Extension() string { return ".svg" }

// Export ignores the cell size in opts; the canvas size is fixed by the exporter.
func (e SVG) Export(w io.Writer, page render.Page, _ registry.Options) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(e.Width, e.Height)
	canvas.Title(fmt.Sprintf("Heuristic %d", page.Index))
	if len(page.Paragraphs) > 0 {
		canvas.Desc(strings.Join(page.Paragraphs, "\n"))
	}

	sc := page.Scene
	canvas.Rect(0, 0, e.Width, e.Height, "fill:"+sc.BaseColor)

	for _, el := range sc.Elements {
		cx := int(el.Left / 100 * float64(e.Width))
		cy := int(el.Top / 100 * float64(e.Height))
		side := max(int(float64(e.Unit)*el.Scale*render.DepthScale(sc.Perspective, el.Depth)), 1)

		canvas.Gtransform(fmt.Sprintf("translate(%d,%d) rotate(%.2f)", cx, cy, el.Rotation))
		canvas.Rect(-side/2, -side/2, side, side,
			fmt.Sprintf("fill:%s;fill-opacity:%.3f", el.Color, el.Opacity))
		canvas.Gend()
	}

	e.mountain(canvas, page)
	canvas.End()
	return ew.err
}

// mountain draws a two-tone peak centered on the canvas, raised by the
// mountain's bottom offset.
func (e SVG) mountain(canvas *svg.SVG, page render.Page) {
	m := page.Mountain
	base := e.Height - int(m.Bottom/100*float64(e.Height))
	half := e.Width / 4
	peak := base - e.Height/3
	mid := e.Width / 2

	canvas.Polygon(
		[]int{mid - half, mid, mid + half},
		[]int{base, peak, base},
		"fill:"+m.Dark,
	)
	canvas.Polygon(
		[]int{mid, mid + half/4, mid},
		[]int{peak, base - (base-peak)/3, base},
		fmt.Sprintf("fill:%s;fill-opacity:0.6", m.Light),
	)
	canvas.Polygon(
		[]int{0, e.Width, e.Width, 0},
		[]int{base, base, e.Height, e.Height},
		"fill:"+m.Dark,
	)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Package export writes pages in the formats offered by the export command.
// Each exporter registers itself with the registry on import.
package export

import (
	"github.com/vovakirdan/turtleshell/internal/registry"
	"github.com/vovakirdan/turtleshell/internal/render"
)

// Default page size for exporters that lay out terminal cells.
const (
	DefaultWidth  = 80
	DefaultHeight = 40
)

func init() {
	registry.Register("ansi", func() registry.Exporter { return ANSI{} })
	registry.Register("text", func() registry.Exporter { return Text{} })
	registry.Register("svg", func() registry.Exporter { return NewSVG() })
	registry.Register("yaml", func() registry.Exporter { return YAML{} })
}

// pageOptions fills in the default size.
func pageOptions(opts registry.Options) render.Options {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return render.Options{Width: w, Height: h}
}

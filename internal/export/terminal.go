package export

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/turtleshell/internal/registry"
	"github.com/vovakirdan/turtleshell/internal/render"
)

// ANSI writes the page with true-color escape sequences, regardless of
// whether w is a terminal.
type ANSI struct{}

func (ANSI) ID() string        { return "ansi" }
func (ANSI) Title() string     { return "ANSI (true color)" }
func (ANSI) Extension() string { return ".ans" }

func (ANSI) Export(w io.Writer, page render.Page, opts registry.Options) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	_, err := fmt.Fprintln(w, page.Render(r, pageOptions(opts)))
	return err
}

// Text writes the page without colors. Shape opacity shows through the
// shading runes.
type Text struct{}

func (Text) ID() string        { return "text" }
func (Text) Title() string     { return "Plain text" }
func (Text) Extension() string { return ".txt" }

func (Text) Export(w io.Writer, page render.Page, opts registry.Options) error {
	_, err := fmt.Fprintln(w, page.Plain(pageOptions(opts)))
	return err
}

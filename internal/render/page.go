package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/turtleshell/internal/content"
	"github.com/vovakirdan/turtleshell/internal/core"
	"github.com/vovakirdan/turtleshell/internal/scene"
)

// MinSkyHeight is the smallest sky drawn below the quote.
const MinSkyHeight = 8

// Page is everything shown for one heuristic index.
type Page struct {
	Index      int
	Paragraphs []string
	Nav        content.Nav
	Scene      scene.SceneResult
	Mountain   scene.Mountain
}

// NewPage resolves the index and generates its visuals.
// Indices without content fall back to home.
func NewPage(g *scene.Generator, index int, viewportMultiplier float64) Page {
	index = content.Resolve(index)
	paragraphs, _ := content.Paragraphs(index)
	return Page{
		Index:      index,
		Paragraphs: paragraphs,
		Nav:        content.Neighbours(index),
		Scene:      g.Generate(index, viewportMultiplier),
		Mountain:   g.Mountain(index),
	}
}

// Dark is the page's dark scheme color.
func (p Page) Dark() string {
	return scene.DarkColor(p.Index)
}

// Light is the page's light scheme color.
func (p Page) Light() string {
	return scene.LightColor(p.Index)
}

// Sky paints the sky, mountain and page path into a new screen of the given size.
func (p Page) Sky(width, height int) *core.Screen {
	s := core.NewScreen(width, height)
	PaintSky(s, s.Bounds(), p.Scene)
	PaintMountain(s, s.Bounds(), p.Mountain)

	// Page path on the top row, in whichever scheme color reads on the base.
	caption := core.Color(p.Light())
	if core.Luminance(core.Color(p.Scene.BaseColor)) > 0.5 {
		caption = core.Color(p.Dark())
	}
	s.DrawTextCentered(s.Bounds(), 0, content.Path(p.Index), caption)
	return s
}

// Options tweaks page rendering.
type Options struct {
	Width  int
	Height int // 0 sizes the sky to MinSkyHeight
	Footer string
}

// Render lays out the page: heading, navigation, quote panel, prev/next bar and sky.
func (p Page) Render(r *lipgloss.Renderer, opts Options) string {
	width := max(opts.Width, 20)
	dark := lipgloss.Color(p.Dark())
	light := lipgloss.Color(p.Light())

	title := r.NewStyle().Bold(true).Width(width).Render(content.Title)
	nav := r.NewStyle().Width(width).Render(navLine(r, p.Index, dark, light))

	number := ""
	if p.Index > 0 {
		number = r.NewStyle().Bold(true).Foreground(dark).Render(strconv.Itoa(p.Index))
	}

	quote := r.NewStyle().
		Background(dark).
		Foreground(light).
		Padding(1, 2).
		Width(width).
		Render(strings.Join(p.Paragraphs, "\n\n"))

	bar := r.NewStyle().
		Background(dark).
		Foreground(light).
		Width(width).
		Render(prevNextLine(p.Nav, width))

	blocks := []string{title, nav, number, quote, bar}
	footer := ""
	if opts.Footer != "" {
		footer = r.NewStyle().Faint(true).Width(width).Render(opts.Footer)
	}

	used := 0
	if footer != "" {
		used += lipgloss.Height(footer)
	}
	for _, b := range blocks {
		used += lipgloss.Height(b)
	}
	skyH := MinSkyHeight
	if opts.Height > 0 {
		skyH = max(opts.Height-used, MinSkyHeight)
	}

	blocks = append(blocks, ScreenString(p.Sky(width, skyH), r))
	if footer != "" {
		blocks = append(blocks, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// Plain renders the page without any escape sequences.
func (p Page) Plain(opts Options) string {
	return ansi.Strip(p.Render(lipgloss.DefaultRenderer(), opts))
}

// navLine lists Home and every index, highlighting the current one.
func navLine(r *lipgloss.Renderer, current int, dark, light lipgloss.Color) string {
	active := r.NewStyle().Background(dark).Foreground(light).Bold(true)
	normal := r.NewStyle()

	items := make([]string, 0, content.Count()+1)
	label := "Home"
	if current == 0 {
		items = append(items, active.Render(label))
	} else {
		items = append(items, normal.Render(label))
	}
	for i := 1; i <= content.Count(); i++ {
		label = strconv.Itoa(i)
		if i == current {
			items = append(items, active.Render(label))
		} else {
			items = append(items, normal.Render(label))
		}
	}
	return strings.Join(items, " ")
}

// prevNextLine puts "Previous" on the left and "Next" on the right.
func prevNextLine(nav content.Nav, width int) string {
	prev := ""
	if nav.HasPrev {
		prev = fmt.Sprintf("‹ Previous (%s)", content.Path(nav.Prev))
	}
	next := ""
	if nav.HasNext {
		next = fmt.Sprintf("Next (%s) ›", content.Path(nav.Next))
	}
	gap := width - lipgloss.Width(prev) - lipgloss.Width(next)
	if gap < 1 {
		gap = 1
	}
	return prev + strings.Repeat(" ", gap) + next
}

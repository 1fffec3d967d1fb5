package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtleshell/internal/core"
)

// cellStyle is the lipgloss style for a cell's color pair.
func cellStyle(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	style := r.NewStyle()
	if fg != core.NoColor {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != core.NoColor {
		style = style.Background(lipgloss.Color(bg))
	}
	return style
}

// ScreenString converts a Screen to a styled string.
// Adjacent cells sharing colors are grouped to keep escape sequences short.
func ScreenString(s *core.Screen, r *lipgloss.Renderer) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	type colorPair struct{ fg, bg core.Color }
	styles := make(map[colorPair]lipgloss.Style)

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)
			pair := colorPair{start.FG, start.BG}

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.FG != pair.fg || cell.BG != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = cellStyle(r, pair.fg, pair.bg)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

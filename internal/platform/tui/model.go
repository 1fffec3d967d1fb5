// Package tui provides the Bubble Tea browser for heuristics, both for local
// terminals and for SSH sessions served via Wish.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtleshell/internal/content"
	"github.com/vovakirdan/turtleshell/internal/render"
	"github.com/vovakirdan/turtleshell/internal/scene"
	"github.com/vovakirdan/turtleshell/internal/storage"
)

// VisitLog records page views and reports aggregate stats.
// *storage.Store satisfies it.
type VisitLog interface {
	RecordVisit(viewer string, heuristic int) (int64, error)
	TopHeuristics(limit int) ([]storage.HeuristicStat, error)
}

// Options configures a browser Model.
type Options struct {
	Generator      *scene.Generator
	Visits         VisitLog           // nil disables history
	Renderer       *lipgloss.Renderer // nil uses the default renderer
	Viewer         string
	Start          int
	Width          int
	Height         int
	ReferenceWidth int
}

// Model is the Bubble Tea model for browsing heuristics.
type Model struct {
	gen      *scene.Generator
	visits   VisitLog
	renderer *lipgloss.Renderer
	viewer   string
	refWidth int

	page   render.Page
	width  int
	height int

	keys    KeyMap
	help    help.Model
	stats   StatsModel
	inStats bool

	jumping bool
	jump    string

	lastErr  error
	quitting bool
}

// NewModel creates a browser positioned at opts.Start.
func NewModel(opts Options) Model {
	gen := opts.Generator
	if gen == nil {
		gen = scene.NewGenerator(scene.DefaultParams())
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.Width = opts.Width

	m := Model{
		gen:      gen,
		visits:   opts.Visits,
		renderer: r,
		viewer:   opts.Viewer,
		refWidth: opts.ReferenceWidth,
		width:    opts.Width,
		height:   opts.Height,
		keys:     DefaultKeyMap(),
		help:     h,
	}
	m.page = render.NewPage(m.gen, opts.Start, m.viewport())
	m.stats = NewStatsModel(r, opts.Width, opts.Height)
	return m
}

// Init records the first page view.
func (m Model) Init() tea.Cmd {
	return m.recordCmd(m.page.Index)
}

// visitedMsg reports the outcome of recording a visit.
type visitedMsg struct{ err error }

// recordCmd stores a visit off the update loop.
func (m Model) recordCmd(index int) tea.Cmd {
	if m.visits == nil {
		return nil
	}
	visits, viewer := m.visits, m.viewer
	return func() tea.Msg {
		_, err := visits.RecordVisit(viewer, index)
		return visitedMsg{err: err}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.page = render.NewPage(m.gen, m.page.Index, m.viewport())
		m.stats = m.stats.Resize(msg.Width, msg.Height)
		return m, nil

	case visitedMsg:
		m.lastErr = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.inStats {
			return m.updateStats(msg)
		}
		if m.jumping {
			return m.updateJump(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on a page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Prev):
		if m.page.Nav.HasPrev {
			return m.goTo(m.page.Nav.Prev)
		}

	case key.Matches(msg, m.keys.Next):
		if m.page.Nav.HasNext {
			return m.goTo(m.page.Nav.Next)
		}

	case key.Matches(msg, m.keys.Advance):
		return m.goTo(content.Advance(m.page.Index))

	case key.Matches(msg, m.keys.Home):
		return m.goTo(0)

	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jump = ""

	case key.Matches(msg, m.keys.Stats):
		m.inStats = true
		m.stats = m.stats.Load(m.visits)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateJump collects digits for a "go to" and commits on enter.
func (m Model) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.jumping = false
		return m.goTo(content.ParseIndex(m.jump))
	case tea.KeyEsc:
		m.jumping = false
	case tea.KeyBackspace:
		if m.jump != "" {
			m.jump = m.jump[:len(m.jump)-1]
		}
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.jump) < 4 {
				m.jump += string(r)
			}
		}
	}
	return m, nil
}

// updateStats forwards keys to the stats table until the user leaves it.
func (m Model) updateStats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Stats):
		m.inStats = false
		return m, nil
	case key.Matches(msg, m.keys.Advance):
		if index, ok := m.stats.Selected(); ok {
			m.inStats = false
			return m.goTo(index)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.stats, cmd = m.stats.Update(msg)
	return m, cmd
}

// goTo regenerates the page for index and records the visit.
func (m Model) goTo(index int) (tea.Model, tea.Cmd) {
	m.page = render.NewPage(m.gen, index, m.viewport())
	return m, m.recordCmd(m.page.Index)
}

// viewport scales shapes with the terminal width.
func (m Model) viewport() float64 {
	return scene.ViewportMultiplier(m.width, m.refWidth)
}

// Index returns the heuristic currently shown.
func (m Model) Index() int {
	return m.page.Index
}

// Page returns the page currently shown.
func (m Model) Page() render.Page {
	return m.page
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.inStats {
		return m.stats.View(m.help)
	}

	return m.page.Render(m.renderer, render.Options{
		Width:  m.width,
		Height: m.height,
		Footer: m.footer(),
	})
}

// footer shows the jump prompt, errors or the help bar.
func (m Model) footer() string {
	if m.jumping {
		return "go to: /" + m.jump + "_  (enter to open, esc to cancel, 1-" + strconv.Itoa(content.Count()) + ")"
	}
	var parts []string
	if m.lastErr != nil {
		parts = append(parts, "history unavailable: "+m.lastErr.Error())
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

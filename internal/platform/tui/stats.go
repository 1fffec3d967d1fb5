package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/turtleshell/internal/content"
	"github.com/vovakirdan/turtleshell/internal/storage"
)

// Stats layout constants
const (
	maxStats      = 50 // Max heuristics listed
	statsChrome   = 8  // Rows used by title, borders and help
	minTableRows  = 3
	excerptMinLen = 10
)

// StatsKeyMap defines the key bindings for the stats view.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.Back, k.Quit}}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "tab"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel lists the most visited heuristics in a table.
type StatsModel struct {
	renderer *lipgloss.Renderer
	stats    []storage.HeuristicStat
	table    table.Model
	keys     StatsKeyMap
	width    int
	height   int
	loadErr  error
}

// NewStatsModel creates an empty stats view.
func NewStatsModel(r *lipgloss.Renderer, width, height int) StatsModel {
	m := StatsModel{
		renderer: r,
		keys:     DefaultStatsKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table with columns sized to the width.
func (m StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Visits", Width: 7},
		{Title: "Viewers", Width: 8},
		{Title: "Last visit", Width: 13},
		{Title: "Heuristic", Width: 30},
	}

	fixed := 4 + 7 + 8 + 13 + 2*len(columns) + 4
	if rest := m.width - fixed; rest > columns[4].Width {
		columns[4].Width = rest
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-statsChrome, minTableRows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Load fetches fresh stats. A nil log leaves the table empty.
func (m StatsModel) Load(visits VisitLog) StatsModel {
	m.stats = nil
	m.loadErr = nil
	if visits != nil {
		m.stats, m.loadErr = visits.TopHeuristics(maxStats)
	}
	m.updateRows()
	return m
}

// Resize rebuilds the table for a new terminal size.
func (m StatsModel) Resize(width, height int) StatsModel {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateRows()
	return m
}

// updateRows copies the stats into the table.
func (m *StatsModel) updateRows() {
	rows := make([]table.Row, len(m.stats))
	for i, st := range m.stats {
		last := ""
		if !st.LastVisited.IsZero() {
			last = st.LastVisited.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			strconv.Itoa(st.Heuristic),
			strconv.Itoa(st.Visits),
			strconv.Itoa(st.Viewers),
			last,
			excerpt(st.Heuristic, m.table.Columns()[4].Width),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// excerpt is the first line of a page's text, cut to width.
func excerpt(index, width int) string {
	if index == 0 {
		return "Home"
	}
	paragraphs, ok := content.Paragraphs(index)
	if !ok || len(paragraphs) == 0 {
		return ""
	}
	text := paragraphs[0]
	width = max(width, excerptMinLen)
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return text
}

// Selected returns the heuristic under the cursor.
func (m StatsModel) Selected() (int, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.stats) {
		return 0, false
	}
	return m.stats[i].Heuristic, true
}

// Update passes navigation keys to the table.
func (m StatsModel) Update(msg tea.Msg) (StatsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View(h help.Model) string {
	var b strings.Builder

	titleStyle := m.renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render("MOST VISITED"))
	b.WriteString("\n")

	tableStyle := m.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.tableContent()))
	b.WriteString("\n")

	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(h.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an explanation of why it is empty.
func (m StatsModel) tableContent() string {
	emptyStyle := m.renderer.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render(fmt.Sprintf("Could not load history:\n%v", m.loadErr))
	case len(m.stats) == 0:
		return emptyStyle.Render("No visits recorded yet.\nBrowse a few heuristics first!")
	}
	return m.table.View()
}

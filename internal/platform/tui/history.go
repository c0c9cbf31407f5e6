package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/galactix/internal/storage"
)

// History layout constants
const (
	maxRuns       = 100 // Max runs to load
	historyChrome = 9   // Rows used by title, stats, borders and help
)

// HistoryKeyMap defines the key bindings for the run history.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists the runs of this session.
type HistoryModel struct {
	store  *storage.Store
	runs   []storage.Run
	stats  storage.Stats
	recent bool // Order by time instead of score
	err    error
	table  table.Model
	help   help.Model
	keys   HistoryKeyMap
	width  int
	height int
	closed bool
	quit   bool
}

// NewHistoryModel creates a history view and loads the runs.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Result", Width: 10},
		{Title: "Ticks", Width: 7},
		{Title: "Time", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
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

// load reads runs and stats from the store.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.err = nil, storage.Stats{}, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.recent {
		m.runs, m.err = m.store.RecentRuns(maxRuns)
	} else {
		m.runs, m.err = m.store.TopRuns(maxRuns)
	}
	if m.err == nil {
		m.stats, m.err = m.store.Stats()
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "crashed"
		if r.Outcome == storage.OutcomeVictory {
			result = "victory"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			result,
			fmt.Sprintf("%d", r.Distance),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Closed reports whether the user left the history view.
func (m HistoryModel) Closed() bool {
	return m.closed
}

// Quitting reports whether the user asked to exit the program.
func (m HistoryModel) Quitting() bool {
	return m.quit
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.closed = true
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			m.recent = !m.recent
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RUN HISTORY - best runs"
	if m.recent {
		title = "RUN HISTORY - latest runs"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	statStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("runs %d   victories %d   best %d   avg %.1f   best level %d",
		m.stats.Runs, m.stats.Victories, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
	b.WriteString(statStyle.Render(centerText(stats, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an explanatory message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("History unavailable:\n" + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs yet this session.\nLaunch the cat to set a score!")
	}
	return m.table.View()
}

// centerText pads text to center it within width. Multi-line text is
// centered as a block.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

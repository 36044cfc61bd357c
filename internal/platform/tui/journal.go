package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// maxJournalRows is how many sessions the browser loads.
const maxJournalRows = 200

// JournalKeyMap defines the key bindings for the session browser.
type JournalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultJournalKeyMap returns default key bindings.
func DefaultJournalKeyMap() JournalKeyMap {
	return JournalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// JournalModel is the Bubble Tea model for browsing the session journal.
type JournalModel struct {
	store    *storage.Store
	sessions []storage.SessionRecord
	stats    *storage.SessionStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     JournalKeyMap
	width    int
	height   int
	quitting bool
}

// NewJournalModel creates a new session browser.
func NewJournalModel(store *storage.Store, width, height int) JournalModel {
	m := JournalModel{
		store:  store,
		keys:   DefaultJournalKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *JournalModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Started", Width: 14},
		{Title: "User", Width: 12},
		{Title: "Preset", Width: 8},
		{Title: "Disks", Width: 5},
		{Title: "Restarts", Width: 8},
		{Title: "Duration", Width: 10},
	}
	if m.width > 90 {
		columns = append(columns, table.Column{Title: "Remote", Width: 21})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats, and help
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

// load reads sessions and stats from the store.
func (m *JournalModel) load() {
	m.sessions, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		m.sessions, m.loadErr = m.store.RecentSessions(maxJournalRows)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded sessions.
func (m *JournalModel) updateTableRows() {
	wide := len(m.table.Columns()) > 6
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		row := table.Row{
			s.StartedAt.Local().Format("Jan 02 15:04"),
			s.User,
			presetLabel(s.Preset),
			fmt.Sprintf("%d", s.Disks),
			fmt.Sprintf("%d", s.Restarts),
			FormatDuration(s),
		}
		if wide {
			row = append(row, s.Remote)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func presetLabel(p string) string {
	if p == "" {
		return "custom"
	}
	return p
}

// FormatDuration renders a session's length, or "playing" while it runs.
func FormatDuration(s storage.SessionRecord) string {
	if s.EndedAt.IsZero() {
		return "playing"
	}
	return s.Duration().Round(time.Second).String()
}

// Init initializes the browser.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reload):
			m.load()
			return m, nil
		}

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

// View renders the browser.
func (m JournalModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("SESSION JOURNAL"), m.width))
	b.WriteString("\n\n")

	if m.stats != nil {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(centerText(statsStyle.Render(FormatStats(m.stats)), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m JournalModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("No journal available.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.sessions) == 0:
		return emptyStyle.Render("No sessions recorded yet.\nRun `hanoi play` to start one!")
	}
	return m.table.View()
}

// FormatStats renders journal totals on one line.
func FormatStats(s *storage.SessionStats) string {
	return formatStatsAt(s, time.Now())
}

func formatStatsAt(s *storage.SessionStats, now time.Time) string {
	line := fmt.Sprintf("%s sessions  |  %s players  |  %s restarts  |  %.1f disks avg",
		humanize.Comma(int64(s.Sessions)), humanize.Comma(int64(s.Users)),
		humanize.Comma(int64(s.TotalRestarts)), s.AvgDisks)
	if !s.LastPlayed.IsZero() {
		line += "  |  last played " + humanize.RelTime(s.LastPlayed, now, "ago", "from now")
	}
	return line
}

// RunJournal runs the session browser.
func RunJournal(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewJournalModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

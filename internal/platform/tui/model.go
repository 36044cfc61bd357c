package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
)

// footerRows is the height of the help line under the board.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game of Hanoi.
type Model struct {
	game       *hanoi.Game
	session    *Session
	logger     *log.Logger
	screen     *core.Screen
	styles     styleCache
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and fits the
// board to cfg's screen, leaving room for the help line.
func NewModel(game *hanoi.Game, session *Session, logger *log.Logger, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW
	game.Resize(cfg.ScreenW, boardRows(cfg.ScreenH))

	return Model{
		game:       game,
		session:    session,
		logger:     logger,
		screen:     core.NewScreen(cfg.ScreenW, boardRows(cfg.ScreenH)),
		styles:     styleCache{},
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// boardRows is the screen height left for the board.
func boardRows(h int) int {
	return core.Max(h-footerRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, m.gameState.SettingsOpen, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize relays the board out for the new size. The puzzle itself
// is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardRows(msg.Height))
	m.help.Width = msg.Width

	m.game.Resize(msg.Width, boardRows(msg.Height))
	m.gameState = m.game.State()
	return m, nil
}

// handleTick applies the input collected since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Drop.Result != hanoi.DropNone {
		m.logger.Debug("drop",
			"result", result.Drop.Result,
			"disk", result.Drop.Weight,
			"from", result.Drop.From,
			"to", result.Drop.To,
			"stacks", m.game.Board().Snapshot().Stacks,
		)
	}
	if result.Restarted {
		m.logger.Debug("restart", "restarts", m.gameState.Restarts)
		if m.session != nil {
			m.session.SetRestarts(m.gameState.Restarts)
		}
	}

	if m.gameState.Exit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var keys help.KeyMap = boardHelp{m.keyMapper.Keys()}
	if m.gameState.SettingsOpen {
		keys = overlayHelp{m.keyMapper.Keys()}
	}
	return renderScreen(m.screen, m.styles) + "\n" + footerStyle.Render(m.help.View(keys))
}

// IsQuitting returns true if the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays one game in the local terminal and journals it.
func Run(game *hanoi.Game, session *Session, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, session, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if session != nil {
		session.SetRestarts(game.State().Restarts)
		session.Finish()
	}
	return err
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hanoi/host_key.
	HostKeyPath string

	// DBPath is the path to the session journal.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the per-session tick rate.
	TickRate int

	// Hanoi is the puzzle configuration every session starts from.
	Hanoi config.HanoiConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.hanoi/sessions.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
		Hanoi:       config.DefaultHanoiConfig(),
	}
}

// sessionKey stores the journal *Session in the SSH context.
type sessionKey struct{}

// SSHServer wraps a Wish SSH server. Every connection plays its own puzzle;
// only the journal is shared.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if err := cfg.Hanoi.Validate(); err != nil {
		return nil, err
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open session journal", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hanoi", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.journalMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sess, _ := sshSession.Context().Value(sessionKey{}).(*Session)

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(s.config.Hanoi, "", sess, s.logger, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// journalMiddleware logs SSH session events and closes the journal entry
// once the program has ended, however the connection went away.
func (s *SSHServer) journalMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		remote := sshSession.RemoteAddr().String()
		sess := NewSession(s.store, s.logger, sshSession.User(), remote)
		sshSession.Context().SetValue(sessionKey{}, sess)

		s.logger.Info("session started", "user", sshSession.User(), "remote", remote)
		next(sshSession)
		sess.Finish()
		s.logger.Info("session ended", "user", sshSession.User(), "remote", remote)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel runs the difficulty menu, then the game.
// This is the top-level model used for SSH sessions and `play --menu`.
type SessionModel struct {
	base     config.HanoiConfig
	session  *Session
	logger   *log.Logger
	config   core.RuntimeConfig
	menu     MenuModel
	game     *Model
	err      error
	quitting bool
}

// NewSessionModel creates a new session model. A non-empty preset skips
// the menu.
func NewSessionModel(base config.HanoiConfig, preset config.DifficultyPreset, session *Session, logger *log.Logger, cfg core.RuntimeConfig) SessionModel {
	m := SessionModel{
		base:    base,
		session: session,
		logger:  logger,
		config:  cfg,
		menu:    NewMenuModel(base.Disks, cfg),
	}
	if config.IsKnownPreset(preset) {
		m.startGame(MenuItem{Preset: preset, Disks: config.DisksForPreset(preset)})
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while picking a difficulty.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		if !m.startGame(*selected) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.game.Init()
	}

	return m, cmd
}

// startGame builds the puzzle for item and journals its start.
func (m *SessionModel) startGame(item MenuItem) bool {
	cfg := m.base
	cfg.Disks = item.Disks

	game, err := hanoi.New(cfg, m.config)
	if err != nil {
		m.logger.Error("cannot start game", "disks", item.Disks, "error", err)
		m.err = err
		return false
	}

	if m.session != nil {
		m.session.Begin(string(item.Preset), item.Disks)
	}
	model := NewModel(game, m.session, m.logger, m.config)
	m.game = &model
	return true
}

// updateGame handles updates while playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session early, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the menu and game in the local terminal.
func RunSession(base config.HanoiConfig, session *Session, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewSessionModel(base, "", session, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if session != nil {
		session.Finish()
	}
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}

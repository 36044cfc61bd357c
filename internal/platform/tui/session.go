package tui

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Session tracks one player's visit for the journal. It is shared between
// the Bubble Tea model, which reports progress, and whoever owns the
// connection, which finishes it.
type Session struct {
	store  *storage.Store
	logger *log.Logger
	user   string
	remote string

	mu       sync.Mutex
	id       string
	started  bool
	finished bool
	restarts int
}

// NewSession creates a session for user. store may be nil, in which case
// nothing is journaled but the session still gets an ID for logging.
func NewSession(store *storage.Store, logger *log.Logger, user, remote string) *Session {
	return &Session{store: store, logger: logger, user: user, remote: remote}
}

// Begin journals the start of a game. Only the first call has an effect.
func (s *Session) Begin(preset string, disks int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	s.id = uuid.NewString()

	if s.store != nil {
		rec, err := s.store.StartSession(s.user, s.remote, preset, disks)
		if err != nil {
			s.logger.Warn("could not journal session", "user", s.user, "error", err)
		} else {
			s.id = rec.ID
		}
	}
	s.logger.Info("game started", "session", s.id, "user", s.user, "preset", preset, "disks", disks)
}

// ID returns the session ID, or "" before Begin.
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// SetRestarts records the current restart count.
func (s *Session) SetRestarts(n int) {
	s.mu.Lock()
	s.restarts = n
	s.mu.Unlock()
}

// Finish stamps the session's end. It is safe to call more than once and
// does nothing if no game was started.
func (s *Session) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started || s.finished {
		return
	}
	s.finished = true

	if s.store != nil {
		if err := s.store.EndSession(s.id, s.restarts); err != nil {
			s.logger.Warn("could not close session", "session", s.id, "error", err)
		}
	}
	s.logger.Info("game ended", "session", s.id, "user", s.user, "restarts", s.restarts)
}

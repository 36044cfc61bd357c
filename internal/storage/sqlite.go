// Package storage provides the SQLite session journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSessionNotFound is returned when a session ID is not in the journal.
var ErrSessionNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// SessionRecord is one played session: who played, how many disks, how
// often the puzzle was restarted, and when.
type SessionRecord struct {
	ID        string // UUID
	User      string // Local user or SSH user
	Remote    string // SSH remote address, empty for local play
	Preset    string // Difficulty preset, empty when disks were set directly
	Disks     int
	Restarts  int
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is running
}

// Duration returns how long the session lasted, or 0 while it is running.
func (r SessionRecord) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			user TEXT NOT NULL,
			remote TEXT NOT NULL DEFAULT '',
			preset TEXT NOT NULL DEFAULT '',
			disks INTEGER NOT NULL,
			restarts INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession journals a new running session and returns it with a fresh
// ID and start time.
func (s *Store) StartSession(user, remote, preset string, disks int) (SessionRecord, error) {
	rec := SessionRecord{
		ID:        uuid.NewString(),
		User:      user,
		Remote:    remote,
		Preset:    preset,
		Disks:     disks,
		StartedAt: s.now().UTC(),
	}

	_, err := s.db.Exec(
		`INSERT INTO sessions (id, user, remote, preset, disks, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.User, rec.Remote, rec.Preset, rec.Disks, formatTime(rec.StartedAt),
	)
	if err != nil {
		return SessionRecord{}, fmt.Errorf("storage: cannot start session: %w", err)
	}
	return rec, nil
}

// EndSession stamps the end time and final restart count of a session.
func (s *Store) EndSession(id string, restarts int) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET restarts = ?, ended_at = ? WHERE id = ?",
		restarts, formatTime(s.now().UTC()), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// SessionByID retrieves one session.
func (s *Store) SessionByID(id string) (SessionRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, user, remote, preset, disks, restarts, started_at, ended_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	)

	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionRecord{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return SessionRecord{}, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return rec, nil
}

// RecentSessions retrieves the most recently started sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user, remote, preset, disks, restarts, started_at, ended_at
		 FROM sessions
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearSessions deletes every journaled session.
func (s *Store) ClearSessions() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// SessionStats contains aggregated journal statistics.
type SessionStats struct {
	Sessions      int
	Users         int
	TotalRestarts int
	AvgDisks      float64
	LastPlayed    time.Time
}

// Stats retrieves aggregated statistics over the whole journal.
func (s *Store) Stats() (*SessionStats, error) {
	stats := &SessionStats{}
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT user), COALESCE(SUM(restarts), 0),
		        COALESCE(AVG(disks), 0), MAX(started_at)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.Users, &stats.TotalRestarts, &stats.AvgDisks, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}

	if last.Valid {
		stats.LastPlayed = parseTime(last.String)
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(r rowScanner) (SessionRecord, error) {
	var rec SessionRecord
	var started string
	var ended sql.NullString

	if err := r.Scan(
		&rec.ID,
		&rec.User,
		&rec.Remote,
		&rec.Preset,
		&rec.Disks,
		&rec.Restarts,
		&started,
		&ended,
	); err != nil {
		return SessionRecord{}, err
	}

	rec.StartedAt = parseTime(started)
	if ended.Valid {
		rec.EndedAt = parseTime(ended.String)
	}
	return rec, nil
}

// timeLayout is fixed width so stored UTC times sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
		return t
	}
	return time.Time{}
}

package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

func TestJournalWithoutStore(t *testing.T) {
	m := NewJournalModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No journal available") {
		t.Error("Expected placeholder without a store")
	}
}

func TestJournalListsSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if !strings.Contains(NewJournalModel(store, 80, 24).View(), "No sessions recorded yet") {
		t.Error("Expected empty-journal message")
	}

	rec, _ := store.StartSession("alice", "", "easy", 3)
	store.EndSession(rec.ID, 1)
	store.StartSession("bob", "", "", 4)

	m := NewJournalModel(store, 100, 30)
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("Expected 2 rows, got %d", got)
	}
	view := m.View()
	for _, want := range []string{"alice", "bob", "custom", "playing", "2 sessions"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view", want)
		}
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(JournalModel).quitting || cmd == nil {
		t.Error("Expected q to quit the browser")
	}
}

func TestJournalResize(t *testing.T) {
	m := NewJournalModel(nil, 60, 20)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(JournalModel)
	if len(m.table.Columns()) != 7 {
		t.Errorf("Expected remote column on wide screens, got %d columns", len(m.table.Columns()))
	}
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	running := storage.SessionRecord{StartedAt: start}
	if got := FormatDuration(running); got != "playing" {
		t.Errorf("Expected playing, got %q", got)
	}
	done := storage.SessionRecord{StartedAt: start, EndedAt: start.Add(95 * time.Second)}
	if got := FormatDuration(done); got != "1m35s" {
		t.Errorf("Expected 1m35s, got %q", got)
	}
}

func TestFormatStats(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		stats storage.SessionStats
		want  []string
	}{
		{
			name:  "empty journal",
			stats: storage.SessionStats{},
			want:  []string{"0 sessions", "0 players", "0.0 disks avg"},
		},
		{
			name: "busy journal",
			stats: storage.SessionStats{
				Sessions: 1200, Users: 3, TotalRestarts: 45, AvgDisks: 4.5,
				LastPlayed: now.Add(-2 * time.Hour),
			},
			want: []string{"1,200 sessions", "3 players", "45 restarts", "4.5 disks avg", "last played 2 hours ago"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatStatsAt(&tc.stats, now)
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("formatStatsAt() = %q, missing %q", got, w)
				}
			}
			if tc.stats.LastPlayed.IsZero() && strings.Contains(got, "last played") {
				t.Errorf("formatStatsAt() = %q, should omit last played", got)
			}
		})
	}
}

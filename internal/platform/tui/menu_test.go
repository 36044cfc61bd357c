package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func TestMenuItems(t *testing.T) {
	items := MenuItems(5)
	if len(items) != 3 {
		t.Fatalf("Expected 3 presets, got %d", len(items))
	}
	if items[0].Title != "Easy" || items[0].Disks != 3 {
		t.Errorf("Unexpected first item %+v", items[0])
	}

	custom := MenuItems(4)
	if len(custom) != 4 || custom[3].Preset != "" || custom[3].Disks != 4 {
		t.Errorf("Expected trailing custom item, got %+v", custom)
	}
}

func TestMenuSelect(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	m := NewMenuModel(5, rc)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil || sel.Preset != config.DifficultyHard {
		t.Errorf("Expected hard selected, got %+v", sel)
	}
}

func TestSessionModelMenuToGame(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	sess := NewSession(nil, testLogger(), "dave", "")
	m := NewSessionModel(config.DefaultHanoiConfig(), "", sess, testLogger(), rc)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(SessionModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)

	if m.game == nil || cmd == nil {
		t.Fatal("Expected game started with a tick command")
	}
	if got := m.game.game.Disks(); got != 3 {
		t.Errorf("Expected easy game with 3 disks, got %d", got)
	}
	if sess.ID() == "" {
		t.Error("Expected session begun")
	}
}

func TestSessionModelPresetSkipsMenu(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	m := NewSessionModel(config.DefaultHanoiConfig(), config.DifficultyHard, nil, testLogger(), rc)

	if m.game == nil || m.game.game.Disks() != 7 {
		t.Error("Expected hard game started without the menu")
	}
}

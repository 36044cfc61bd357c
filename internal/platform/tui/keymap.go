package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Settings  key.Binding
	Restart   key.Binding
	CycleBg   key.Binding
	CycleDisk key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Settings: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "settings"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		CycleBg: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "background"),
		),
		CycleDisk: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "disk color"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// boardHelp lists the bindings that matter on the board.
type boardHelp struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Settings, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k boardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// overlayHelp lists the bindings that matter while settings are open.
type overlayHelp struct{ KeyMap }

// ShortHelp returns key bindings for the short help view.
func (k overlayHelp) ShortHelp() []key.Binding {
	back := k.Settings
	back.SetHelp("esc", "close")
	return []key.Binding{back, k.Restart, k.CycleBg, k.CycleDisk, k.ForceQuit}
}

// FullHelp returns key bindings for the full help view.
func (k overlayHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// settingsOpen selects the overlay bindings: palette keys and restart only
// work there, and q only quits from the board.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, settingsOpen bool) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.ForceQuit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Settings):
		return core.ActionSettings, false
	}

	if !settingsOpen {
		if key.Matches(msg, km.keys.Quit) {
			return core.ActionQuit, true
		}
		return core.ActionNone, false
	}

	switch {
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.CycleBg):
		return core.ActionCycleBg, false
	case key.Matches(msg, km.keys.CycleDisk):
		return core.ActionCycleDisk, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, settingsOpen bool, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, settingsOpen)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records left-button activity in an input frame.
// Releases without a button count as left-button releases, since many
// terminals do not report which button went up.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	p := core.Pt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Press(p)
		}
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			frame.Release(p)
		}
	case tea.MouseActionMotion:
		frame.Move(p)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}

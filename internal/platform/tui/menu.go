package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Preset config.DifficultyPreset // Empty for the configured disk count
	Title  string
	Disks  int
}

// MenuItems lists the presets followed by the configured disk count when
// it matches none of them.
func MenuItems(configured int) []MenuItem {
	var items []MenuItem
	custom := true
	for _, p := range config.Presets() {
		n := config.DisksForPreset(p)
		if n == configured {
			custom = false
		}
		items = append(items, MenuItem{
			Preset: p,
			Title:  strings.ToUpper(string(p[:1])) + string(p[1:]),
			Disks:  n,
		})
	}
	if custom {
		items = append(items, MenuItem{Title: "Custom", Disks: configured})
	}
	return items
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user picks a difficulty
}

// NewMenuModel creates a new menu model. The cursor starts on the item
// matching the configured disk count.
func NewMenuModel(configured int, cfg core.RuntimeConfig) MenuModel {
	items := MenuItems(configured)
	cursor := 0
	for i, it := range items {
		if it.Disks == configured {
			cursor = i
			break
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T O W E R   O F   H A N O I"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-8s %d disks", item.Title, item.Disks)
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-8s %d disks", item.Title, item.Disks))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Play  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

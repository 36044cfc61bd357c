package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// cellStyle is the key of a run of identically colored cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles. A renderer owns one, so
// concurrent SSH sessions never share it.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(k cellStyle) lipgloss.Style {
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !k.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if !k.bg.IsDefault() {
		st = st.Background(lipgloss.Color(k.bg.Hex()))
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, styleCache{})
}

func renderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}

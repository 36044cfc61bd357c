package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blankCell is what Clear leaves behind.
var blankCell = Cell{Rune: ' '}

// Surface is the drawing target games render into. It is deliberately
// small: games draw filled rectangles and text, the platform decides how
// cells become terminal output.
type Surface interface {
	Width() int
	Height() int
	Fill(bg Color)
	FillRect(r Rect, c Color, radius int)
	DrawText(x, y int, text string)
	DrawTextColor(x, y int, text string, fg Color)
	DrawTextCentered(y int, text string)
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to a space in the default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Fill paints the whole screen with the given background color.
func (s *Screen) Fill(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Bg: bg}
		}
	}
}

// Set places a rune at the given position, keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextColor writes a string like DrawText and sets the foreground
// color of every cell it touches. Backgrounds are left as they are.
func (s *Screen) DrawTextColor(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			s.cells[y][x+i].Rune = r
			s.cells[y][x+i].Fg = fg
		}
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillRect paints a rectangle with background color c.
// With a positive radius the end columns are drawn as half blocks so the
// rectangle reads as rounded; the cells behind those halves keep their
// existing background.
func (s *Screen) FillRect(r Rect, c Color, radius int) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if !s.inBounds(x, y) {
				continue
			}
			cell := s.cells[y][x]
			switch {
			case radius > 0 && r.W > 2 && x == r.X:
				cell = Cell{Rune: '▐', Fg: c, Bg: cell.Bg}
			case radius > 0 && r.W > 2 && x == r.Right()-1:
				cell = Cell{Rune: '▌', Fg: c, Bg: cell.Bg}
			default:
				cell = Cell{Rune: ' ', Bg: c}
			}
			s.cells[y][x] = cell
		}
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

package hanoi

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Construction errors.
var (
	ErrNoDisks         = errors.New("hanoi: board needs at least one disk")
	ErrInvalidWeight   = errors.New("hanoi: disk weight must be positive")
	ErrDuplicateWeight = errors.New("hanoi: disk weights must be unique")
)

// Palette supplies the colors the board is drawn with.
type Palette interface {
	Background() core.Color
	RodColor() core.Color
	// DiskColor returns the color of the i-th disk in construction
	// order, heaviest first.
	DiskColor(i int) core.Color
}

// Board owns the pegs and disks of one puzzle and runs the drag
// interaction over them.
type Board struct {
	layout      Layout
	pegs        [PegCount]*Peg
	disks       []*Disk // Heaviest first
	drag        *DragController
	dropPending bool
}

// Weights returns 1..n, the weights of a standard n-disk puzzle.
func Weights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = i + 1
	}
	return w
}

// NewBoard builds a board with one disk per weight, all stacked on the
// first peg.
func NewBoard(l Layout, weights []int) (*Board, error) {
	if len(weights) == 0 {
		return nil, ErrNoDisks
	}
	sorted := slices.Clone(weights)
	slices.SortFunc(sorted, func(a, b int) int { return b - a })
	for i, w := range sorted {
		if w <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWeight, w)
		}
		if i > 0 && sorted[i-1] == w {
			return nil, fmt.Errorf("%w: %d appears twice", ErrDuplicateWeight, w)
		}
	}

	b := &Board{layout: l}
	for i := range b.pegs {
		b.pegs[i] = newPeg(i, l)
	}
	for _, w := range sorted {
		b.disks = append(b.disks, newDisk(w, l.DiskWidth(w), l.LayerHeight))
	}
	b.drag = NewDragController(b.pegs[:])
	b.Restart()
	return b, nil
}

// Restart moves every disk back onto the first peg, heaviest at the bottom.
// Every peg is reset before any disk is re-added.
func (b *Board) Restart() {
	b.drag.Cancel()
	b.dropPending = false
	for _, p := range b.pegs {
		p.Reset()
	}
	for _, d := range b.disks {
		b.pegs[0].TryPlace(d)
	}
}

// Update runs one frame of the drag interaction.
//
// down starts a drag when the pointer is on a top disk, a drag in progress
// follows pointer, and up marks the drop as pending; a pending drop is
// resolved before Update returns.
func (b *Board) Update(pointer core.Point, down, up bool) Drop {
	if down && b.drag.State() == DragIdle {
		b.drag.Press(pointer)
	}
	if b.drag.State() != DragDragging {
		return noDrop
	}

	b.drag.Move(pointer)
	if up {
		b.dropPending = true
	}
	if !b.dropPending {
		return noDrop
	}
	b.dropPending = false
	return b.drag.Release()
}

// CancelDrag snaps a dragged disk back without resolving a drop.
func (b *Board) CancelDrag() {
	b.drag.Cancel()
	b.dropPending = false
}

// Relayout moves the pegs to a new layout and re-seats every resting disk.
// Stack membership does not change; a dragged disk stays under the pointer.
func (b *Board) Relayout(l Layout) {
	var held core.Point
	active := b.drag.Active()
	if active != nil {
		held = active.position
	}

	b.layout = l
	for _, d := range b.disks {
		d.width = l.DiskWidth(d.weight)
		d.height = l.LayerHeight
	}
	for _, p := range b.pegs {
		p.applyLayout(l)
		p.restack()
	}

	if active != nil {
		active.FollowPointer(held)
	}
}

// Render draws the rods, then the resting disks, then the dragged disk.
func (b *Board) Render(s core.Surface, pal Palette) {
	s.Fill(pal.Background())

	for _, p := range b.pegs {
		s.FillRect(p.rod, pal.RodColor(), 0)
	}

	active := b.drag.Active()
	for i, d := range b.disks {
		if d == active {
			continue
		}
		s.FillRect(d.Bounds(), pal.DiskColor(i), 1)
	}
	if active != nil {
		s.FillRect(active.Bounds(), pal.DiskColor(slices.Index(b.disks, active)), 1)
	}
}

// Layout returns the current geometry.
func (b *Board) Layout() Layout {
	return b.layout
}

// Pegs returns the pegs in left-to-right order.
func (b *Board) Pegs() []*Peg {
	return b.pegs[:]
}

// Peg returns the i-th peg from the left.
func (b *Board) Peg(i int) *Peg {
	return b.pegs[i]
}

// Disks returns every disk, heaviest first.
func (b *Board) Disks() []*Disk {
	return slices.Clone(b.disks)
}

// Dragging reports whether a disk is following the pointer.
func (b *Board) Dragging() bool {
	return b.drag.State() == DragDragging
}

// ActiveDisk returns the dragged disk, or nil.
func (b *Board) ActiveDisk() *Disk {
	return b.drag.Active()
}

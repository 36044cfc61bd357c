package hanoi

import (
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// DragState is the state of the drag-and-drop interaction.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// String returns a human-readable name for the state.
func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// DropResult is the outcome of releasing a dragged disk.
type DropResult int

const (
	DropNone     DropResult = iota // Nothing was being dragged
	DropAccepted                   // The disk moved to (or back onto) a peg
	DropRejected                   // The target peg refused the disk
	DropNoTarget                   // The disk was released away from every peg
)

// String returns a human-readable name for the result.
func (r DropResult) String() string {
	switch r {
	case DropNone:
		return "none"
	case DropAccepted:
		return "accepted"
	case DropRejected:
		return "rejected"
	case DropNoTarget:
		return "no-target"
	default:
		return "unknown"
	}
}

// Drop describes one resolved release.
type Drop struct {
	Result DropResult
	Weight int // Weight of the released disk, 0 for DropNone
	From   int // Peg index the disk was lifted from, -1 if none
	To     int // Peg index the disk was released over, -1 if none
}

var noDrop = Drop{Result: DropNone, From: -1, To: -1}

// DragController drives disk selection, live movement and drop resolution.
// Pegs are searched in the order given, which is the left-to-right board
// order, so the first matching peg wins any tie.
type DragController struct {
	pegs   []*Peg
	active *Disk
	from   *Peg
}

// NewDragController creates an idle controller over pegs.
func NewDragController(pegs []*Peg) *DragController {
	return &DragController{pegs: pegs}
}

// State returns the current interaction state.
func (c *DragController) State() DragState {
	if c.active != nil {
		return DragDragging
	}
	return DragIdle
}

// Active returns the disk being dragged, or nil.
func (c *DragController) Active() *Disk {
	return c.active
}

// Press starts a drag if p hits the top disk of some peg.
// Buried disks are never candidates. A press while dragging is ignored;
// the drag in progress still resolves on the next release.
func (c *DragController) Press(p core.Point) bool {
	if c.active != nil {
		return false
	}
	for _, peg := range c.pegs {
		top := peg.TopDisk()
		if top != nil && top.Bounds().Contains(p) {
			c.active = top
			c.from = peg
			return true
		}
	}
	return false
}

// Move makes the dragged disk follow the pointer.
func (c *DragController) Move(p core.Point) {
	if c.active != nil {
		c.active.FollowPointer(p)
	}
}

// Release resolves the drag: the first peg whose catchment contains the
// disk gets a TryPlace; a refusal or a miss snaps the disk back.
// The controller is always idle afterwards.
func (c *DragController) Release() Drop {
	if c.active == nil {
		return noDrop
	}

	d := c.active
	drop := Drop{Result: DropNoTarget, Weight: d.weight, From: c.from.index, To: -1}
	for _, peg := range c.pegs {
		if !peg.ContainsPoint(d.position) {
			continue
		}
		drop.To = peg.index
		if peg.TryPlace(d) {
			drop.Result = DropAccepted
		} else {
			drop.Result = DropRejected
		}
		break
	}
	if drop.Result != DropAccepted {
		d.SnapBack()
	}

	c.active = nil
	c.from = nil
	return drop
}

// Cancel abandons a drag, snapping the disk back. Used on restart.
func (c *DragController) Cancel() {
	if c.active != nil {
		c.active.SnapBack()
	}
	c.active = nil
	c.from = nil
}

package hanoi

import (
	"slices"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Peg is a vertical stack slot. stack[0] is the top disk, the only one
// that can move; weights strictly increase toward the bottom.
type Peg struct {
	index       int
	anchor      core.Point // Cell the bottom disk rests on
	layerHeight int
	rod         core.Rect
	catchment   core.Rect
	stack       []*Disk
}

func newPeg(index int, l Layout) *Peg {
	p := &Peg{index: index}
	p.applyLayout(l)
	return p
}

// applyLayout updates geometry only; membership is untouched.
func (p *Peg) applyLayout(l Layout) {
	p.anchor = l.Anchors[p.index]
	p.layerHeight = l.LayerHeight
	p.rod = l.Rod(p.index)
	p.catchment = l.Catchment(p.index)
}

// Index returns the peg's left-to-right position, starting at 0.
func (p *Peg) Index() int {
	return p.index
}

// Anchor returns the cell the bottom disk rests on.
func (p *Peg) Anchor() core.Point {
	return p.anchor
}

// Rod returns the cells the rod is drawn in.
func (p *Peg) Rod() core.Rect {
	return p.rod
}

// Catchment returns the drop-target region around the rod.
func (p *Peg) Catchment() core.Rect {
	return p.catchment
}

// Len returns the number of disks on the peg.
func (p *Peg) Len() int {
	return len(p.stack)
}

// Disks returns the stack from top to bottom. The slice is a copy.
func (p *Peg) Disks() []*Disk {
	return slices.Clone(p.stack)
}

// Weights returns the disk weights from top to bottom.
func (p *Peg) Weights() []int {
	w := make([]int, len(p.stack))
	for i, d := range p.stack {
		w[i] = d.weight
	}
	return w
}

// TopDisk returns the movable disk, or nil when the peg is empty.
func (p *Peg) TopDisk() *Disk {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[0]
}

// ContainsPoint reports whether pt falls inside the peg's catchment.
func (p *Peg) ContainsPoint(pt core.Point) bool {
	return p.catchment.Contains(pt)
}

// slot returns the resting position of a disk with depth disks below it.
func (p *Peg) slot(depth int) core.Point {
	return core.Pt(p.anchor.X, p.anchor.Y-depth*p.layerHeight)
}

// TryPlace puts d on top of the peg if the weight rule allows it.
//
// The rule: the peg is empty or its top disk is strictly heavier than d.
// Re-placing the peg's own top disk always succeeds and leaves the stack
// as it was. On failure nothing is changed; snapping the disk back is the
// caller's job.
func (p *Peg) TryPlace(d *Disk) bool {
	reseat := d.owner == p
	if reseat {
		if p.TopDisk() != d {
			return false
		}
	} else if top := p.TopDisk(); top != nil && top.weight <= d.weight {
		return false
	}

	depth := len(p.stack)
	if reseat {
		depth--
	}
	d.CommitPosition(p.slot(depth))

	if !reseat {
		if d.owner != nil {
			d.owner.detach(d)
		}
		p.stack = slices.Insert(p.stack, 0, d)
	}
	d.owner = p
	return true
}

// detach removes d from the stack. Only the top disk is ever in flight,
// so d is at index 0.
func (p *Peg) detach(d *Disk) {
	if i := slices.Index(p.stack, d); i >= 0 {
		p.stack = slices.Delete(p.stack, i, i+1)
	}
}

// Reset empties the stack and clears the owner of every removed disk.
// Restart depends on this: a disk still pointing at its old peg would be
// treated as a re-placement and never inserted into its new stack.
func (p *Peg) Reset() {
	for _, d := range p.stack {
		d.owner = nil
	}
	clear(p.stack)
	p.stack = p.stack[:0]
}

// restack recommits every resting disk to its slot, used after a relayout.
func (p *Peg) restack() {
	for i, d := range p.stack {
		d.CommitPosition(p.slot(len(p.stack) - 1 - i))
	}
}

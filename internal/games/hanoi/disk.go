package hanoi

import (
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// Disk is a draggable, weighted game piece.
//
// position is the cell under the disk's center column on its bottom row.
// lastValid is where the disk last rested legally and is where a rejected
// drop snaps back to.
type Disk struct {
	weight    int
	width     int
	height    int
	position  core.Point
	lastValid core.Point
	owner     *Peg
}

func newDisk(weight, width, height int) *Disk {
	return &Disk{weight: weight, width: width, height: height}
}

// Weight returns the disk's size rank. Lighter disks sit on heavier ones.
func (d *Disk) Weight() int {
	return d.weight
}

// Position returns where the disk is currently drawn.
func (d *Disk) Position() core.Point {
	return d.position
}

// LastValidPosition returns where the disk last rested on a peg.
func (d *Disk) LastValidPosition() core.Point {
	return d.lastValid
}

// Owner returns the peg whose stack holds the disk, or nil.
func (d *Disk) Owner() *Peg {
	return d.owner
}

// FollowPointer moves the disk to p without touching stack membership.
func (d *Disk) FollowPointer(p core.Point) {
	d.position = p
}

// SnapBack returns the disk to its last legal resting place.
func (d *Disk) SnapBack() {
	d.position = d.lastValid
}

// CommitPosition places the disk at p and records p as legal.
func (d *Disk) CommitPosition(p core.Point) {
	d.position = p
	d.lastValid = p
}

// Bounds returns the cells the disk covers at its current position.
func (d *Disk) Bounds() core.Rect {
	return core.NewRect(d.position.X-d.width/2, d.position.Y-(d.height-1), d.width, d.height)
}

// String implements fmt.Stringer.
func (d *Disk) String() string {
	return fmt.Sprintf("disk(%d)", d.weight)
}

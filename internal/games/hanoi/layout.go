package hanoi

import (
	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// PegCount is the number of pegs on the board.
const PegCount = 3

// hudRows is the space kept free below the board for the help line.
const hudRows = 2

// Layout is the board geometry for a given screen size.
type Layout struct {
	config.LayoutConfig

	Anchors   [PegCount]core.Point
	RodHeight int
	disks     int
}

// NewLayout centers the pegs on a screenW x screenH surface.
func NewLayout(lc config.LayoutConfig, disks, screenW, screenH int) Layout {
	l := Layout{
		LayoutConfig: lc,
		RodHeight:    disks*lc.LayerHeight + lc.RodHeadroom,
		disks:        disks,
	}

	// Drop targets must never overlap or tie-breaking becomes visible.
	if l.CatchWidth > l.PegSpacing {
		l.CatchWidth = l.PegSpacing
	}

	cx := screenW / 2
	baseY := (screenH-hudRows)/2 + l.RodHeight/2
	for i := range l.Anchors {
		l.Anchors[i] = core.Pt(cx+(i-1)*l.PegSpacing, baseY)
	}
	return l
}

// DiskWidth returns the width in columns of a disk of the given weight.
func (l Layout) DiskWidth(weight int) int {
	return l.DiskBaseWidth + l.DiskWidthStep*weight
}

// Rod returns the rod rectangle of peg i.
func (l Layout) Rod(i int) core.Rect {
	a := l.Anchors[i]
	return core.NewRect(a.X, a.Y-l.RodHeight+1, 1, l.RodHeight)
}

// Catchment returns the drop-target region of peg i. It is bottom aligned
// with the rod base plus one row of slack and reaches CatchHeadroom rows
// above the rod.
func (l Layout) Catchment(i int) core.Rect {
	a := l.Anchors[i]
	h := l.RodHeight + l.CatchHeadroom + 1
	return core.NewRect(a.X-l.CatchWidth/2, a.Y-l.RodHeight-l.CatchHeadroom+1, l.CatchWidth, h)
}

// Size returns the minimum screen size the layout needs.
func (l Layout) Size() (w, h int) {
	w = 2*l.PegSpacing + l.DiskWidth(l.disks) + 2
	h = l.RodHeight + l.CatchHeadroom + hudRows + 2
	return w, h
}

// Fits reports whether the board can be drawn on a screenW x screenH surface.
func (l Layout) Fits(screenW, screenH int) bool {
	w, h := l.Size()
	return screenW >= w && screenH >= h
}

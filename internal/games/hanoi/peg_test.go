package hanoi

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// testLayout is the default geometry on an 80x24 terminal.
// With 3 disks the anchors are (16,13), (40,13) and (64,13).
func testLayout(disks int) Layout {
	return NewLayout(config.DefaultHanoiConfig().Layout, disks, 80, 24)
}

func testDisk(l Layout, weight int) *Disk {
	return newDisk(weight, l.DiskWidth(weight), l.LayerHeight)
}

// checkMonotonic asserts that weights strictly increase from top to bottom.
func checkMonotonic(t *testing.T, p *Peg) {
	t.Helper()
	for i := 0; i+1 < len(p.stack); i++ {
		if p.stack[i].weight >= p.stack[i+1].weight {
			t.Fatalf("peg %d not monotonic: %v", p.index, p.Weights())
		}
	}
}

func TestTryPlaceEmptyPeg(t *testing.T) {
	l := testLayout(3)
	p := newPeg(0, l)
	d := testDisk(l, 3)

	if !p.TryPlace(d) {
		t.Fatal("Expected placement on empty peg to succeed")
	}
	if d.Owner() != p {
		t.Error("Expected owner to be set")
	}
	if d.Position() != p.Anchor() {
		t.Errorf("Expected disk at anchor %v, got %v", p.Anchor(), d.Position())
	}
	if d.LastValidPosition() != d.Position() {
		t.Error("Expected lastValid to match committed position")
	}
}

func TestTryPlaceStacksUpward(t *testing.T) {
	l := testLayout(3)
	p := newPeg(0, l)

	for _, w := range []int{3, 2, 1} {
		if !p.TryPlace(testDisk(l, w)) {
			t.Fatalf("Expected disk %d to be placed", w)
		}
	}

	if got := p.Weights(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Expected stack [1 2 3], got %v", got)
	}
	checkMonotonic(t, p)

	for i, d := range p.Disks() {
		depth := p.Len() - 1 - i
		want := core.Pt(p.Anchor().X, p.Anchor().Y-depth*l.LayerHeight)
		if d.Position() != want {
			t.Errorf("Disk %d: expected position %v, got %v", d.Weight(), want, d.Position())
		}
	}
}

func TestTryPlaceRule(t *testing.T) {
	tests := []struct {
		name  string
		top   int
		place int
		want  bool
	}{
		{"lighter on heavier", 3, 1, true},
		{"heavier on lighter", 2, 5, false},
		{"adjacent lighter", 2, 1, true},
		{"adjacent heavier", 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := testLayout(5)
			src := newPeg(0, l)
			dst := newPeg(1, l)

			bottom := testDisk(l, tt.top)
			dst.TryPlace(bottom)
			d := testDisk(l, tt.place)
			src.TryPlace(d)

			if got := dst.TryPlace(d); got != tt.want {
				t.Errorf("TryPlace() = %v, want %v", got, tt.want)
			}
			checkMonotonic(t, dst)
		})
	}
}

// Disk weight 2 alone on peg 1; placing weight 5 there must fail and
// leave everything untouched until the caller snaps back.
func TestRejectionPreservesState(t *testing.T) {
	l := testLayout(5)
	p0 := newPeg(0, l)
	p1 := newPeg(1, l)

	d5 := testDisk(l, 5)
	d2 := testDisk(l, 2)
	p0.TryPlace(d5)
	p1.TryPlace(d2)

	dragged := core.Pt(p1.Anchor().X, p1.Anchor().Y-3)
	d5.FollowPointer(dragged)

	if p1.TryPlace(d5) {
		t.Fatal("Expected placing 5 on 2 to fail")
	}
	if got := p1.Weights(); !slices.Equal(got, []int{2}) {
		t.Errorf("Expected peg 1 unchanged [2], got %v", got)
	}
	if got := p0.Weights(); !slices.Equal(got, []int{5}) {
		t.Errorf("Expected peg 0 unchanged [5], got %v", got)
	}
	if d5.Owner() != p0 {
		t.Error("Expected owner unchanged")
	}
	if d5.Position() != dragged {
		t.Errorf("Expected position untouched until snap back, got %v", d5.Position())
	}

	d5.SnapBack()
	if d5.Position() != p0.Anchor() {
		t.Errorf("Expected snap back to %v, got %v", p0.Anchor(), d5.Position())
	}
}

func TestTryPlaceIdempotentReseat(t *testing.T) {
	l := testLayout(3)
	p := newPeg(0, l)
	d3, d1 := testDisk(l, 3), testDisk(l, 1)
	p.TryPlace(d3)
	p.TryPlace(d1)
	rest := d1.Position()

	d1.FollowPointer(core.Pt(rest.X+4, rest.Y-2))
	for i := 0; i < 3; i++ {
		if !p.TryPlace(d1) {
			t.Fatalf("Reseat %d: expected success", i)
		}
	}

	if got := p.Weights(); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("Expected stack [1 3] without duplicates, got %v", got)
	}
	if d1.Position() != rest {
		t.Errorf("Expected disk back at %v, got %v", rest, d1.Position())
	}
}

func TestTryPlaceRejectsBuriedOwnDisk(t *testing.T) {
	l := testLayout(3)
	p := newPeg(0, l)
	d3, d1 := testDisk(l, 3), testDisk(l, 1)
	p.TryPlace(d3)
	p.TryPlace(d1)

	if p.TryPlace(d3) {
		t.Error("Expected buried disk to be rejected")
	}
	if got := p.Weights(); !slices.Equal(got, []int{1, 3}) {
		t.Errorf("Expected stack unchanged, got %v", got)
	}
}

func TestTryPlaceMovesBetweenPegs(t *testing.T) {
	l := testLayout(3)
	p0, p1 := newPeg(0, l), newPeg(1, l)
	d2, d1 := testDisk(l, 2), testDisk(l, 1)
	p0.TryPlace(d2)
	p0.TryPlace(d1)

	if !p1.TryPlace(d1) {
		t.Fatal("Expected move to empty peg to succeed")
	}
	if got := p0.Weights(); !slices.Equal(got, []int{2}) {
		t.Errorf("Expected source [2], got %v", got)
	}
	if got := p1.Weights(); !slices.Equal(got, []int{1}) {
		t.Errorf("Expected target [1], got %v", got)
	}
	if d1.Owner() != p1 {
		t.Error("Expected owner to follow the disk")
	}
}

func TestTopDisk(t *testing.T) {
	l := testLayout(3)
	p := newPeg(0, l)
	if p.TopDisk() != nil {
		t.Error("Expected nil top on empty peg")
	}
	d := testDisk(l, 2)
	p.TryPlace(d)
	if p.TopDisk() != d {
		t.Error("Expected placed disk on top")
	}
}

func TestContainsPoint(t *testing.T) {
	l := testLayout(3)
	p := newPeg(1, l)
	a := p.Anchor()

	tests := []struct {
		name string
		pt   core.Point
		want bool
	}{
		{"anchor", a, true},
		{"rod top", core.Pt(a.X, a.Y-l.RodHeight+1), true},
		{"above rod within headroom", core.Pt(a.X, a.Y-l.RodHeight-l.CatchHeadroom+1), true},
		{"too high", core.Pt(a.X, a.Y-l.RodHeight-l.CatchHeadroom), false},
		{"one row below base", core.Pt(a.X, a.Y+1), true},
		{"two rows below base", core.Pt(a.X, a.Y+2), false},
		{"left edge", core.Pt(a.X-l.CatchWidth/2, a.Y), true},
		{"left of catchment", core.Pt(a.X-l.CatchWidth/2-1, a.Y), false},
		{"wider than rod", core.Pt(a.X+3, a.Y-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPegReset(t *testing.T) {
	l := testLayout(3)
	p := newPeg(0, l)
	disks := []*Disk{testDisk(l, 3), testDisk(l, 2)}
	for _, d := range disks {
		p.TryPlace(d)
	}

	p.Reset()

	if p.Len() != 0 {
		t.Errorf("Expected empty stack, got %v", p.Weights())
	}
	for _, d := range disks {
		if d.Owner() != nil {
			t.Errorf("Expected %v owner cleared", d)
		}
	}
	// A reset disk must be insertable again rather than treated as a reseat.
	if !p.TryPlace(disks[0]) || p.Len() != 1 {
		t.Error("Expected re-insert after reset")
	}
}

package hanoi

import (
	"errors"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func newTestBoard(t *testing.T, n int) *Board {
	t.Helper()
	b, err := NewBoard(testLayout(n), Weights(n))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

// drag presses on the top disk of peg from and releases at pt.
func drag(b *Board, from int, pt core.Point) Drop {
	top := b.Peg(from).TopDisk()
	b.Update(top.Position(), true, false)
	b.Update(pt, false, false)
	return b.Update(pt, false, true)
}

// move drags the top disk of peg from onto peg to.
func move(b *Board, from, to int) Drop {
	return drag(b, from, b.Peg(to).Anchor())
}

// checkInvariants asserts weight monotonicity and single ownership.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	for _, p := range b.Pegs() {
		checkMonotonic(t, p)
	}
	for _, d := range b.Disks() {
		if d == b.ActiveDisk() {
			continue
		}
		holders := 0
		for _, p := range b.Pegs() {
			if slices.Contains(p.Disks(), d) {
				holders++
				if d.Owner() != p {
					t.Fatalf("%v held by peg %d but owned by %v", d, p.Index(), d.Owner())
				}
			}
		}
		if holders != 1 {
			t.Fatalf("%v held by %d pegs", d, holders)
		}
	}
}

func checkStacks(t *testing.T, b *Board, want [PegCount][]int) {
	t.Helper()
	got := b.Snapshot().Stacks
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("Peg %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestNewBoardErrors(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
		wantErr error
	}{
		{"empty", nil, ErrNoDisks},
		{"zero weight", []int{1, 0}, ErrInvalidWeight},
		{"negative weight", []int{-2}, ErrInvalidWeight},
		{"duplicate", []int{1, 2, 2}, ErrDuplicateWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoard(testLayout(3), tt.weights)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewBoardUnsortedWeights(t *testing.T) {
	b, err := NewBoard(testLayout(3), []int{2, 3, 1})
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	checkStacks(t, b, [PegCount][]int{{1, 2, 3}, nil, nil})
}

func TestRestartDeterminism(t *testing.T) {
	b := newTestBoard(t, 5)
	checkStacks(t, b, [PegCount][]int{{1, 2, 3, 4, 5}, nil, nil})

	move(b, 0, 1)
	move(b, 0, 2)
	move(b, 1, 2)

	b.Restart()
	checkStacks(t, b, [PegCount][]int{{1, 2, 3, 4, 5}, nil, nil})
	checkInvariants(t, b)

	first := b.Snapshot()
	b.Restart()
	if !slices.Equal(first.Stacks[0], b.Snapshot().Stacks[0]) {
		t.Error("Expected repeated restarts to agree")
	}
	for i, d := range b.Peg(0).Disks() {
		want := core.Pt(b.Peg(0).Anchor().X, b.Peg(0).Anchor().Y-(4-i))
		if d.Position() != want {
			t.Errorf("Disk %d: expected %v, got %v", d.Weight(), want, d.Position())
		}
	}
}

func TestDragTopDiskToEmptyPeg(t *testing.T) {
	b := newTestBoard(t, 3)

	drop := move(b, 0, 1)

	if drop.Result != DropAccepted {
		t.Fatalf("Expected accepted drop, got %v", drop.Result)
	}
	if drop.Weight != 1 || drop.From != 0 || drop.To != 1 {
		t.Errorf("Unexpected drop %+v", drop)
	}
	checkStacks(t, b, [PegCount][]int{{2, 3}, {1}, nil})
	checkInvariants(t, b)
	if b.Dragging() {
		t.Error("Expected controller idle after drop")
	}
}

func TestDropRejectedSnapsBack(t *testing.T) {
	b := newTestBoard(t, 3)
	move(b, 0, 1)
	d2 := b.Peg(0).TopDisk()
	rest := d2.Position()

	drop := move(b, 0, 1)

	if drop.Result != DropRejected || drop.To != 1 {
		t.Fatalf("Expected rejection on peg 1, got %+v", drop)
	}
	if d2.Position() != rest {
		t.Errorf("Expected snap back to %v, got %v", rest, d2.Position())
	}
	checkStacks(t, b, [PegCount][]int{{2, 3}, {1}, nil})
	checkInvariants(t, b)
}

func TestDropOutsideCatchmentsSnapsBack(t *testing.T) {
	b := newTestBoard(t, 3)
	d1 := b.Peg(0).TopDisk()
	rest := d1.Position()

	drop := drag(b, 0, core.Pt(0, 0))

	if drop.Result != DropNoTarget || drop.To != -1 {
		t.Fatalf("Expected no target, got %+v", drop)
	}
	if d1.Position() != rest {
		t.Errorf("Expected snap back to %v, got %v", rest, d1.Position())
	}
	checkStacks(t, b, [PegCount][]int{{1, 2, 3}, nil, nil})
}

func TestDropOnOwnPegIsAccepted(t *testing.T) {
	b := newTestBoard(t, 3)
	d1 := b.Peg(0).TopDisk()
	rest := d1.Position()

	drop := drag(b, 0, core.Pt(rest.X+2, rest.Y-3))

	if drop.Result != DropAccepted || drop.To != 0 {
		t.Fatalf("Expected reseat on peg 0, got %+v", drop)
	}
	if d1.Position() != rest {
		t.Errorf("Expected disk back at %v, got %v", rest, d1.Position())
	}
	checkStacks(t, b, [PegCount][]int{{1, 2, 3}, nil, nil})
}

func TestDraggedDiskFollowsPointer(t *testing.T) {
	b := newTestBoard(t, 3)
	top := b.Peg(0).TopDisk()

	b.Update(top.Position(), true, false)
	for _, p := range []core.Point{core.Pt(20, 5), core.Pt(30, 6), core.Pt(41, 9)} {
		b.Update(p, false, false)
		if top.Position() != p {
			t.Errorf("Expected disk at %v, got %v", p, top.Position())
		}
		if top.Owner() != b.Peg(0) {
			t.Error("Expected membership unchanged while dragging")
		}
	}
}

func TestPressOnEmptySpaceDoesNothing(t *testing.T) {
	b := newTestBoard(t, 3)
	drop := b.Update(core.Pt(1, 1), true, false)
	if b.Dragging() || drop.Result != DropNone {
		t.Error("Expected no drag from a press on empty space")
	}
}

func TestRestartMidDrag(t *testing.T) {
	b := newTestBoard(t, 3)
	move(b, 0, 2)
	top := b.Peg(0).TopDisk()
	b.Update(top.Position(), true, false)
	b.Update(core.Pt(40, 4), false, false)

	b.Restart()

	if b.Dragging() || b.ActiveDisk() != nil {
		t.Fatal("Expected no active disk after restart")
	}
	checkStacks(t, b, [PegCount][]int{{1, 2, 3}, nil, nil})
	checkInvariants(t, b)

	// A later release must not resolve a stale drop.
	if drop := b.Update(core.Pt(40, 13), false, true); drop.Result != DropNone {
		t.Errorf("Expected no drop after restart, got %v", drop.Result)
	}
}

func TestSolveThreeDisks(t *testing.T) {
	b := newTestBoard(t, 3)
	moves := [][2]int{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}

	for i, m := range moves {
		if drop := move(b, m[0], m[1]); drop.Result != DropAccepted {
			t.Fatalf("Move %d %v: expected accepted, got %v", i, m, drop.Result)
		}
		checkInvariants(t, b)
	}
	checkStacks(t, b, [PegCount][]int{nil, nil, {1, 2, 3}})
}

func TestRelayoutPreservesMembership(t *testing.T) {
	b := newTestBoard(t, 3)
	move(b, 0, 1)
	move(b, 0, 2)
	before := b.Snapshot()

	l := NewLayout(b.Layout().LayoutConfig, 3, 120, 40)
	b.Relayout(l)

	checkStacks(t, b, before.Stacks)
	checkInvariants(t, b)
	for i, p := range b.Pegs() {
		if p.Anchor() != l.Anchors[i] {
			t.Errorf("Peg %d: expected anchor %v, got %v", i, l.Anchors[i], p.Anchor())
		}
		for j, d := range p.Disks() {
			want := p.slot(p.Len() - 1 - j)
			if d.Position() != want || d.LastValidPosition() != want {
				t.Errorf("%v: expected at %v, got %v", d, want, d.Position())
			}
		}
	}
}

func TestRelayoutKeepsDraggedDiskUnderPointer(t *testing.T) {
	b := newTestBoard(t, 3)
	top := b.Peg(0).TopDisk()
	b.Update(top.Position(), true, false)
	held := core.Pt(33, 5)
	b.Update(held, false, false)

	b.Relayout(NewLayout(b.Layout().LayoutConfig, 3, 100, 30))

	if !b.Dragging() || top.Position() != held {
		t.Errorf("Expected dragged disk to stay at %v, got %v", held, top.Position())
	}
	if top.LastValidPosition() != b.Peg(0).slot(2) {
		t.Error("Expected snap-back target to follow the relayout")
	}
}

func TestRenderDrawsDisksOverRods(t *testing.T) {
	b := newTestBoard(t, 3)
	st, err := NewSettings(testPalette())
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	s := core.NewScreen(80, 24)

	b.Render(s, st)

	if got := s.GetCell(0, 0).Bg; got != st.Background() {
		t.Errorf("Expected background %v, got %v", st.Background(), got)
	}
	rodTop := b.Peg(1).Rod()
	if got := s.GetCell(rodTop.X, rodTop.Y).Bg; got != st.RodColor() {
		t.Errorf("Expected rod color %v, got %v", st.RodColor(), got)
	}
	// Heaviest disk has index 0, so it uses the unlightened color.
	bottom := b.Peg(0).Anchor()
	if got := s.GetCell(bottom.X, bottom.Y).Bg; got != st.DiskColor(0) {
		t.Errorf("Expected heaviest disk color %v, got %v", st.DiskColor(0), got)
	}
	top := b.Peg(0).TopDisk().Position()
	if got := s.GetCell(top.X, top.Y).Bg; got != st.DiskColor(2) {
		t.Errorf("Expected lightest disk color %v, got %v", st.DiskColor(2), got)
	}
}

func TestRenderDraggedDiskOnTop(t *testing.T) {
	b := newTestBoard(t, 3)
	st, _ := NewSettings(testPalette())
	s := core.NewScreen(80, 24)

	// Hold the lightest disk over the base of the heaviest one.
	top := b.Peg(0).TopDisk()
	b.Update(top.Position(), true, false)
	b.Update(b.Peg(0).Anchor(), false, false)
	b.Render(s, st)

	a := b.Peg(0).Anchor()
	if got := s.GetCell(a.X, a.Y).Bg; got != st.DiskColor(2) {
		t.Errorf("Expected dragged disk drawn last, got %v", got)
	}
}

package hanoi

// Snapshot captures the board for tests and logging.
type Snapshot struct {
	Stacks      [PegCount][]int // Weights per peg, top first
	Active      int             // Weight of the dragged disk, 0 if none
	DropPending bool
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for i, p := range b.pegs {
		s.Stacks[i] = p.Weights()
	}
	if a := b.drag.Active(); a != nil {
		s.Active = a.weight
	}
	s.DropPending = b.dropPending
	return s
}

package solver

import "github.com/puzzle-framework/gridlock/pkg/sudoku"

// snapshot captures the full cell sequence at a branch point, the index of
// the cell branched on, and the value guessed there. Snapshots are taken
// only for guesses, never for forced assignments.
type snapshot struct {
	cells []sudoku.Cell
	index int
	value int
}

// history is the last-in-first-out stack of snapshots owned by one solve
// call. Each entry is popped exactly once, to undo a wrong guess.
type history []snapshot

func (h *history) push(s snapshot) {
	*h = append(*h, s)
}

func (h *history) pop() (snapshot, bool) {
	old := *h
	if len(old) == 0 {
		return snapshot{}, false
	}
	s := old[len(old)-1]
	*h = old[:len(old)-1]
	return s, true
}

func (h history) depth() int {
	return len(h)
}

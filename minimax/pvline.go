package minimax

import (
	"fmt"
	"strings"

	"github.com/harshisingh777/tic-tac-toe/board"
)

// PVLine is a principal variation: the best move at the root followed by
// the best line of play after it.
type PVLine struct {
	Moves []int
	score int
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Update the principal variation line with a new best move,
// and a new line of best play after the best move.
func (pvLine *PVLine) Update(move int, newPVLine PVLine, score int) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, move)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

// BestMove returns the first move of the line. ok is false when the line is
// empty, which only happens for a terminal position.
func (pvLine PVLine) BestMove() (move int, ok bool) {
	if len(pvLine.Moves) == 0 {
		return 0, false
	}
	return pvLine.Moves[0], true
}

func (pvLine PVLine) Score() int {
	return pvLine.score
}

// Describe renders the line with 1-based positions, alternating players
// starting with toMove.
func (pvLine PVLine) Describe(toMove board.Cell) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PV; val %d\n", pvLine.score)
	p := toMove
	for i, m := range pvLine.Moves {
		fmt.Fprintf(&sb, "%d: %s %d\n", i+1, p, m+1)
		p = p.Opponent()
	}
	return sb.String()
}

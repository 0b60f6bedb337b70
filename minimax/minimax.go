// Package minimax solves tic-tac-toe positions by exhaustive game-tree
// search. There is no pruning and no heuristic: every line is searched to the
// end of the game, and a position is worth 1, 0 or -1 for the side being
// solved for.
package minimax

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/harshisingh777/tic-tac-toe/board"
)

const (
	WinScore  = 1
	DrawScore = 0
	LossScore = -1

	// Bounds outside the range of any real score.
	worstMaxScore = -2
	worstMinScore = 2
)

var (
	// ErrNoBestMove means the search found no move in a position that still
	// had empty cells. Correct rules never produce this.
	ErrNoBestMove = errors.New("search returned no move")
	ErrNoMoves    = errors.New("no available moves")
)

// Solver searches positions for a single solving player. A Solver is not
// safe for concurrent use.
type Solver struct {
	solvingPlayer board.Cell
	nodes         uint64
}

func NewSolver() *Solver {
	return &Solver{}
}

// Nodes returns the number of positions visited by the last search.
func (s *Solver) Nodes() uint64 {
	return s.nodes
}

// Solve searches b with toMove on turn and returns the game-theoretic score
// for maximizingFor together with the principal variation. b is mutated
// during the search and restored before Solve returns.
func (s *Solver) Solve(b *board.Board, toMove, maximizingFor board.Cell) (int, PVLine) {
	s.solvingPlayer = maximizingFor
	s.nodes = 0
	pv := PVLine{}
	score := s.minimax(b, toMove, &pv)
	pv.score = score
	log.Debug().Str("board", b.String()).Str("toMove", toMove.String()).
		Int("score", score).Uint64("nodes", s.nodes).Msg("solved")
	return score, pv
}

func (s *Solver) minimax(b *board.Board, toMove board.Cell, pv *PVLine) int {
	s.nodes++
	winner := b.Winner()
	switch {
	case winner == s.solvingPlayer:
		return WinScore
	case winner == s.solvingPlayer.Opponent():
		return LossScore
	case b.IsDraw():
		return DrawScore
	}

	maximizing := toMove == s.solvingPlayer
	bestScore := worstMinScore
	if maximizing {
		bestScore = worstMaxScore
	}
	childPV := PVLine{}
	for _, m := range b.AvailableMoves() {
		b[m] = toMove
		childPV.Clear()
		score := s.minimax(b, toMove.Opponent(), &childPV)
		b[m] = board.Empty
		// Only a strict improvement replaces the best move, so the first
		// move found keeps ties.
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			pv.Update(m, childPV, score)
		}
	}
	return bestScore
}

// BestMove returns the best move for player on a private copy of b. If the
// search yields no move, the error is logged and the first available move is
// returned alongside ErrNoBestMove. A board with no empty cells returns
// ErrNoMoves.
func (s *Solver) BestMove(b board.Board, player board.Cell) (int, error) {
	_, pv := s.Solve(&b, player, player)
	if m, ok := pv.BestMove(); ok {
		return m, nil
	}
	moves := b.AvailableMoves()
	log.Error().Str("board", b.String()).Str("player", player.String()).
		Int("available", len(moves)).Msg("no-best-move")
	if len(moves) == 0 {
		return 0, ErrNoMoves
	}
	return moves[0], ErrNoBestMove
}

// Minimax runs a full search with a fresh Solver.
func Minimax(b *board.Board, toMove, maximizingFor board.Cell) (int, PVLine) {
	return NewSolver().Solve(b, toMove, maximizingFor)
}

// BestMove returns the best move for player with a fresh Solver.
func BestMove(b board.Board, player board.Cell) (int, error) {
	return NewSolver().BestMove(b, player)
}

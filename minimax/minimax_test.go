package minimax

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/harshisingh777/tic-tac-toe/board"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func parse(t *testing.T, s string) board.Board {
	t.Helper()
	b, err := board.ParseBoard(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestImmediateWin(t *testing.T) {
	is := is.New(t)
	b := parse(t, "XX-OO----")
	m, err := BestMove(b, board.X)
	is.NoErr(err)
	is.Equal(m, 2)
}

func TestBlockOpponent(t *testing.T) {
	is := is.New(t)
	// O must block the top row.
	b := parse(t, "XX--O----")
	m, err := BestMove(b, board.O)
	is.NoErr(err)
	is.Equal(m, 2)
}

func TestEmptyBoardOpening(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	score, pv := Minimax(&b, board.X, board.X)
	is.Equal(score, DrawScore)
	// Every opening draws; index 0 is tried first and never strictly beaten.
	m, ok := pv.BestMove()
	is.True(ok)
	is.Equal(m, 0)
	is.Equal(len(pv.Moves), board.Size)
	is.Equal(b, board.NewBoard())
}

func TestTerminalScores(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		board  string
		winner board.Cell
	}{
		{"XXXOO----", board.X},
		{"OOOXX-X--", board.O},
		{"X-OXO-X--", board.X},
		{"O-XOX-O--", board.O},
		{"XOXOXOOXX", board.X},
	} {
		b := parse(t, tc.board)
		is.Equal(b.Winner(), tc.winner)
		for _, toMove := range []board.Cell{board.X, board.O} {
			score, pv := Minimax(&b, toMove, tc.winner)
			is.Equal(score, WinScore)
			_, ok := pv.BestMove()
			is.True(!ok)
			score, _ = Minimax(&b, toMove, tc.winner.Opponent())
			is.Equal(score, LossScore)
		}
	}
}

func TestDrawScore(t *testing.T) {
	is := is.New(t)
	b := parse(t, "XOXXOOOXX")
	is.True(b.IsDraw())
	for _, p := range []board.Cell{board.X, board.O} {
		score, _ := Minimax(&b, p, p)
		is.Equal(score, DrawScore)
	}
}

func TestBoardRestored(t *testing.T) {
	is := is.New(t)
	for _, s := range []string{"---------", "X--------", "X---O----", "XX-OO----", "XOX-O----"} {
		b := parse(t, s)
		before := b
		toMove := board.X
		if b.Count(board.X) > b.Count(board.O) {
			toMove = board.O
		}
		Minimax(&b, toMove, toMove)
		is.Equal(b, before)
		Minimax(&b, toMove, toMove.Opponent())
		is.Equal(b, before)
	}
}

func TestBestMoveDeterministic(t *testing.T) {
	is := is.New(t)
	b := parse(t, "X---O----")
	m1, err := BestMove(b, board.X)
	is.NoErr(err)
	m2, err := BestMove(b, board.X)
	is.NoErr(err)
	is.Equal(m1, m2)
}

func TestPerfectPlayDraws(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	p := board.X
	s := NewSolver()
	for !b.Terminal() {
		m, err := s.BestMove(b, p)
		is.NoErr(err)
		is.Equal(b[m], board.Empty)
		b[m] = p
		p = p.Opponent()
	}
	is.Equal(b.Winner(), board.Empty)
	is.True(b.IsDraw())
}

func TestBestMoveOnTerminalBoard(t *testing.T) {
	is := is.New(t)
	// Won board with empty cells: the search has nothing to choose, so the
	// contract-violation branch is taken.
	b := parse(t, "XXXOO----")
	m, err := BestMove(b, board.O)
	is.True(errors.Is(err, ErrNoBestMove))
	is.Equal(m, 5)

	full := parse(t, "XOXXOOOXX")
	_, err = BestMove(full, board.X)
	is.True(errors.Is(err, ErrNoMoves))
}

func TestSolverCountsNodes(t *testing.T) {
	is := is.New(t)
	s := NewSolver()
	b := parse(t, "XOXOXO---")
	s.Solve(&b, board.X, board.X)
	// Exhaustive: X wins at once on 6 and 8 but 7 is still searched.
	is.Equal(s.Nodes(), uint64(8))
}

func TestPVDescribe(t *testing.T) {
	is := is.New(t)
	b := parse(t, "XX-OO----")
	_, pv := Minimax(&b, board.X, board.X)
	is.Equal(pv.Moves, []int{2})
	is.Equal(pv.Describe(board.X), "PV; val 1\n1: X 3\n")
}

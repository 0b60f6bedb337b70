// Package game tracks a single game of tic-tac-toe between two players.
package game

import (
	"errors"
	"strconv"
	"strings"

	"github.com/harshisingh777/tic-tac-toe/board"
)

var (
	ErrNotANumber = errors.New("move is not a number")
	ErrOutOfRange = errors.New("move is out of range")
	ErrCellTaken  = errors.New("cell is already taken")
	ErrGameOver   = errors.New("game is over")
)

// Game is a board plus whose turn it is. X always moves first.
type Game struct {
	board   board.Board
	onTurn  board.Cell
	history []int
}

func NewGame() *Game {
	return &Game{board: board.NewBoard(), onTurn: board.X}
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Cell {
	return g.onTurn
}

// History returns the cells played so far, in order.
func (g *Game) History() []int {
	return g.history
}

func (g *Game) Winner() board.Cell {
	return g.board.Winner()
}

func (g *Game) IsDraw() bool {
	return g.board.IsDraw()
}

func (g *Game) Over() bool {
	return g.board.Terminal()
}

// PlayMove places the player on turn at cell (0-8) and passes the turn.
func (g *Game) PlayMove(cell int) error {
	if g.Over() {
		return ErrGameOver
	}
	if cell < 0 || cell >= board.Size {
		return ErrOutOfRange
	}
	if g.board[cell] != board.Empty {
		return ErrCellTaken
	}
	g.board[cell] = g.onTurn
	g.history = append(g.history, cell)
	g.onTurn = g.onTurn.Opponent()
	return nil
}

// ParseHumanMove turns a typed position 1-9 into a cell index, checking it
// is free on b.
func ParseHumanMove(input string, b *board.Board) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.IndexFunc(input, func(r rune) bool {
		return r < '0' || r > '9'
	}) >= 0 {
		return 0, ErrNotANumber
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		// Only digits, so this is an overflow.
		return 0, ErrOutOfRange
	}
	cell := n - 1
	if cell < 0 || cell >= board.Size {
		return 0, ErrOutOfRange
	}
	if b[cell] != board.Empty {
		return 0, ErrCellTaken
	}
	return cell, nil
}

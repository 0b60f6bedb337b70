package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Size is the number of cells on the board.
const Size = 9

// A Cell is the contents of a single square: Empty, X, or O. The byte value
// is also the character used for the cell in state keys.
type Cell byte

const (
	Empty Cell = '-'
	X     Cell = 'X'
	O     Cell = 'O'
)

// KeySeparator separates the board cells from the player to move in a
// state key.
const KeySeparator = "|"

var (
	ErrBadKey  = errors.New("malformed state key")
	ErrBadCell = errors.New("invalid cell value")
)

// WinningLines are the three rows, three columns and two diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func (c Cell) String() string {
	return string(c)
}

// Opponent returns the other player. It is its own inverse on X and O;
// any other value maps to Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	}
	return Empty
}

// IsPlayer is true for X and O.
func (c Cell) IsPlayer() bool {
	return c == X || c == O
}

// ParseCell parses a player symbol, case-insensitively.
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	case "-":
		return Empty, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrBadCell, s)
}

// A Board is the 3x3 grid in row-major order. Search code mutates a Board in
// place through a pointer and restores it before returning; copying the
// value gives an independent board.
type Board [Size]Cell

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = Empty
	}
	return b
}

// ParseBoard parses nine cell characters, e.g. "XX-OO----".
func ParseBoard(s string) (Board, error) {
	var b Board
	if len(s) != Size {
		return b, fmt.Errorf("%w: board %q must have %d cells", ErrBadKey, s, Size)
	}
	for i := 0; i < Size; i++ {
		c := Cell(s[i])
		if c != Empty && !c.IsPlayer() {
			return b, fmt.Errorf("%w: %q at position %d", ErrBadCell, s[i], i)
		}
		b[i] = c
	}
	return b, nil
}

func (b *Board) String() string {
	return string(b[:])
}

// Winner returns the symbol occupying the first complete line, in
// WinningLines order, or Empty if there is none.
func (b *Board) Winner() Cell {
	for _, line := range WinningLines {
		c := b[line[0]]
		if c != Empty && c == b[line[1]] && c == b[line[2]] {
			return c
		}
	}
	return Empty
}

// Full is true if no cell is empty.
func (b *Board) Full() bool {
	return !lo.Contains(b[:], Empty)
}

// IsDraw is true if the board is full and nobody has a line. A full board
// with a line is a win, not a draw.
func (b *Board) IsDraw() bool {
	return b.Full() && b.Winner() == Empty
}

// Terminal is true if the game is over on this board.
func (b *Board) Terminal() bool {
	return b.Winner() != Empty || b.Full()
}

// AvailableMoves returns the indices of the empty cells in ascending order.
func (b *Board) AvailableMoves() []int {
	moves := make([]int, 0, Size)
	for i, c := range b {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Count returns how many cells hold c.
func (b *Board) Count(c Cell) int {
	return lo.Count(b[:], c)
}

// Key returns the state key for this board with toMove on turn, e.g.
// "---------|X" for the empty board with X to move.
func Key(b *Board, toMove Cell) string {
	var sb strings.Builder
	sb.Grow(Size + 2)
	sb.WriteString(b.String())
	sb.WriteString(KeySeparator)
	sb.WriteByte(byte(toMove))
	return sb.String()
}

// ParseKey decodes a state key into its board and player to move.
func ParseKey(key string) (Board, Cell, error) {
	boardStr, playerStr, found := strings.Cut(key, KeySeparator)
	if !found {
		return Board{}, Empty, fmt.Errorf("%w: %q has no separator", ErrBadKey, key)
	}
	b, err := ParseBoard(boardStr)
	if err != nil {
		return Board{}, Empty, fmt.Errorf("parsing key %q: %w", key, err)
	}
	if len(playerStr) != 1 || !Cell(playerStr[0]).IsPlayer() {
		return Board{}, Empty, fmt.Errorf("%w: %q has bad player %q", ErrBadKey, key, playerStr)
	}
	return b, Cell(playerStr[0]), nil
}

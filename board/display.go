package board

import (
	"fmt"
	"strconv"
	"strings"
)

const rowSeparator = "---+---+---"

// A CellFormatter returns the text drawn for the cell at index i.
type CellFormatter func(i int, c Cell) string

// PlainCell draws a played cell as its symbol and an empty cell as its
// 1-based position, the number a human types to play there.
func PlainCell(i int, c Cell) string {
	if c == Empty {
		return strconv.Itoa(i + 1)
	}
	return c.String()
}

// ToDisplayText renders the board as a 3x3 grid.
func (b *Board) ToDisplayText() string {
	return b.Render(PlainCell)
}

// Render renders the board using f to draw each cell.
func (b *Board) Render(f CellFormatter) string {
	var sb strings.Builder
	sb.WriteString("Current Board:\n")
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}
		i := row * 3
		fmt.Fprintf(&sb, " %s | %s | %s\n",
			f(i, b[i]), f(i+1, b[i+1]), f(i+2, b[i+2]))
	}
	return sb.String()
}

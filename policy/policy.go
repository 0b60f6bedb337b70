// Package policy enumerates reachable tic-tac-toe positions, precomputes the
// best move for each one, and stores the result as a flat map from state key
// to move index.
package policy

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/cespare/xxhash"
	"github.com/samber/lo"

	"github.com/harshisingh777/tic-tac-toe/board"
)

// Policy maps a state key to the move to play in that state. It is a cache
// of search results: a missing or unusable entry means the caller should
// search instead.
type Policy map[string]int

// Lookup returns the stored move for b with toMove on turn. ok is false if
// there is no entry or the entry does not name an empty cell of b.
func (p Policy) Lookup(b *board.Board, toMove board.Cell) (int, bool) {
	m, ok := p[board.Key(b, toMove)]
	if !ok {
		return 0, false
	}
	if m < 0 || m >= board.Size || b[m] != board.Empty {
		return 0, false
	}
	return m, true
}

// SortedKeys returns the keys in lexical order.
func (p Policy) SortedKeys() []string {
	keys := lo.Keys(p)
	slices.Sort(keys)
	return keys
}

// Digest is an xxhash of the entries in key order. Two policies with the
// same entries have the same digest.
func (p Policy) Digest() uint64 {
	var buf bytes.Buffer
	for _, k := range p.SortedKeys() {
		buf.WriteString(k)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(p[k]))
		buf.WriteByte('\n')
	}
	return xxhash.Sum64(buf.Bytes())
}

// MoveCounts returns how many entries choose each cell.
func (p Policy) MoveCounts() [board.Size]int {
	var counts [board.Size]int
	for m, n := range lo.CountValues(lo.Values(p)) {
		if m >= 0 && m < board.Size {
			counts[m] = n
		}
	}
	return counts
}

// FprintStats writes the per-cell move counts and a histogram of the chosen
// moves.
func (p Policy) FprintStats(w io.Writer) error {
	counts := p.MoveCounts()
	for i, n := range counts {
		if _, err := fmt.Fprintf(w, "cell %d: %d\n", i+1, n); err != nil {
			return err
		}
	}
	if len(p) == 0 {
		return nil
	}
	data := lo.Map(lo.Values(p), func(m int, _ int) float64 {
		return float64(m)
	})
	hist := histogram.Hist(board.Size, data)
	return histogram.Fprint(w, hist, histogram.Linear(40))
}

package policy

import (
	"github.com/harshisingh777/tic-tac-toe/board"
)

// StateSet is the set of state keys seen by one enumeration, in discovery
// order.
type StateSet struct {
	keys []string
	seen map[string]struct{}
}

func newStateSet() *StateSet {
	return &StateSet{seen: make(map[string]struct{})}
}

// add records key and reports whether it was new.
func (s *StateSet) add(key string) bool {
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	s.keys = append(s.keys, key)
	return true
}

func (s *StateSet) Len() int {
	return len(s.keys)
}

func (s *StateSet) Contains(key string) bool {
	_, ok := s.seen[key]
	return ok
}

// Keys returns the keys in the order the traversal found them.
func (s *StateSet) Keys() []string {
	return s.keys
}

// EnumerateStates walks every position reachable from b with toMove on
// turn, depth first with moves in ascending order. Terminal positions are
// recorded but not expanded. b is restored before returning.
func EnumerateStates(b *board.Board, toMove board.Cell) *StateSet {
	set := newStateSet()
	enumerate(b, toMove, set)
	return set
}

func enumerate(b *board.Board, toMove board.Cell, set *StateSet) {
	if !set.add(board.Key(b, toMove)) {
		return
	}
	if b.Terminal() {
		return
	}
	for _, m := range b.AvailableMoves() {
		b[m] = toMove
		enumerate(b, toMove.Opponent(), set)
		b[m] = board.Empty
	}
}

package policy

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/harshisingh777/tic-tac-toe/board"
	"github.com/harshisingh777/tic-tac-toe/minimax"
)

const (
	reachableStates = 5478
	policyEntries   = 4520
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

var (
	builtOnce   sync.Once
	builtPolicy Policy
	builtErr    error
)

// fullPolicy builds the policy once for every test in the package.
func fullPolicy(t *testing.T) Policy {
	t.Helper()
	builtOnce.Do(func() {
		builtPolicy, builtErr = Build()
	})
	if builtErr != nil {
		t.Fatal(builtErr)
	}
	return builtPolicy
}

func TestEnumerateStates(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	states := EnumerateStates(&b, board.X)
	is.Equal(states.Len(), reachableStates)
	is.Equal(b, board.NewBoard())
	is.Equal(states.Keys()[0], "---------|X")
	is.Equal(states.Keys()[1], "X--------|O")
	is.True(states.Contains("XX-OO----|X"))
	// X's win on the top row is recorded but never expanded.
	is.True(states.Contains("XXXOO----|O"))
	is.True(!states.Contains("XXXOOO---|X"))
	// O never moves first from the empty board.
	is.True(!states.Contains("---------|O"))
	is.True(!states.Contains("O--------|X"))
}

func TestEnumerateKeysAreUnique(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	states := EnumerateStates(&b, board.X)
	seen := map[string]bool{}
	for _, k := range states.Keys() {
		is.True(!seen[k])
		seen[k] = true
	}
}

func TestEnumerateFromMidgame(t *testing.T) {
	is := is.New(t)
	b, err := board.ParseBoard("XOXOXO---")
	is.NoErr(err)
	before := b
	states := EnumerateStates(&b, board.X)
	is.Equal(b, before)
	// The root, X winning at 6 or at 8, and X at 7 followed by both O
	// replies and X filling the last cell.
	is.Equal(states.Len(), 8)
}

func TestBuildPolicy(t *testing.T) {
	is := is.New(t)
	p := fullPolicy(t)
	is.Equal(len(p), policyEntries)

	b := board.NewBoard()
	states := EnumerateStates(&b, board.X)
	terminal := 0
	for _, key := range states.Keys() {
		sb, toMove, err := board.ParseKey(key)
		is.NoErr(err)
		m, ok := p[key]
		if sb.Terminal() {
			terminal++
			is.True(!ok)
			continue
		}
		is.True(ok)
		is.Equal(sb[m], board.Empty)
		lm, ok := p.Lookup(&sb, toMove)
		is.True(ok)
		is.Equal(lm, m)
	}
	is.Equal(terminal, reachableStates-policyEntries)
	for key := range p {
		is.True(states.Contains(key))
	}
}

func TestBuildPolicyKnownMoves(t *testing.T) {
	is := is.New(t)
	p := fullPolicy(t)
	is.Equal(p["---------|X"], 0)
	is.Equal(p["XX-OO----|X"], 2)
	is.Equal(p["X--------|O"], 4)
	is.Equal(p["----X----|O"], 0)
}

func TestPolicyMatchesSearch(t *testing.T) {
	is := is.New(t)
	p := fullPolicy(t)
	s := minimax.NewSolver()
	// Spot check a slice of the entries against a fresh search.
	for i, key := range p.SortedKeys() {
		if i%97 != 0 {
			continue
		}
		b, toMove, err := board.ParseKey(key)
		is.NoErr(err)
		m, err := s.BestMove(b, toMove)
		is.NoErr(err)
		is.Equal(p[key], m)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the full policy twice")
	}
	is := is.New(t)
	p1 := fullPolicy(t)
	bld := NewBuilder()
	bld.LogEvery = 0
	p2, err := bld.Build()
	is.NoErr(err)
	is.Equal(p1.Digest(), p2.Digest())
	is.Equal(len(p1), len(p2))
}

func TestLookupRejectsBadEntries(t *testing.T) {
	is := is.New(t)
	b, err := board.ParseBoard("X---O----")
	is.NoErr(err)
	p := Policy{board.Key(&b, board.X): 4}
	_, ok := p.Lookup(&b, board.X)
	is.True(!ok)

	p[board.Key(&b, board.X)] = 9
	_, ok = p.Lookup(&b, board.X)
	is.True(!ok)

	p[board.Key(&b, board.X)] = 8
	m, ok := p.Lookup(&b, board.X)
	is.True(ok)
	is.Equal(m, 8)

	_, ok = p.Lookup(&b, board.O)
	is.True(!ok)
}

func TestDigestDependsOnEntries(t *testing.T) {
	is := is.New(t)
	p1 := Policy{"---------|X": 0, "X--------|O": 4}
	p2 := Policy{"X--------|O": 4, "---------|X": 0}
	is.Equal(p1.Digest(), p2.Digest())
	p2["X--------|O"] = 1
	is.True(p1.Digest() != p2.Digest())
}

func TestFprintStats(t *testing.T) {
	is := is.New(t)
	p := Policy{"---------|X": 0, "X--------|O": 4, "X---O----|X": 8, "XX--O----|O": 2}
	is.Equal(p.MoveCounts(), [board.Size]int{1, 0, 1, 0, 1, 0, 0, 0, 1})
	var buf bytes.Buffer
	is.NoErr(p.FprintStats(&buf))
	is.True(strings.HasPrefix(buf.String(), "cell 1: 1\ncell 2: 0\n"))
}

package policy

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harshisingh777/tic-tac-toe/board"
	"github.com/harshisingh777/tic-tac-toe/minimax"
)

// StartingPlayer moves first from the empty board.
const StartingPlayer = board.X

// Builder computes a Policy for every non-terminal reachable position.
type Builder struct {
	solver *minimax.Solver
	// LogEvery logs progress after this many solved positions; 0 disables.
	LogEvery int
}

func NewBuilder() *Builder {
	return &Builder{solver: minimax.NewSolver(), LogEvery: 1000}
}

// Build enumerates from the empty board and solves each non-terminal state.
// The result depends only on the enumeration order and the search's
// tie-break, so it is identical across runs.
func (bld *Builder) Build() (Policy, error) {
	start := time.Now()
	initial := board.NewBoard()
	states := EnumerateStates(&initial, StartingPlayer)
	log.Debug().Int("states", states.Len()).Msg("enumerated-states")

	p := make(Policy, states.Len())
	var totalNodes uint64
	for _, key := range states.Keys() {
		b, toMove, err := board.ParseKey(key)
		if err != nil {
			return nil, err
		}
		if b.Terminal() {
			continue
		}
		m, err := bld.solver.BestMove(b, toMove)
		if err != nil {
			return nil, fmt.Errorf("solving %s: %w", key, err)
		}
		totalNodes += bld.solver.Nodes()
		p[key] = m
		if bld.LogEvery > 0 && len(p)%bld.LogEvery == 0 {
			log.Info().Int("solved", len(p)).Msg("building-policy")
		}
	}
	log.Info().Int("states", states.Len()).Int("entries", len(p)).
		Uint64("nodes", totalNodes).Dur("elapsed", time.Since(start)).
		Msg("policy-built")
	return p, nil
}

// Build builds a policy with a default Builder.
func Build() (Policy, error) {
	return NewBuilder().Build()
}

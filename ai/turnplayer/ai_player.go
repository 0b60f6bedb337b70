package turnplayer

import (
	"github.com/rs/zerolog/log"

	"github.com/harshisingh777/tic-tac-toe/board"
	"github.com/harshisingh777/tic-tac-toe/minimax"
	"github.com/harshisingh777/tic-tac-toe/policy"
)

// MoveSource says where an AI move came from.
type MoveSource int

const (
	SourcePolicy MoveSource = iota
	SourceSearch
)

func (s MoveSource) String() string {
	switch s {
	case SourcePolicy:
		return "policy"
	case SourceSearch:
		return "search"
	}
	return "unknown"
}

type Choice struct {
	Move   int
	Source MoveSource
}

// AIPlayer plays from a precomputed policy and searches any position the
// policy does not cover.
type AIPlayer struct {
	policy policy.Policy
	solver *minimax.Solver
}

func NewAIPlayer(p policy.Policy) *AIPlayer {
	if p == nil {
		p = policy.Policy{}
	}
	return &AIPlayer{policy: p, solver: minimax.NewSolver()}
}

// ChooseMove picks a move for player on b. b is not modified.
func (a *AIPlayer) ChooseMove(b board.Board, player board.Cell) (Choice, error) {
	if m, ok := a.policy.Lookup(&b, player); ok {
		log.Debug().Int("move", m).Str("source", SourcePolicy.String()).Msg("ai-move")
		return Choice{Move: m, Source: SourcePolicy}, nil
	}
	m, err := a.solver.BestMove(b, player)
	if err != nil {
		return Choice{}, err
	}
	log.Debug().Int("move", m).Str("source", SourceSearch.String()).
		Uint64("nodes", a.solver.Nodes()).Msg("ai-move")
	return Choice{Move: m, Source: SourceSearch}, nil
}

// Analyze searches b for player and returns the score with the principal
// variation, ignoring the policy.
func (a *AIPlayer) Analyze(b board.Board, player board.Cell) (int, minimax.PVLine) {
	return a.solver.Solve(&b, player, player)
}

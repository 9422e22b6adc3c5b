package agent

import (
	"context"
	"math"

	"github.com/mctsnake/engine/internal/board"
)

// MinimaxAgent is a fixed-depth paranoid search with alpha-beta
// pruning over the full joint-move cartesian product: every other
// snake is treated as a single adversary trying to minimize this
// agent's evaluation. This is the "legacy" search variant spec.md's
// design notes mention alongside MCTS (§9).
type MinimaxAgent struct {
	AgentName string
	Depth     int
}

// NewMinimax builds a MinimaxAgent searching to the given ply depth.
func NewMinimax(name string, depth int) *MinimaxAgent {
	if name == "" {
		name = "Minimax"
	}
	if depth <= 0 {
		depth = 3
	}
	return &MinimaxAgent{AgentName: name, Depth: depth}
}

func (a *MinimaxAgent) Name() string { return a.AgentName }

func (a *MinimaxAgent) Reset() {}

func (a *MinimaxAgent) ChooseMove(_ context.Context, b board.Board, you board.SnakeID, sim board.Simulator) board.Direction {
	myMoves := sim.ReasonableMoves(b, you)
	if len(myMoves) == 0 {
		return board.Up
	}

	youID := b.Snakes[you].ID
	best := myMoves[0]
	bestScore := math.Inf(-1)

	for _, mv := range myMoves {
		next := applyAssumingOthersPlayFirst(b, you, mv, sim)
		s := a.minimax(next, youID, sim, a.Depth-1, math.Inf(-1), math.Inf(1), false)
		if s > bestScore {
			bestScore = s
			best = mv
		}
	}
	return best
}

func applyAssumingOthersPlayFirst(b board.Board, you board.SnakeID, mv board.Direction, sim board.Simulator) board.Board {
	moves := make(board.JointMove, len(b.Snakes))
	for i, s := range b.Snakes {
		if !s.Alive() {
			continue
		}
		if board.SnakeID(i) == you {
			moves[i] = mv
			continue
		}
		options := sim.ReasonableMoves(b, board.SnakeID(i))
		moves[i] = options[0]
	}
	return sim.Apply(b, moves)
}

func (a *MinimaxAgent) evaluate(b board.Board, youID string, sim board.Simulator) float64 {
	idx := board.Find(b, youID)
	if sim.Terminal(b) {
		if idx >= 0 {
			return 10000
		}
		return -10000
	}
	if idx < 0 {
		return -10000
	}
	self := b.Snakes[idx]
	mobility := len(sim.ReasonableMoves(b, idx))
	return float64(self.Health) + float64(self.Length())*10 + float64(mobility)*5
}

// minimax evaluates b from youID's perspective depth plies further,
// alternating between maximizing (youID's own joint move) and
// minimizing (every other snake as one paranoid adversary) layers. The
// cartesian product is built over every live snake's reasonable moves
// at once, matching the joint-move contract used throughout the
// engine.
func (a *MinimaxAgent) minimax(b board.Board, youID string, sim board.Simulator, depth int, alpha, beta float64, maximizing bool) float64 {
	if depth <= 0 || sim.Terminal(b) {
		return a.evaluate(b, youID, sim)
	}

	combos := board.EnumerateJointMoves(b, sim)
	if len(combos) == 0 {
		return a.evaluate(b, youID, sim)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, combo := range combos {
			next := sim.Apply(b, combo)
			v := a.minimax(next, youID, sim, depth-1, alpha, beta, false)
			if v > best {
				best = v
			}
			if v > alpha {
				alpha = v
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, combo := range combos {
		next := sim.Apply(b, combo)
		v := a.minimax(next, youID, sim, depth-1, alpha, beta, true)
		if v < best {
			best = v
		}
		if v < beta {
			beta = v
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

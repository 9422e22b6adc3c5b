package agent

import (
	"context"
	"math"

	"github.com/mctsnake/engine/internal/board"
)

// HeuristicAgent scores each reasonable move by simulating it one ply
// deep (assuming every other snake takes its first reasonable move)
// and ranking the result on mobility, food-seeking while hungry,
// length and health. Grounded on the original heuristic agent's
// scoring weights.
type HeuristicAgent struct {
	AgentName       string
	HungerThreshold int
}

// NewHeuristic builds a HeuristicAgent with the default hunger
// threshold of 30 health.
func NewHeuristic(name string) *HeuristicAgent {
	if name == "" {
		name = "Heuristic"
	}
	return &HeuristicAgent{AgentName: name, HungerThreshold: 30}
}

func (a *HeuristicAgent) Name() string { return a.AgentName }

func (a *HeuristicAgent) Reset() {}

func (a *HeuristicAgent) ChooseMove(_ context.Context, b board.Board, you board.SnakeID, sim board.Simulator) board.Direction {
	moves := sim.ReasonableMoves(b, you)
	if len(moves) == 0 {
		return board.Up
	}

	best := moves[0]
	bestScore := math.Inf(-1)
	for _, mv := range moves {
		next := a.simulateOneMove(b, you, mv, sim)
		s := a.score(b, next, you)
		if s > bestScore {
			bestScore = s
			best = mv
		}
	}
	return best
}

// simulateOneMove advances the board assuming you plays mv and every
// other live snake takes its own first reasonable move.
func (a *HeuristicAgent) simulateOneMove(b board.Board, you board.SnakeID, mv board.Direction, sim board.Simulator) board.Board {
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

func (a *HeuristicAgent) score(before, after board.Board, you board.SnakeID) float64 {
	idx := board.Find(after, before.Snakes[you].ID)
	if idx < 0 {
		return math.Inf(-1)
	}
	self := after.Snakes[idx]

	score := 0.0

	ownership := board.Ownership(after)
	counts := board.Count(ownership, len(after.Snakes))
	score += float64(counts[idx]) * 10

	if self.Health < a.HungerThreshold && len(after.Food) > 0 {
		minDist := math.MaxInt32
		for _, food := range after.Food {
			dist := abs(self.Head.X-food.X) + abs(self.Head.Y-food.Y)
			if dist < minDist {
				minDist = dist
			}
		}
		score += math.Max(float64(20-minDist), 0) * 5
	}

	score += float64(self.Length())

	if self.Health < 20 {
		score -= float64(20-self.Health) * 2
	}

	return score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

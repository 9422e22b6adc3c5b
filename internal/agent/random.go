package agent

import (
	"context"
	"math/rand/v2"

	"github.com/mctsnake/engine/internal/board"
)

// RandomAgent picks uniformly among the reasonable moves each turn.
// Useful as a cheap baseline opponent for benchmarking.
type RandomAgent struct {
	AgentName string
}

// NewRandom builds a RandomAgent with the given display name.
func NewRandom(name string) *RandomAgent {
	if name == "" {
		name = "Random"
	}
	return &RandomAgent{AgentName: name}
}

func (a *RandomAgent) Name() string { return a.AgentName }

func (a *RandomAgent) ChooseMove(_ context.Context, b board.Board, you board.SnakeID, sim board.Simulator) board.Direction {
	moves := sim.ReasonableMoves(b, you)
	if len(moves) == 0 {
		return board.Up
	}
	return moves[rand.IntN(len(moves))]
}

func (a *RandomAgent) Reset() {}

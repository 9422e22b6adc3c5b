package agent

import (
	"context"
	"runtime"
	"time"

	"github.com/mctsnake/engine/internal/board"
	"github.com/mctsnake/engine/internal/mcts"
)

// MCTSAgent is the production agent: it wraps the parallel search
// driver, running it until ctx is done or ThinkTime (100ms when unset)
// elapses, whichever comes first, and returning the root's
// most-visited child's move.
type MCTSAgent struct {
	AgentName string
	ThinkTime time.Duration
	Workers   int
}

// NewMCTS builds an MCTSAgent that searches for thinkTime per move,
// using runtime.NumCPU() workers.
func NewMCTS(name string, thinkTime time.Duration) *MCTSAgent {
	if name == "" {
		name = "MCTS"
	}
	return &MCTSAgent{AgentName: name, ThinkTime: thinkTime, Workers: runtime.NumCPU()}
}

func (a *MCTSAgent) Name() string { return a.AgentName }

func (a *MCTSAgent) Reset() {}

func (a *MCTSAgent) ChooseMove(ctx context.Context, b board.Board, you board.SnakeID, sim board.Simulator) board.Direction {
	if int(you) < 0 || int(you) >= len(b.Snakes) {
		return board.Up
	}
	youID := b.Snakes[you].ID

	budget := a.ThinkTime
	if budget <= 0 {
		budget = 100 * time.Millisecond
	}
	searchCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	workers := a.Workers
	if workers < 1 {
		workers = 1
	}
	driver := mcts.NewDriver(b, youID, sim, workers)
	driver.Run(searchCtx)

	move, ok := driver.BestMove(you)
	if !ok {
		fallback := sim.ReasonableMoves(b, you)
		if len(fallback) > 0 {
			return fallback[0]
		}
		return board.Up
	}
	return move
}

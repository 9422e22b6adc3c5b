// Package agent implements the facade through which the search core,
// the heuristic and the baseline comparison strategies are exercised
// interchangeably — by the HTTP surface, the benchmarking harness, or
// direct tests.
package agent

import (
	"context"

	"github.com/mctsnake/engine/internal/board"
)

// Agent is the common decision-making interface every strategy in this
// package implements.
type Agent interface {
	// Name identifies the agent for display and stats purposes.
	Name() string
	// ChooseMove picks a direction for the snake at index you on b.
	// ctx governs any time budget the agent chooses to honor.
	ChooseMove(ctx context.Context, b board.Board, you board.SnakeID, sim board.Simulator) board.Direction
	// Reset clears any state carried between games.
	Reset()
}

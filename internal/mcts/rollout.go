package mcts

import (
	"math/rand/v2"

	"github.com/mctsnake/engine/internal/board"
)

// rollout plays a uniformly-random joint-move policy from b to a
// terminal position and scores the outcome from the snake whose
// stable id is you: 1 if it is the sole survivor, 0 otherwise (§3
// I5/P1: the rollout outcome is binary, never a draw value). maxTurns
// is a runaway backstop only, not a legitimate terminal condition — a
// rollout that still hasn't reached a simulator-terminal position by
// then scores as a loss, the same as actually dying, rather than
// inventing a third outcome. No heuristic evaluation is used (§4.D:
// rollout is policy-free by design).
func rollout(b board.Board, you string, sim board.Simulator, maxTurns int) float64 {
	cur := b
	buf := make(board.JointMove, len(b.Snakes))
	for turn := 0; turn < maxTurns && !sim.Terminal(cur); turn++ {
		moves := buf[:len(cur.Snakes)]
		for i, s := range cur.Snakes {
			if !s.Alive() {
				moves[i] = board.Unset
				continue
			}
			options := sim.ReasonableMoves(cur, board.SnakeID(i))
			moves[i] = options[rand.IntN(len(options))]
		}
		cur = sim.Apply(cur, moves)
	}
	return score(cur, you)
}

// score reports the binary outcome for the snake whose stable id is
// you: 1 if it is the sole survivor, 0 otherwise — including the case
// where it's dead, or where more than one snake is still alive because
// the rollout hit its runaway backstop before the simulator called the
// position terminal.
func score(b board.Board, you string) float64 {
	idx := board.Find(b, you)
	if idx < 0 {
		return 0
	}
	alive := 0
	for _, s := range b.Snakes {
		if s.Alive() {
			alive++
		}
	}
	if alive == 1 {
		return 1
	}
	return 0
}

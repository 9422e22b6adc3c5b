package sim

import (
	"context"
	"fmt"

	"github.com/mctsnake/engine/internal/agent"
	"github.com/mctsnake/engine/internal/board"
)

// GameResult is the outcome of a single run: the index of the winning
// agent (matching the agents slice passed to RunGame), or -1 on a
// draw/turn-cap exhaustion, plus how long the game lasted.
type GameResult struct {
	Winner    int
	Turns     int
	NumSnakes int
}

// RunGame drives agents (one per starting snake, in index order)
// through a freshly-generated board until the rules call it terminal
// or the turn cap is hit.
func RunGame(ctx context.Context, agents []agent.Agent, sim board.Simulator, cfg Config) GameResult {
	b := GenerateRandomGame(cfg)
	turn := 0

	for turn < cfg.MaxTurns && !sim.Terminal(b) {
		moves := make(board.JointMove, len(b.Snakes))
		anyAlive := false
		for i, s := range b.Snakes {
			if !s.Alive() {
				continue
			}
			anyAlive = true
			moves[i] = agents[i].ChooseMove(ctx, b, board.SnakeID(i), sim)
		}
		if !anyAlive {
			break
		}
		b = sim.Apply(b, moves)
		turn++
	}

	winner := -1
	if len(b.Snakes) == 1 {
		for i := 0; i < cfg.NumSnakes; i++ {
			if b.Snakes[0].ID == fmt.Sprintf("snake_%d", i) {
				winner = i
				break
			}
		}
	}

	return GameResult{Winner: winner, Turns: turn, NumSnakes: cfg.NumSnakes}
}

// RunTournament runs numGames independent games and collects every
// result.
func RunTournament(ctx context.Context, agents []agent.Agent, sim board.Simulator, cfg Config, numGames int) []GameResult {
	results := make([]GameResult, numGames)
	for i := 0; i < numGames; i++ {
		results[i] = RunGame(ctx, agents, sim, cfg)
		for _, a := range agents {
			a.Reset()
		}
	}
	return results
}

// RunTournamentParallel is RunTournament spread across a worker pool,
// grounded on the original's rayon-parallel tournament runner. Each
// worker builds its own agents with newAgents, so no agent instance is
// shared between goroutines.
func RunTournamentParallel(ctx context.Context, newAgents func() []agent.Agent, sim board.Simulator, cfg Config, numGames, workers int) []GameResult {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int, numGames)
	for i := 0; i < numGames; i++ {
		jobs <- i
	}
	close(jobs)

	results := make([]GameResult, numGames)
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			agents := newAgents()
			for idx := range jobs {
				results[idx] = RunGame(ctx, agents, sim, cfg)
				for _, a := range agents {
					a.Reset()
				}
			}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	return results
}

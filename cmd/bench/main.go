// Command bench is the benchmarking gym for pitting the MCTS agent
// against the baseline strategies: tournament, duel and benchmark
// subcommands, grounded on the original's gym/src/main.rs CLI (there
// ported from clap subcommands to the standard flag package, since no
// CLI-parsing library appears anywhere in the retrieved corpus; see
// DESIGN.md).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mctsnake/engine/internal/agent"
	"github.com/mctsnake/engine/internal/board"
	"github.com/mctsnake/engine/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "tournament":
		runTournamentCmd(os.Args[2:])
	case "duel":
		runDuelCmd(os.Args[2:])
	case "benchmark":
		runBenchmarkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: bench <tournament|duel|benchmark> [flags]")
}

func runTournamentCmd(args []string) {
	fs := flag.NewFlagSet("tournament", flag.ExitOnError)
	games := fs.Int("games", 100, "number of games to run")
	agentsFlag := fs.String("agents", "mcts,random,heuristic", "comma-separated agent types")
	mctsTimeMs := fs.Int64("mcts-time", 50, "MCTS think time in milliseconds")
	minimaxDepth := fs.Int("minimax-depth", 3, "minimax search depth")
	maxTurns := fs.Int("max-turns", 500, "maximum turns per game")
	parallel := fs.Bool("parallel", false, "run games across a worker pool")
	jsonOut := fs.Bool("json", false, "print results as JSON")
	fs.Parse(args)

	types := strings.Split(*agentsFlag, ",")
	names := make([]string, 0, len(types))
	factory := func() []agent.Agent {
		agents := make([]agent.Agent, 0, len(types))
		for _, t := range types {
			agents = append(agents, buildAgent(strings.TrimSpace(t), time.Duration(*mctsTimeMs)*time.Millisecond, *minimaxDepth))
		}
		return agents
	}
	for _, a := range factory() {
		names = append(names, a.Name())
	}

	cfg := sim.Standard4Snake()
	if len(types) < cfg.NumSnakes {
		cfg.NumSnakes = len(types)
	}
	cfg.MaxTurns = *maxTurns

	if !*jsonOut {
		fmt.Println("=== Tournament ===")
		fmt.Printf("Games: %d | Max turns: %d | Parallel: %v\n\n", *games, *maxTurns, *parallel)
	}

	var results []sim.GameResult
	ctx := context.Background()
	if *parallel {
		results = sim.RunTournamentParallel(ctx, factory, board.StandardRules{}, cfg, *games, runtime.NumCPU())
	} else {
		results = sim.RunTournament(ctx, factory(), board.StandardRules{}, cfg, *games)
	}

	stats := sim.NewTournamentStats(results, names)
	if *jsonOut {
		fmt.Println(stats.JSON())
	} else {
		fmt.Println(stats.Summary())
	}
}

func runDuelCmd(args []string) {
	fs := flag.NewFlagSet("duel", flag.ExitOnError)
	agent1 := fs.String("agent1", "mcts", "first agent type")
	agent2 := fs.String("agent2", "random", "second agent type")
	games := fs.Int("games", 100, "number of games to run")
	mctsTimeMs := fs.Int64("mcts-time", 50, "MCTS think time in milliseconds")
	minimaxDepth := fs.Int("minimax-depth", 3, "minimax search depth")
	maxTurns := fs.Int("max-turns", 500, "maximum turns per game")
	parallel := fs.Bool("parallel", false, "run games across a worker pool")
	jsonOut := fs.Bool("json", false, "print results as JSON")
	fs.Parse(args)

	think := time.Duration(*mctsTimeMs) * time.Millisecond
	factory := func() []agent.Agent {
		return []agent.Agent{
			buildAgent(*agent1, think, *minimaxDepth),
			buildAgent(*agent2, think, *minimaxDepth),
		}
	}
	names := factory()

	cfg := sim.Duel()
	cfg.MaxTurns = *maxTurns

	if !*jsonOut {
		fmt.Println("=== Duel ===")
		fmt.Printf("%s vs %s | Games: %d\n\n", names[0].Name(), names[1].Name(), *games)
	}

	ctx := context.Background()
	var results []sim.GameResult
	if *parallel {
		results = sim.RunTournamentParallel(ctx, factory, board.StandardRules{}, cfg, *games, runtime.NumCPU())
	} else {
		results = sim.RunTournament(ctx, factory(), board.StandardRules{}, cfg, *games)
	}

	h2h := sim.NewHeadToHeadStats(results, names[0].Name(), names[1].Name())
	if *jsonOut {
		fmt.Printf("{\"agent1\":{\"name\":%q,\"wins\":%d},\"agent2\":{\"name\":%q,\"wins\":%d},\"draws\":%d,\"total_games\":%d}\n",
			h2h.Agent1Name, h2h.Agent1Wins, h2h.Agent2Name, h2h.Agent2Wins, h2h.Draws, *games)
	} else {
		fmt.Println(h2h.Summary())
	}
}

func runBenchmarkCmd(args []string) {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)
	games := fs.Int("games", 10, "games per MCTS think-time configuration")
	mctsTimesFlag := fs.String("mcts-times", "10,25,50,100", "comma-separated MCTS think times in ms")
	parallel := fs.Bool("parallel", false, "run games across a worker pool")
	fs.Parse(args)

	fmt.Println("=== Benchmark ===")
	fmt.Println("Testing MCTS at different think times against the random baseline")
	fmt.Printf("Games per config: %d\n\n", *games)

	cfg := sim.Duel()
	ctx := context.Background()

	for _, raw := range strings.Split(*mctsTimesFlag, ",") {
		var ms int64
		fmt.Sscanf(strings.TrimSpace(raw), "%d", &ms)
		think := time.Duration(ms) * time.Millisecond

		factory := func() []agent.Agent {
			return []agent.Agent{
				agent.NewMCTS(fmt.Sprintf("MCTS-%dms", ms), think),
				agent.NewRandom("random"),
			}
		}
		names := factory()

		var results []sim.GameResult
		if *parallel {
			results = sim.RunTournamentParallel(ctx, factory, board.StandardRules{}, cfg, *games, runtime.NumCPU())
		} else {
			results = sim.RunTournament(ctx, factory(), board.StandardRules{}, cfg, *games)
		}

		h2h := sim.NewHeadToHeadStats(results, names[0].Name(), names[1].Name())
		total := h2h.Agent1Wins + h2h.Agent2Wins + h2h.Draws
		winRate := 0.0
		if total > 0 {
			winRate = float64(h2h.Agent1Wins) / float64(total) * 100
		}
		fmt.Printf("  MCTS %dms: %.1f%% win rate (%d wins / %d losses / %d draws)\n",
			ms, winRate, h2h.Agent1Wins, h2h.Agent2Wins, h2h.Draws)
	}
	fmt.Println()
}

func buildAgent(kind string, mctsTime time.Duration, minimaxDepth int) agent.Agent {
	switch kind {
	case "mcts":
		return agent.NewMCTS("MCTS", mctsTime)
	case "heuristic":
		return agent.NewHeuristic("Heuristic")
	case "minimax":
		return agent.NewMinimax("Minimax", minimaxDepth)
	default:
		return agent.NewRandom("Random")
	}
}

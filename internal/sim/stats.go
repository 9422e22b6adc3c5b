package sim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AgentStats aggregates one agent's record across a tournament.
type AgentStats struct {
	Name       string `json:"name"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
	TotalGames int    `json:"total_games"`
	TotalTurns int64  `json:"total_turns"`
}

func (s AgentStats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.TotalGames)
}

func (s AgentStats) AvgGameLength() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.TotalGames)
}

// TournamentStats summarizes a whole batch of GameResults.
type TournamentStats struct {
	AgentStats    []AgentStats `json:"agent_stats"`
	TotalGames    int          `json:"total_games"`
	TotalDraws    int          `json:"total_draws"`
	AvgGameLength float64      `json:"avg_game_length"`
	MinGameLength int          `json:"min_game_length"`
	MaxGameLength int          `json:"max_game_length"`
}

// NewTournamentStats aggregates results against agentNames (index-
// aligned with the agents slice RunGame was given).
func NewTournamentStats(results []GameResult, agentNames []string) TournamentStats {
	agentStats := make([]AgentStats, len(agentNames))
	for i, name := range agentNames {
		agentStats[i] = AgentStats{Name: name}
	}

	var totalDraws int
	minLen := int(^uint(0) >> 1)
	var maxLen int
	var totalTurns int64

	for _, r := range results {
		totalTurns += int64(r.Turns)
		if r.Turns < minLen {
			minLen = r.Turns
		}
		if r.Turns > maxLen {
			maxLen = r.Turns
		}

		if r.Winner >= 0 && r.Winner < len(agentStats) {
			agentStats[r.Winner].Wins++
			agentStats[r.Winner].TotalGames++
			agentStats[r.Winner].TotalTurns += int64(r.Turns)
			for i := range agentStats {
				if i != r.Winner && i < r.NumSnakes {
					agentStats[i].Losses++
					agentStats[i].TotalGames++
					agentStats[i].TotalTurns += int64(r.Turns)
				}
			}
		} else {
			totalDraws++
			for i := range agentStats {
				if i < r.NumSnakes {
					agentStats[i].Draws++
					agentStats[i].TotalGames++
					agentStats[i].TotalTurns += int64(r.Turns)
				}
			}
		}
	}

	totalGames := len(results)
	avg := 0.0
	if totalGames > 0 {
		avg = float64(totalTurns) / float64(totalGames)
	}
	if totalGames == 0 {
		minLen = 0
	}

	return TournamentStats{
		AgentStats:    agentStats,
		TotalGames:    totalGames,
		TotalDraws:    totalDraws,
		AvgGameLength: avg,
		MinGameLength: minLen,
		MaxGameLength: maxLen,
	}
}

// Summary renders a plain-text table, in the absence of a
// table-formatting dependency anywhere in the corpus to draw on (see
// DESIGN.md).
func (t TournamentStats) Summary() string {
	var sb strings.Builder
	sb.WriteString("=== Tournament Results ===\n")
	fmt.Fprintf(&sb, "%-16s %6s %6s %6s %9s %10s\n", "Agent", "Wins", "Losses", "Draws", "WinRate", "AvgLength")
	for _, s := range t.AgentStats {
		fmt.Fprintf(&sb, "%-16s %6d %6d %6d %8.1f%% %10.1f\n",
			s.Name, s.Wins, s.Losses, s.Draws, s.WinRate()*100, s.AvgGameLength())
	}
	fmt.Fprintf(&sb, "\nTotal games: %d | Draws: %d | Avg length: %.1f turns\n", t.TotalGames, t.TotalDraws, t.AvgGameLength)
	fmt.Fprintf(&sb, "Game length range: %d - %d turns\n", t.MinGameLength, t.MaxGameLength)
	return sb.String()
}

// JSON renders the stats as indented JSON, for the bench CLI's
// --json output mode.
func (t TournamentStats) JSON() string {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

// HeadToHeadStats compares exactly two agents' records against each
// other, ignoring any other snakes that may have shared the board.
type HeadToHeadStats struct {
	Agent1Name string
	Agent2Name string
	Agent1Wins int
	Agent2Wins int
	Draws      int
}

func NewHeadToHeadStats(results []GameResult, agent1Name, agent2Name string) HeadToHeadStats {
	h := HeadToHeadStats{Agent1Name: agent1Name, Agent2Name: agent2Name}
	for _, r := range results {
		switch r.Winner {
		case 0:
			h.Agent1Wins++
		case 1:
			h.Agent2Wins++
		default:
			h.Draws++
		}
	}
	return h
}

func (h HeadToHeadStats) Summary() string {
	total := h.Agent1Wins + h.Agent2Wins + h.Draws
	pct := func(n int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}
	var sb strings.Builder
	sb.WriteString("=== Head-to-Head Results ===\n")
	fmt.Fprintf(&sb, "%s: %d wins (%.1f%%)\n", h.Agent1Name, h.Agent1Wins, pct(h.Agent1Wins))
	fmt.Fprintf(&sb, "%s: %d wins (%.1f%%)\n", h.Agent2Name, h.Agent2Wins, pct(h.Agent2Wins))
	fmt.Fprintf(&sb, "Draws: %d\n", h.Draws)
	return sb.String()
}

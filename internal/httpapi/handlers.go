// Package httpapi exposes the five Battlesnake HTTP endpoints over the
// agent facade, generalized from the teacher's main.go handlers.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mctsnake/engine/internal/agent"
	"github.com/mctsnake/engine/internal/board"
)

// PingMillis is subtracted twice from the ruleset's declared turn
// timeout (once for the inbound request, once for the outbound
// response) to leave a safety margin before Battlesnake's own deadline
// fires (§6.1).
const PingMillis = 60

// Server wires an Agent and a Simulator to the five endpoints.
type Server struct {
	Agent    agent.Agent
	Sim      board.Simulator
	Log      *slog.Logger
	Notifier Notifier

	registry *registry
}

// Notifier is the best-effort post-game hook (§6.4); implementations
// must never block or fail a response.
type Notifier interface {
	GameStarted(state board.GameState)
	GameEnded(state board.GameState)
}

// NewServer builds a Server ready to register on a mux.
func NewServer(a agent.Agent, sim board.Simulator, log *slog.Logger, notifier Notifier) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{Agent: a, Sim: sim, Log: log, Notifier: notifier, registry: newRegistry()}
}

// Routes registers the five endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleInfo)
	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/move", s.handleMove)
	mux.HandleFunc("/end", s.handleEnd)
}

type infoResponse struct {
	APIVersion string `json:"apiversion"`
	Author     string `json:"author"`
	Color      string `json:"color"`
	Head       string `json:"head"`
	Tail       string `json:"tail"`
	Version    string `json:"version"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, infoResponse{
		APIVersion: "1",
		Author:     "mctsnake",
		Color:      "#00695c",
		Head:       "smart-caterpillar",
		Tail:       "round-bum",
		Version:    "1.0.0",
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var state board.GameState
	if !decodeBody(w, r, &state) {
		return
	}

	ids := make([]string, len(state.Board.Snakes))
	for i, sn := range state.Board.Snakes {
		ids[i] = sn.ID
	}
	s.registry.start(state.Game.ID, ids)

	s.Log.Info("game started", "game_id", state.Game.ID, "width", state.Board.Width, "height", state.Board.Height, "snakes", len(ids))
	if s.Notifier != nil {
		go s.Notifier.GameStarted(state)
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var state board.GameState
	if !decodeBody(w, r, &state) {
		return
	}

	you := board.Find(state.Board, state.You.ID)
	if you < 0 {
		s.Log.Warn("move request for snake not present on board", "game_id", state.Game.ID, "you", state.You.ID)
		writeJSON(w, moveResponse{Move: board.Up.String()})
		return
	}

	budget := turnBudget(state.Game.Timeout)
	ctx, cancel := context.WithTimeout(r.Context(), budget)
	defer cancel()

	start := time.Now()
	move := s.Agent.ChooseMove(ctx, state.Board, you, s.Sim)
	elapsed := time.Since(start)

	s.Log.Info("move chosen", "game_id", state.Game.ID, "turn", state.Turn, "move", move.String(), "elapsed_ms", elapsed.Milliseconds())
	writeJSON(w, moveResponse{Move: move.String(), Shout: "calculating..."})
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var state board.GameState
	if !decodeBody(w, r, &state) {
		return
	}

	s.registry.end(state.Game.ID)
	s.Log.Info("game ended", "game_id", state.Game.ID, "turn", state.Turn)
	if s.Notifier != nil {
		go s.Notifier.GameEnded(state)
	}
	w.WriteHeader(http.StatusOK)
}

// turnBudget derives the context deadline for one /move call from the
// ruleset's declared per-turn timeout, leaving two ping margins (§6.1).
// Battlesnake's reference defaults are a 500ms timeout and ~60ms ping
// each way (120ms in total), leaving 380ms of actual search time. A
// non-positive timeout falls back to the 500ms default, and the result
// is never less than 50ms.
func turnBudget(timeoutMillis int) time.Duration {
	if timeoutMillis <= 0 {
		timeoutMillis = 500
	}
	budget := timeoutMillis - 2*PingMillis
	if budget < 50 {
		budget = 50
	}
	return time.Duration(budget) * time.Millisecond
}

type moveResponse struct {
	Move  string `json:"move"`
	Shout string `json:"shout,omitempty"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

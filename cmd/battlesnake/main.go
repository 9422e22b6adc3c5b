// Command battlesnake runs the HTTP server a Battlesnake engine match
// talks to: /, /start, /move and /end, backed by the parallel MCTS
// search. Grounded on the teacher's main.go bootstrap.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/mctsnake/engine/internal/agent"
	"github.com/mctsnake/engine/internal/board"
	"github.com/mctsnake/engine/internal/httpapi"
	"github.com/mctsnake/engine/internal/notify"
	"github.com/mctsnake/engine/internal/obslog"
)

func main() {
	logger := slog.New(obslog.NewCloudHandler(os.Stdout, slog.LevelInfo))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	thinkTime := 380 * time.Millisecond
	mctsAgent := agent.NewMCTS("mctsnake", thinkTime)
	mctsAgent.Workers = runtime.NumCPU()

	notifier := notify.New(notify.ConfigFromEnv(), logger)

	server := httpapi.NewServer(mctsAgent, board.StandardRules{}, logger, notifier)

	mux := http.NewServeMux()
	server.Routes(mux)

	logger.Info("starting battlesnake server", "port", port, "workers", mctsAgent.Workers)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

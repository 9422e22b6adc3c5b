package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mctsnake/engine/internal/board"
)

// Notifier posts game lifecycle events to Discord and, when replay
// archiving is enabled, renders and ships a Tidbyt/Cloud-Storage
// replay GIF. Every method is best-effort: failures are logged, never
// returned, since a notification glitch must never affect gameplay.
type Notifier struct {
	Config Config
	Log    *slog.Logger
}

// New builds a Notifier; a zero-value Config makes every call a no-op.
func New(cfg Config, log *slog.Logger) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{Config: cfg, Log: log}
}

// GameStarted posts a short Discord notice naming the opponents.
func (n *Notifier) GameStarted(state board.GameState) {
	if n.Config.DiscordWebhookURL == "" {
		return
	}
	requestID := uuid.NewString()

	var opponents string
	for _, s := range state.Board.Snakes {
		if s.ID == state.You.ID {
			continue
		}
		if opponents != "" {
			opponents += ", "
		}
		opponents += s.Name
	}

	msg := fmt.Sprintf("Game %s started against: %s", state.Game.ID, opponents)
	if err := postDiscordWebhook(n.Config.DiscordWebhookURL, msg, nil); err != nil {
		n.Log.Warn("discord start notification failed", "game_id", state.Game.ID, "request_id", requestID, "error", err)
	}
}

// GameEnded posts a Discord summary of the outcome and, if replay
// archiving is enabled, fetches the replay, renders it to a GIF,
// uploads it to Cloud Storage and pushes it to a Tidbyt display.
func (n *Notifier) GameEnded(state board.GameState) {
	outcome := describeOutcome(state)

	if n.Config.DiscordWebhookURL != "" {
		embed := Embed{
			Title:       fmt.Sprintf("Game %s finished", state.Game.ID),
			Description: outcome,
			URL:         fmt.Sprintf("https://play.battlesnake.com/g/%s/", state.Game.ID),
		}
		if err := postDiscordWebhook(n.Config.DiscordWebhookURL, "", []Embed{embed}); err != nil {
			n.Log.Warn("discord end notification failed", "game_id", state.Game.ID, "error", err)
		}
	}

	if !n.Config.ReplayEnabled {
		return
	}
	n.archiveReplay(state)
}

func (n *Notifier) archiveReplay(state board.GameState) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	wsURL := fmt.Sprintf("wss://engine.battlesnake.com/games/%s/events", state.Game.ID)
	frames, won, err := collectFrames(ctx, wsURL, state.You.ID)
	if err != nil {
		n.Log.Warn("collect replay frames failed", "game_id", state.Game.ID, "error", err)
		return
	}

	gifBytes, err := renderGIF(frames, won)
	if err != nil {
		n.Log.Warn("render replay gif failed", "game_id", state.Game.ID, "error", err)
		return
	}

	if n.Config.BucketName != "" {
		if err := uploadReplayGIF(ctx, n.Config.BucketName, state.Game.ID, gifBytes); err != nil {
			n.Log.Warn("upload replay gif failed", "game_id", state.Game.ID, "error", err)
		}
	}

	if n.Config.TidbytDeviceID != "" && n.Config.TidbytAPIKey != "" {
		encoded := base64.StdEncoding.EncodeToString(gifBytes)
		if err := pushToTidbyt(n.Config.TidbytDeviceID, n.Config.TidbytAPIKey, encoded); err != nil {
			n.Log.Warn("push replay to tidbyt failed", "game_id", state.Game.ID, "error", err)
		}
	}
}

// describeOutcome renders a short human-readable summary of how the
// game ended for the "you" snake, generalized from the teacher's
// describeGameOutcome.
func describeOutcome(state board.GameState) string {
	for _, s := range state.Board.Snakes {
		if s.ID == state.You.ID {
			return fmt.Sprintf("survived %d turns with %d health", state.Turn, s.Health)
		}
	}
	return fmt.Sprintf("eliminated after %d turns", state.Turn)
}

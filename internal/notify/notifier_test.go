package notify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mctsnake/engine/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestGameStartedPostsToWebhook(t *testing.T) {
	var received bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = true
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := New(Config{DiscordWebhookURL: srv.URL}, nil)
	n.GameStarted(board.GameState{
		Game:  board.Game{ID: "g1"},
		You:   board.Snake{ID: "you"},
		Board: board.Board{Snakes: []board.Snake{{ID: "you", Name: "Me"}, {ID: "them", Name: "Rival"}}},
	})

	assert.True(t, received)
}

func TestGameEndedNoOpWithoutConfig(t *testing.T) {
	n := New(Config{}, nil)
	assert.NotPanics(t, func() {
		n.GameEnded(board.GameState{Game: board.Game{ID: "g1"}, You: board.Snake{ID: "you"}})
	})
}

func TestDescribeOutcomeReportsSurvival(t *testing.T) {
	state := board.GameState{
		Turn: 42,
		You:  board.Snake{ID: "you"},
		Board: board.Board{Snakes: []board.Snake{
			{ID: "you", Health: 55},
		}},
	}
	assert.Contains(t, describeOutcome(state), "survived 42 turns")
}

func TestDescribeOutcomeReportsElimination(t *testing.T) {
	state := board.GameState{Turn: 12, You: board.Snake{ID: "you"}, Board: board.Board{}}
	assert.Contains(t, describeOutcome(state), "eliminated")
}

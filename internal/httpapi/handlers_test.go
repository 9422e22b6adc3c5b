package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mctsnake/engine/internal/agent"
	"github.com/mctsnake/engine/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() board.GameState {
	return board.GameState{
		Game:  board.Game{ID: "game-1", Timeout: 500},
		Turn:  3,
		Board: board.Board{
			Width:  11,
			Height: 11,
			Snakes: []board.Snake{
				{ID: "you", Health: 90, Body: []board.Point{{X: 5, Y: 5}, {X: 5, Y: 4}}, Head: board.Point{X: 5, Y: 5}},
				{ID: "them", Health: 90, Body: []board.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}, Head: board.Point{X: 1, Y: 1}},
			},
		},
		You: board.Snake{ID: "you", Health: 90, Body: []board.Point{{X: 5, Y: 5}, {X: 5, Y: 4}}, Head: board.Point{X: 5, Y: 5}},
	}
}

func newTestServer() *Server {
	return NewServer(agent.NewMCTS("test", 30*time.Millisecond), board.StandardRules{}, nil, nil)
}

func doJSON(t *testing.T, handler func(w *httptest.ResponseRecorder, body []byte), state board.GameState) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(state)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	handler(rec, body)
	return rec
}

func TestHandleInfoReturnsCapabilities(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	s.handleInfo(rec, req)

	var resp infoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.APIVersion)
	assert.NotEmpty(t, resp.Color)
}

func TestHandleStartRegistersGame(t *testing.T) {
	s := newTestServer()
	state := sampleState()
	body, err := json.Marshal(state)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/start", bytes.NewReader(body))
	s.handleStart(rec, req)

	assert.Equal(t, 200, rec.Code)
	ids, ok := s.registry.snakeIDs("game-1")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"you", "them"}, ids)
}

func TestHandleMoveReturnsReasonableMove(t *testing.T) {
	s := newTestServer()
	state := sampleState()
	body, err := json.Marshal(state)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/move", bytes.NewReader(body))
	s.handleMove(rec, req)

	var resp moveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	var reasonable []string
	for _, d := range (board.StandardRules{}).ReasonableMoves(state.Board, 0) {
		reasonable = append(reasonable, d.String())
	}
	assert.Contains(t, reasonable, resp.Move)
}

func TestHandleEndClearsRegistry(t *testing.T) {
	s := newTestServer()
	state := sampleState()
	body, err := json.Marshal(state)
	require.NoError(t, err)

	startRec := httptest.NewRecorder()
	s.handleStart(startRec, httptest.NewRequest("POST", "/start", bytes.NewReader(body)))

	endRec := httptest.NewRecorder()
	s.handleEnd(endRec, httptest.NewRequest("POST", "/end", bytes.NewReader(body)))

	_, ok := s.registry.snakeIDs("game-1")
	assert.False(t, ok)
}

func TestTurnBudgetLeavesPingMargin(t *testing.T) {
	assert.Equal(t, 380*time.Millisecond, turnBudget(500))
	assert.Equal(t, 50*time.Millisecond, turnBudget(10))
	assert.Equal(t, 380*time.Millisecond, turnBudget(0))
}

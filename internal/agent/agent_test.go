package agent

import (
	"context"
	"testing"
	"time"

	"github.com/mctsnake/engine/internal/board"
	"github.com/stretchr/testify/assert"
)

func sampleBoard() board.Board {
	return board.Board{
		Height: 11, Width: 11,
		Food: []board.Point{{X: 3, Y: 3}},
		Snakes: []board.Snake{
			{ID: "self", Health: 15, Head: board.Point{X: 5, Y: 5}, Body: []board.Point{{5, 5}, {5, 4}}},
			{ID: "rival", Health: 100, Head: board.Point{X: 1, Y: 1}, Body: []board.Point{{1, 1}, {1, 0}}},
		},
	}
}

func TestRandomAgentAlwaysReasonable(t *testing.T) {
	b := sampleBoard()
	rules := board.StandardRules{}
	a := NewRandom("")

	for i := 0; i < 20; i++ {
		move := a.ChooseMove(context.Background(), b, 0, rules)
		assert.Contains(t, rules.ReasonableMoves(b, 0), move)
	}
}

func TestHeuristicAgentReturnsReasonableMove(t *testing.T) {
	b := sampleBoard()
	rules := board.StandardRules{}
	a := NewHeuristic("")

	move := a.ChooseMove(context.Background(), b, 0, rules)
	assert.Contains(t, rules.ReasonableMoves(b, 0), move)
}

func TestMinimaxAgentReturnsReasonableMove(t *testing.T) {
	b := sampleBoard()
	rules := board.StandardRules{}
	a := NewMinimax("", 2)

	move := a.ChooseMove(context.Background(), b, 0, rules)
	assert.Contains(t, rules.ReasonableMoves(b, 0), move)
}

func TestMCTSAgentReturnsReasonableMoveWithinBudget(t *testing.T) {
	b := sampleBoard()
	rules := board.StandardRules{}
	a := NewMCTS("", 50*time.Millisecond)
	a.Workers = 2

	move := a.ChooseMove(context.Background(), b, 0, rules)
	assert.Contains(t, rules.ReasonableMoves(b, 0), move)
}

func TestMCTSAgentFallsBackWhenParentContextAlreadyDone(t *testing.T) {
	b := sampleBoard()
	rules := board.StandardRules{}
	a := NewMCTS("", 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	move := a.ChooseMove(ctx, b, 0, rules)
	assert.Contains(t, rules.ReasonableMoves(b, 0), move)
}

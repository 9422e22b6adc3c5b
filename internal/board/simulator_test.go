package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonableMoves(t *testing.T) {
	testCases := []struct {
		Description   string
		Board         Board
		SnakeIndex    SnakeID
		ExpectedMoves []Direction
	}{
		{
			Description: "one snake in the middle of the board",
			Board: Board{
				Height: 5,
				Width:  5,
				Snakes: []Snake{
					{ID: "snake1", Head: Point{X: 2, Y: 2}, Health: 100, Body: []Point{{X: 2, Y: 2}}},
				},
			},
			SnakeIndex:    0,
			ExpectedMoves: []Direction{Up, Down, Left, Right},
		},
		{
			Description: "one snake at the bottom-left corner",
			Board: Board{
				Height: 5,
				Width:  5,
				Snakes: []Snake{
					{ID: "snake1", Head: Point{X: 0, Y: 0}, Health: 100, Body: []Point{{X: 0, Y: 0}}},
				},
			},
			SnakeIndex:    0,
			ExpectedMoves: []Direction{Up, Right},
		},
		{
			Description: "cannot reverse into neck",
			Board: Board{
				Height: 5,
				Width:  5,
				Snakes: []Snake{
					{ID: "snake1", Head: Point{X: 2, Y: 2}, Health: 100, Body: []Point{
						{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 0},
					}},
				},
			},
			SnakeIndex:    0,
			ExpectedMoves: []Direction{Up, Left, Right},
		},
		{
			Description: "fully boxed in falls back to Up",
			Board: Board{
				Height: 5,
				Width:  5,
				Snakes: []Snake{
					{ID: "snake1", Head: Point{X: 2, Y: 2}, Health: 100, Body: []Point{
						{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 2},
						{X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3},
					}},
				},
			},
			SnakeIndex:    0,
			ExpectedMoves: []Direction{Up},
		},
	}

	rules := StandardRules{}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got := rules.ReasonableMoves(tc.Board, tc.SnakeIndex)
			assert.Equal(t, tc.ExpectedMoves, got, tc.Description)
		})
	}
}

func TestApplyHeadOnCollisionLongerSurvives(t *testing.T) {
	b := Board{
		Height: 5, Width: 5,
		Snakes: []Snake{
			{ID: "a", Health: 100, Head: Point{1, 2}, Body: []Point{{1, 2}, {0, 2}, {0, 1}}},
			{ID: "b", Health: 100, Head: Point{3, 2}, Body: []Point{{3, 2}}},
		},
	}
	rules := StandardRules{}
	out := rules.Apply(b, JointMove{Right, Left})

	assert.Len(t, out.Snakes, 1, "shorter snake dies in a head-on collision")
	assert.Equal(t, "a", out.Snakes[0].ID)
}

func TestApplyFoodGrowsAndRestoresHealth(t *testing.T) {
	b := Board{
		Height: 5, Width: 5,
		Food:   []Point{{2, 2}},
		Snakes: []Snake{{ID: "a", Health: 50, Head: Point{1, 2}, Body: []Point{{1, 2}, {0, 2}}}},
	}
	rules := StandardRules{}
	out := rules.Apply(b, JointMove{Right})

	assert.Equal(t, 100, out.Snakes[0].Health)
	assert.Len(t, out.Snakes[0].Body, 3)
	assert.Empty(t, out.Food)
}

func TestApplyOutOfBoundsDies(t *testing.T) {
	b := Board{
		Height: 3, Width: 3,
		Snakes: []Snake{{ID: "a", Health: 100, Head: Point{2, 1}, Body: []Point{{2, 1}, {1, 1}}}},
	}
	rules := StandardRules{}
	out := rules.Apply(b, JointMove{Right})
	assert.Empty(t, out.Snakes)
}

func TestEnumerateJointMovesDeterministicOrder(t *testing.T) {
	b := Board{
		Height: 11, Width: 11,
		Snakes: []Snake{
			{ID: "a", Health: 100, Head: Point{5, 5}, Body: []Point{{5, 5}}},
			{ID: "b", Health: 100, Head: Point{1, 1}, Body: []Point{{1, 1}}},
		},
	}
	rules := StandardRules{}
	first := EnumerateJointMoves(b, rules)
	second := EnumerateJointMoves(b, rules)
	assert.Equal(t, first, second, "enumeration order must be deterministic across calls")
	assert.Len(t, first, 16, "4 moves for each of 2 snakes in the open middle of the board")
}

func TestEnumerateJointMovesNoLiveSnakes(t *testing.T) {
	rules := StandardRules{}
	out := EnumerateJointMoves(Board{Height: 5, Width: 5}, rules)
	assert.Equal(t, []JointMove{{}}, out)
}

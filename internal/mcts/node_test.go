package mcts

import (
	"math"
	"testing"

	"github.com/mctsnake/engine/internal/board"
	"github.com/stretchr/testify/assert"
)

func TestUCB1(t *testing.T) {
	testCases := []struct {
		Description   string
		ChildVisits   uint32
		ChildWins     uint32
		ParentVisits  float64
		C             float64
		ExpectedScore float64
	}{
		{
			Description:   "unvisited child always wins selection",
			ChildVisits:   0,
			ChildWins:     0,
			ParentVisits:  10,
			C:             1.41,
			ExpectedScore: math.Inf(1),
		},
		{
			Description:   "pure exploitation when c is zero returns the raw win tally",
			ChildVisits:   4,
			ChildWins:     2,
			ParentVisits:  20,
			C:             0,
			ExpectedScore: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			child := &Node{}
			child.visits.Store(tc.ChildVisits)
			child.wins.Add(tc.ChildWins)

			got := ucb1(child, tc.C, tc.ParentVisits)
			assert.Equal(t, tc.ExpectedScore, got)
		})
	}
}

func TestBestChildPrefersUnvisited(t *testing.T) {
	parent := &Node{children: map[board.Action]*Node{}}
	visited := &Node{}
	visited.visits.Store(25)
	visited.wins.Add(12)
	unvisited := &Node{}

	parent.visits.Store(50)
	parent.children["visited"] = visited
	parent.children["unvisited"] = unvisited

	best := parent.bestChild(1.41)
	assert.Same(t, unvisited, best)
}

func TestBestChildTieBreaksByActionKey(t *testing.T) {
	parent := &Node{children: map[board.Action]*Node{}}
	a := &Node{}
	a.visits.Store(10)
	a.wins.Add(5)
	b := &Node{}
	b.visits.Store(10)
	b.wins.Add(5)

	parent.visits.Store(30)
	parent.children["b-action"] = b
	parent.children["a-action"] = a

	best := parent.bestChild(1.41)
	assert.Same(t, a, best, "ties resolve to the lexicographically smallest action")
}

func TestMostVisitedChildIgnoresExploration(t *testing.T) {
	parent := &Node{children: map[board.Action]*Node{}}
	fewVisitsHighUCB := &Node{}
	fewVisitsHighUCB.visits.Store(1)
	fewVisitsHighUCB.wins.Add(1)
	manyVisitsLowerWinRate := &Node{}
	manyVisitsLowerWinRate.visits.Store(100)
	manyVisitsLowerWinRate.wins.Add(60)

	parent.children["a"] = fewVisitsHighUCB
	parent.children["b"] = manyVisitsLowerWinRate

	_, best, ok := parent.MostVisitedChild()
	assert.True(t, ok)
	assert.Same(t, manyVisitsLowerWinRate, best)
}

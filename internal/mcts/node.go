// Package mcts implements the parallel, anytime joint-move Monte Carlo
// tree search: the tree node, selection/expansion/backpropagation, the
// rollout policy and the search driver that ties them together.
package mcts

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/mctsnake/engine/internal/board"
	"github.com/mctsnake/engine/internal/queue"
)

// ExplorationConstant is the UCB1 trade-off parameter used during
// selection. A value of 0 disables exploration entirely (pure
// exploitation). The final move is not picked through UCB1 at all: the
// search driver takes the root's most-visited child (MostVisitedChild).
const ExplorationConstant = 1.41

// Node is one position in the search tree. The tree is rooted at the
// position handed to NewRoot (via NewDriver) and owns every node below it; a node's
// Parent link is a plain, non-owning pointer back up the tree — safe
// because the owning root keeps the whole arena alive for as long as
// the search runs.
type Node struct {
	Board  board.Board
	Parent *Node
	Move   board.JointMove // the joint move that produced this node from Parent

	visits atomic.Uint32
	wins   atomic.Uint32

	mu       sync.Mutex
	children map[board.Action]*Node

	pending *queue.Queue[board.JointMove]

	sim board.Simulator
}

// NewRoot builds the root node for a fresh search over b.
func NewRoot(b board.Board, sim board.Simulator) *Node {
	return newNode(nil, b, nil, sim)
}

func newNode(parent *Node, b board.Board, move board.JointMove, sim board.Simulator) *Node {
	n := &Node{
		Board:    b,
		Parent:   parent,
		Move:     move,
		children: make(map[board.Action]*Node),
		sim:      sim,
	}
	if !sim.Terminal(b) {
		n.pending = queue.New(board.EnumerateJointMoves(b, sim))
	}
	return n
}

// Visits returns the number of times this node has been backpropagated
// through.
func (n *Node) Visits() uint32 { return n.visits.Load() }

// Wins returns the accumulated win tally for this node's perspective —
// a raw count, not a rate (§3: wins is an unnormalized atomic counter).
func (n *Node) Wins() float64 { return float64(n.wins.Load()) }

// Terminal reports whether this position ends the game.
func (n *Node) Terminal() bool { return n.sim.Terminal(n.Board) }

// FullyExpanded reports whether every joint move from this position has
// already produced a child (I3: a node descended into during selection
// is always either terminal or fully expanded).
func (n *Node) FullyExpanded() bool {
	return n.pending == nil || n.pending.Empty()
}

// Children returns a snapshot slice of this node's expanded children.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

// ucb1 scores a child for selection from parentVisits, following the
// canonical formula from the tree-node component:
// wins(child) + c*sqrt(ln(visits(parent)) / (visits(child)+1)). wins
// is the raw accumulated tally, not a win rate — an unnormalized
// counter, per §3 and the original's mcts.rs. An unvisited child is
// always preferred (+Inf) so every child gets at least one visit
// before any is revisited.
func ucb1(child *Node, c, parentVisits float64) float64 {
	visits := float64(child.Visits())
	if visits == 0 {
		return math.Inf(1)
	}
	exploration := c * math.Sqrt(math.Log(parentVisits)/(visits+1))
	return child.Wins() + exploration
}

// bestChild selects the highest-UCB1 child. Ties resolve to the child
// whose Action key sorts first, making selection deterministic for a
// fixed set of backpropagated results (P6).
func (n *Node) bestChild(c float64) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	parentVisits := float64(n.visits.Load())
	var best *Node
	var bestKey board.Action
	bestScore := math.Inf(-1)
	for key, child := range n.children {
		score := ucb1(child, c, parentVisits)
		if score > bestScore || (score == bestScore && key < bestKey) {
			best = child
			bestKey = key
			bestScore = score
		}
	}
	return best
}

// ChildActions returns this node's expanded child actions in sorted
// order, for deterministic iteration in tests and diagnostics.
func (n *Node) ChildActions() []board.Action {
	n.mu.Lock()
	defer n.mu.Unlock()
	return sortedActions(n.children)
}

// MostVisitedChild returns the expanded child with the highest visit
// count, breaking ties by accumulated wins and then by Action key. It
// is what the search driver uses to pick the final move (pure
// exploitation, no UCB1 term).
func (n *Node) MostVisitedChild() (board.Action, *Node, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var bestKey board.Action
	var best *Node
	for key, child := range n.children {
		if best == nil {
			best, bestKey = child, key
			continue
		}
		switch {
		case child.Visits() > best.Visits():
			best, bestKey = child, key
		case child.Visits() == best.Visits() && child.Wins() > best.Wins():
			best, bestKey = child, key
		case child.Visits() == best.Visits() && child.Wins() == best.Wins() && key < bestKey:
			best, bestKey = child, key
		}
	}
	return bestKey, best, best != nil
}

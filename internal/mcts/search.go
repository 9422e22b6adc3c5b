package mcts

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/mctsnake/engine/internal/board"
)

// MaxRolloutTurns is a runaway backstop, not a legitimate stopping
// rule: rollouts must be bounded by the simulator's own terminal
// predicate (§4.D), but a pathological board (e.g. two equal-length
// snakes forever dodging each other) could in principle keep a worker
// busy indefinitely. Hitting it is treated as a loss for the
// rollout's snake (see score in rollout.go), not a third outcome —
// the rollout result stays in {0, 1}.
const MaxRolloutTurns = 500

// Driver runs the anytime parallel search described in §4.F: a fixed
// number of worker goroutines repeatedly select/expand/rollout/
// backpropagate against a shared tree until told to stop, at which
// point the caller reads the best move off the root.
type Driver struct {
	Root    *Node
	You     string
	Sim     board.Simulator
	Workers int

	stopped atomic.Bool
	wg      sync.WaitGroup
}

// NewDriver builds a driver rooted at b, searching on behalf of the
// snake whose stable id is you.
func NewDriver(b board.Board, you string, sim board.Simulator, workers int) *Driver {
	if workers < 1 {
		workers = 1
	}
	return &Driver{
		Root:    NewRoot(b, sim),
		You:     you,
		Sim:     sim,
		Workers: workers,
	}
}

// Run starts the worker pool and blocks until ctx is cancelled or Stop
// is called, whichever comes first. It is safe to call Stop from
// another goroutine while Run is blocked.
func (d *Driver) Run(ctx context.Context) {
	d.wg.Add(d.Workers)
	for i := 0; i < d.Workers; i++ {
		go func() {
			defer d.wg.Done()
			d.worker()
		}()
	}

	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			d.Stop()
		case <-finished:
		}
	}()
	d.wg.Wait()
	close(finished)
}

// Stop flips the shared stop flag; any worker mid-iteration finishes
// its current playout before observing it.
func (d *Driver) Stop() { d.stopped.Store(true) }

// worker repeatedly selects/expands/rolls-out/backpropagates until
// told to stop. A panic here (e.g. from a malformed board reaching the
// simulator) is recovered and logged rather than left to crash the
// process: per §7, a worker failing is fatal to that worker only, not
// to the turn or any other in-flight game.
func (d *Driver) worker() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("mcts worker panic recovered", "panic", r)
		}
	}()

	for !d.stopped.Load() {
		node := d.selectNode(d.Root)

		if !node.Terminal() {
			if child, ok := d.expand(node); ok {
				node = child
			}
		}

		result := rollout(node.Board, d.You, d.Sim, MaxRolloutTurns)
		backpropagate(node, result)
	}
}

// selectNode descends from root via UCB1 while a node is neither
// terminal nor still has an unexpanded joint move (I3).
func (d *Driver) selectNode(root *Node) *Node {
	node := root
	for !node.Terminal() && node.FullyExpanded() {
		next := node.bestChild(ExplorationConstant)
		if next == nil {
			break
		}
		node = next
	}
	return node
}

// expand pops one unexpanded joint move off node and materializes the
// resulting child. It may return ok=false if another worker raced it
// to the last pending move; the caller then rolls out from node itself.
func (d *Driver) expand(node *Node) (*Node, bool) {
	if node.pending == nil {
		return nil, false
	}
	move, ok := node.pending.Pop()
	if !ok {
		return nil, false
	}
	child := newNode(node, node.sim.Apply(node.Board, move), move, node.sim)

	node.mu.Lock()
	node.children[move.Action()] = child
	node.mu.Unlock()

	return child, true
}

// backpropagate walks from node up to the root, atomically
// incrementing visits and adding result to the accumulated score at
// every level (O2: the pair is never observed half-updated since
// visits and wins are independent atomics updated in the same order
// at every level, and readers only ever use visits as a denominator,
// never assume a specific relationship between the two beyond wins <=
// visits).
func backpropagate(node *Node, result float64) {
	for n := node; n != nil; n = n.Parent {
		n.visits.Add(1)
		n.wins.Add(uint32(result))
	}
}

// BestMove reports the joint move of the root's most-visited child,
// decoded down to this search's own snake's direction, and whether such
// a child exists. If the root has no expanded children (search
// stopped before a single iteration completed, or the root is already
// terminal) ok is false and the caller must fall back to a default
// move (§7).
func (d *Driver) BestMove(youIndex board.SnakeID) (board.Direction, bool) {
	_, child, ok := d.Root.MostVisitedChild()
	if !ok {
		return board.Unset, false
	}
	if int(youIndex) < 0 || int(youIndex) >= len(child.Move) {
		return board.Unset, false
	}
	return child.Move[youIndex], true
}

// Iterations returns how many times the root has been backpropagated
// through so far — the search's progress counter.
func (d *Driver) Iterations() uint32 { return d.Root.Visits() }

// sortedActions is a small helper used by diagnostics to present a
// node's children in a stable order.
func sortedActions(children map[board.Action]*Node) []board.Action {
	keys := make([]board.Action, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

package mcts

import (
	"fmt"
	"strings"

	"github.com/mctsnake/engine/internal/board"
)

// Visualise renders a node's board state plus its visit/score summary
// for diagnostics — the tree component's debugging aid, grounded on
// the teacher's own board-and-tree text dumps.
func (n *Node) Visualise() string {
	var sb strings.Builder
	divisor := n.Visits()
	if divisor == 0 {
		divisor = 1
	}
	fmt.Fprintf(&sb, "visits=%d wins=%.2f avg=%.3f\n", n.Visits(), n.Wins(), n.Wins()/float64(divisor))
	sb.WriteString(board.Render(n.Board))
	return sb.String()
}

// Depth returns the length of the longest expanded path below n.
func (n *Node) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	best := 0
	for _, c := range n.children {
		if d := c.Depth() + 1; d > best {
			best = d
		}
	}
	return best
}

// MostVisitedPath renders the chain of most-visited children from n
// down to a leaf, one board per line, for post-mortem debugging of a
// finished search.
func (n *Node) MostVisitedPath() string {
	var sb strings.Builder
	node := n
	for {
		sb.WriteString(node.Visualise())
		sb.WriteString(strings.Repeat("-", 20))
		sb.WriteByte('\n')
		_, next, ok := node.MostVisitedChild()
		if !ok {
			break
		}
		node = next
	}
	return sb.String()
}

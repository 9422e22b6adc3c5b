package board

import (
	"strings"
	"unicode"
)

// Render draws an ASCII representation of the board, bottom row last
// so it reads the same way up as the Battlesnake web UI. Used by
// search diagnostics (the Node.Visualise obligation in the tree
// component).
func Render(b Board) string {
	var sb strings.Builder

	height := b.Height + 2
	width := b.Width + 2
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				grid[y][x] = 'x'
			} else {
				grid[y][x] = '.'
			}
		}
	}

	row := func(boardY int) int { return height - 1 - (boardY + 1) }

	for _, f := range b.Food {
		if f.Y >= 0 && f.Y < b.Height {
			grid[row(f.Y)][f.X+1] = '*'
		}
	}
	for _, h := range b.Hazards {
		if h.Y >= 0 && h.Y < b.Height {
			grid[row(h.Y)][h.X+1] = '#'
		}
	}
	for i, s := range b.Snakes {
		if len(s.Body) == 0 {
			continue
		}
		ch := rune('a' + i)
		if ch > 'z' {
			ch = '?'
		}
		grid[row(s.Head.Y)][s.Head.X+1] = unicode.ToUpper(ch)
		for _, part := range s.Body[1:] {
			grid[row(part.Y)][part.X+1] = ch
		}
	}

	for _, line := range grid {
		for _, c := range line {
			sb.WriteRune(c)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

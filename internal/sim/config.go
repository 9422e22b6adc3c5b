// Package sim implements the Game Runner & Stats component: it drives
// a set of agents through randomly-generated starting positions,
// collects per-game results and aggregates them into win-rate tables,
// grounded on the benchmarking harness supplementing this spec from
// its original source.
package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/mctsnake/engine/internal/board"
)

// Config controls random game generation and the turn cap.
type Config struct {
	Width          int
	Height         int
	NumSnakes      int
	InitialHealth  int
	InitialLength  int
	NumFood        int
	MaxTurns       int
}

// Standard4Snake is the default ruleset: an 11x11 board, 4 snakes,
// 5 food.
func Standard4Snake() Config {
	return Config{Width: 11, Height: 11, NumSnakes: 4, InitialHealth: 100, InitialLength: 3, NumFood: 5, MaxTurns: 500}
}

// Duel is a 2-snake, 3-food variant of the standard config.
func Duel() Config {
	cfg := Standard4Snake()
	cfg.NumSnakes = 2
	cfg.NumFood = 3
	return cfg
}

var standardStartPositions = []board.Point{
	{X: 1, Y: 1}, {X: 1, Y: 5}, {X: 1, Y: 9},
	{X: 5, Y: 1}, {X: 5, Y: 9},
	{X: 9, Y: 1}, {X: 9, Y: 5}, {X: 9, Y: 9},
}

// GenerateRandomGame returns a fresh board with snakes placed on a
// shuffled subset of the eight standard corner/edge starting spots and
// food scattered on unoccupied cells.
func GenerateRandomGame(cfg Config) board.Board {
	positions := append([]board.Point(nil), standardStartPositions...)
	rand.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })
	positions = positions[:cfg.NumSnakes]

	snakes := make([]board.Snake, cfg.NumSnakes)
	occupied := make(map[board.Point]bool, cfg.NumSnakes)
	for i, pos := range positions {
		body := make([]board.Point, cfg.InitialLength)
		for j := range body {
			body[j] = pos
		}
		snakes[i] = board.Snake{
			ID:     fmt.Sprintf("snake_%d", i),
			Name:   fmt.Sprintf("Snake %d", i),
			Head:   pos,
			Body:   body,
			Health: cfg.InitialHealth,
		}
		occupied[pos] = true
	}

	var food []board.Point
	for len(food) < cfg.NumFood {
		p := board.Point{X: rand.IntN(cfg.Width), Y: rand.IntN(cfg.Height)}
		if occupied[p] {
			continue
		}
		dup := false
		for _, f := range food {
			if f == p {
				dup = true
				break
			}
		}
		if !dup {
			food = append(food, p)
		}
	}

	return board.Board{
		Height: cfg.Height,
		Width:  cfg.Width,
		Food:   food,
		Snakes: snakes,
	}
}

// Package strategy provides the reference placement and movement
// strategies: a deterministic scanning placer and a depth-bounded
// minimax actor.
package strategy

import (
	"fmt"

	"fish/game"
)

// ScanPlacement returns the first in-bounds, non-hole, unoccupied
// position in row-major order: row ascending, column ascending within
// a row. Deterministic.
func ScanPlacement(state *game.GameState) (game.Position, error) {
	for row := 0; row < state.Board.Height(); row++ {
		for col := 0; col < state.Board.Width(); col++ {
			pos := game.Position{Row: row, Col: col}
			tile, err := state.Board.Tile(pos)
			if err != nil {
				return game.Position{}, err
			}
			if tile.IsHole() || state.OccupiedAt(pos) {
				continue
			}
			return pos, nil
		}
	}
	return game.Position{}, fmt.Errorf("no free tile left to place a penguin on")
}

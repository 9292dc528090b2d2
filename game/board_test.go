package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("uniform fish count fills every tile", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 4, Width: 3, Fish: 2})

		require.NoError(t, err)
		require.Equal(t, 12, board.TileCount(), "every tile should carry fish")
		tile, err := board.Tile(Position{Row: 3, Col: 2})
		require.NoError(t, err)
		require.Equal(t, 2, tile.Fish())
	})

	t.Run("explicit layout places holes and fish as given", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{
			Height: 2,
			Width:  2,
			Layout: [][]int{{0, 3}, {1, 0}},
		})

		require.NoError(t, err)
		require.Equal(t, 2, board.TileCount())
		hole, err := board.Tile(Position{Row: 0, Col: 0})
		require.NoError(t, err)
		require.True(t, hole.IsHole())
		fish, err := board.Tile(Position{Row: 0, Col: 1})
		require.NoError(t, err)
		require.Equal(t, 3, fish.Fish())
	})

	t.Run("layout dimensions must match the config", func(t *testing.T) {
		_, err := NewBoard(BoardConfig{Height: 2, Width: 2, Layout: [][]int{{1, 1}}})
		require.Error(t, err)

		_, err = NewBoard(BoardConfig{Height: 1, Width: 2, Layout: [][]int{{1}}})
		require.Error(t, err)
	})

	t.Run("min-one-fish config yields at least that many one-fish tiles", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 2, Width: 2, MinOneFishTiles: 3, DefaultFish: 2})

		require.NoError(t, err)
		oneFish := 0
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				tile, err := board.Tile(Position{Row: r, Col: c})
				require.NoError(t, err)
				require.False(t, tile.IsHole())
				if tile.Fish() == 1 {
					oneFish++
				}
			}
		}
		require.GreaterOrEqual(t, oneFish, 3)
	})

	t.Run("degenerate configs are rejected", func(t *testing.T) {
		_, err := NewBoard(BoardConfig{Height: 0, Width: 3, Fish: 1})
		require.Error(t, err)

		_, err = NewBoard(BoardConfig{Height: 2, Width: 2, Fish: 0})
		require.Error(t, err, "uniform fish count must be positive")

		_, err = NewBoard(BoardConfig{Height: 2, Width: 2, MinOneFishTiles: 5})
		require.Error(t, err, "cannot require more one-fish tiles than cells")
	})
}

func TestBoardRemoveTile(t *testing.T) {
	t.Run("removal leaves a hole and does not touch the old board", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 2, Width: 2, Fish: 1})
		require.NoError(t, err)

		removed, err := board.RemoveTile(Position{Row: 1, Col: 1})
		require.NoError(t, err)

		tile, err := removed.Tile(Position{Row: 1, Col: 1})
		require.NoError(t, err)
		require.True(t, tile.IsHole())
		require.Equal(t, 3, removed.TileCount())

		old, err := board.Tile(Position{Row: 1, Col: 1})
		require.NoError(t, err)
		require.False(t, old.IsHole(), "the original board should be unchanged")
	})

	t.Run("removing a hole is idempotent", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 2, Width: 2, Fish: 1})
		require.NoError(t, err)

		once, err := board.RemoveTile(Position{Row: 0, Col: 0})
		require.NoError(t, err)
		twice, err := once.RemoveTile(Position{Row: 0, Col: 0})
		require.NoError(t, err)

		require.Equal(t, once, twice)
	})

	t.Run("removal outside the board is rejected", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 2, Width: 2, Fish: 1})
		require.NoError(t, err)

		_, err = board.RemoveTile(Position{Row: 2, Col: 0})
		require.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBoardReachable(t *testing.T) {
	t.Run("rays from a corner follow the hex directions", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 4, Width: 3, Fish: 1})
		require.NoError(t, err)

		got := board.Reachable(Position{Row: 0, Col: 0})

		require.Equal(t, []Position{
			{Row: 1, Col: 0},
			{Row: 2, Col: 0},
			{Row: 2, Col: 1},
			{Row: 3, Col: 1},
		}, got)
	})

	t.Run("rays from the middle cover all six directions", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 4, Width: 3, Fish: 1})
		require.NoError(t, err)

		got := board.Reachable(Position{Row: 2, Col: 1})

		require.Equal(t, []Position{
			{Row: 0, Col: 0},
			{Row: 0, Col: 1},
			{Row: 0, Col: 2},
			{Row: 1, Col: 0},
			{Row: 1, Col: 1},
			{Row: 3, Col: 0},
			{Row: 3, Col: 1},
		}, got)
	})

	t.Run("a hole interrupts the ray", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 4, Width: 3, Fish: 1})
		require.NoError(t, err)
		board, err = board.RemoveTile(Position{Row: 2, Col: 1})
		require.NoError(t, err)

		got := board.Reachable(Position{Row: 0, Col: 0})

		require.Equal(t, []Position{
			{Row: 1, Col: 0},
			{Row: 2, Col: 0},
		}, got, "the southeast ray should stop before the hole")
	})

	t.Run("a lone tile reaches nothing", func(t *testing.T) {
		board, err := NewBoard(BoardConfig{Height: 1, Width: 1, Fish: 1})
		require.NoError(t, err)

		require.Empty(t, board.Reachable(Position{Row: 0, Col: 0}))
	})
}

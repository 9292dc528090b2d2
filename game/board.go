package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Tile is the content of one board cell: the number of fish on it, or
// a hole when zero.
type Tile int

// Hole is the tile left behind once its fish have been harvested.
const Hole Tile = 0

// IsHole reports whether the tile is impassable.
func (t Tile) IsHole() bool {
	return t == Hole
}

// Fish returns the number of fish on the tile.
func (t Tile) Fish() int {
	return int(t)
}

// BoardConfig describes how to build a board. Exactly one of the
// content fields is used, in this precedence order: Layout, then
// MinOneFishTiles, then Fish.
type BoardConfig struct {
	Height int
	Width  int

	// Fish fills every tile with this uniform fish count.
	Fish int

	// Layout gives explicit per-cell fish counts, row by row. Zero is
	// a hole.
	Layout [][]int

	// MinOneFishTiles requests a board with at least this many
	// one-fish tiles; the rest carry DefaultFish, or one fish when
	// DefaultFish is below one.
	MinOneFishTiles int
	DefaultFish     int
}

// Board is a rectangular grid of tiles. Operations that change tiles
// return a new board sharing no mutable state with the old one.
type Board struct {
	height int
	width  int
	tiles  [][]Tile
}

// NewBoard builds a board from config.
func NewBoard(config BoardConfig) (Board, error) {
	if config.Height <= 0 || config.Width <= 0 {
		return Board{}, fmt.Errorf("board dimensions must be positive, got %dx%d", config.Height, config.Width)
	}

	tiles := make([][]Tile, config.Height)
	for r := range tiles {
		tiles[r] = make([]Tile, config.Width)
	}

	switch {
	case config.Layout != nil:
		if len(config.Layout) != config.Height {
			return Board{}, fmt.Errorf("layout has %d rows, want %d", len(config.Layout), config.Height)
		}
		for r, row := range config.Layout {
			if len(row) != config.Width {
				return Board{}, fmt.Errorf("layout row %d has %d columns, want %d", r, len(row), config.Width)
			}
			for c, fish := range row {
				if fish < 0 {
					return Board{}, fmt.Errorf("layout cell (%d,%d) has negative fish count %d", r, c, fish)
				}
				tiles[r][c] = Tile(fish)
			}
		}
	case config.MinOneFishTiles > 0:
		if config.MinOneFishTiles > config.Height*config.Width {
			return Board{}, fmt.Errorf("cannot fit %d one-fish tiles on a %dx%d board",
				config.MinOneFishTiles, config.Height, config.Width)
		}
		fill := config.DefaultFish
		if fill < 1 {
			fill = 1
		}
		placed := 0
		for r := 0; r < config.Height; r++ {
			for c := 0; c < config.Width; c++ {
				if placed < config.MinOneFishTiles {
					tiles[r][c] = 1
					placed++
				} else {
					tiles[r][c] = Tile(fill)
				}
			}
		}
	default:
		if config.Fish < 1 {
			return Board{}, fmt.Errorf("uniform fish count must be positive, got %d", config.Fish)
		}
		for r := range tiles {
			for c := range tiles[r] {
				tiles[r][c] = Tile(config.Fish)
			}
		}
	}

	return Board{height: config.Height, width: config.Width, tiles: tiles}, nil
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.width
}

// InBounds reports whether p lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.height && p.Col >= 0 && p.Col < b.width
}

// Tile returns the tile at p.
func (b Board) Tile(p Position) (Tile, error) {
	if !b.InBounds(p) {
		return Hole, fmt.Errorf("tile at (%d,%d): %w", p.Row, p.Col, ErrOutOfBounds)
	}
	return b.tiles[p.Row][p.Col], nil
}

// RemoveTile returns a new board with the tile at p turned into a
// hole. Removing a hole is a no-op, so removal is idempotent.
func (b Board) RemoveTile(p Position) (Board, error) {
	if !b.InBounds(p) {
		return Board{}, fmt.Errorf("remove tile at (%d,%d): %w", p.Row, p.Col, ErrOutOfBounds)
	}
	next := b.copyTiles()
	next.tiles[p.Row][p.Col] = Hole
	return next, nil
}

// TileCount returns the number of non-hole tiles.
func (b Board) TileCount() int {
	count := 0
	for _, row := range b.tiles {
		for _, t := range row {
			if !t.IsHole() {
				count++
			}
		}
	}
	return count
}

// Reachable returns every non-hole position reachable from src by
// uninterrupted straight-line movement along any of the six
// directions, excluding src itself. Each ray stops at the first hole
// or the board edge. The result is sorted row-major.
func (b Board) Reachable(src Position) []Position {
	var reachable []Position
	for _, d := range Directions {
		for p := src.Neighbor(d); b.InBounds(p) && !b.tiles[p.Row][p.Col].IsHole(); p = p.Neighbor(d) {
			reachable = append(reachable, p)
		}
	}
	slices.SortFunc(reachable, func(a, b Position) int {
		if a == b {
			return 0
		}
		if a.Less(b) {
			return -1
		}
		return 1
	})
	return reachable
}

func (b Board) copyTiles() Board {
	tiles := make([][]Tile, b.height)
	for r, row := range b.tiles {
		tiles[r] = make([]Tile, len(row))
		copy(tiles[r], row)
	}
	return Board{height: b.height, width: b.width, tiles: tiles}
}

// String renders the board for debug output, one row per line, holes
// as dots.
func (b Board) String() string {
	var sb strings.Builder
	for r, row := range b.tiles {
		if r%2 != 0 {
			sb.WriteString("  ")
		}
		for c, t := range row {
			if c > 0 {
				sb.WriteString(" ")
			}
			if t.IsHole() {
				sb.WriteString(".")
			} else {
				fmt.Fprintf(&sb, "%d", t.Fish())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

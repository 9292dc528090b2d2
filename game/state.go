package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Penguin is a token owned by one player, occupying one tile.
type Penguin struct {
	Pos Position
}

// PlayerState is one seat at the table: an assigned color, the fish
// harvested so far, and the penguins placed, in insertion order.
type PlayerState struct {
	Color    PlayerColor
	Score    int
	Penguins []Penguin
}

func (ps PlayerState) copy() PlayerState {
	penguins := make([]Penguin, len(ps.Penguins))
	copy(penguins, ps.Penguins)
	return PlayerState{Color: ps.Color, Score: ps.Score, Penguins: penguins}
}

// GameState is a snapshot of a match: the board, the seated players in
// turn order, and the cursor of the player to act. Treat a state as
// read-only; every operation returns a new state and leaves the
// receiver untouched.
type GameState struct {
	Board   Board
	Players []PlayerState
	Cursor  int
}

// NewGameState seats the given colors, in order, on the board. Colors
// must be distinct.
func NewGameState(board Board, colors []PlayerColor) (*GameState, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("need at least one player")
	}
	seen := map[PlayerColor]bool{}
	players := make([]PlayerState, len(colors))
	for i, c := range colors {
		if seen[c] {
			return nil, fmt.Errorf("duplicate player color %s", c)
		}
		seen[c] = true
		players[i] = PlayerState{Color: c}
	}
	return &GameState{Board: board, Players: players, Cursor: 0}, nil
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	players := make([]PlayerState, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.copy()
	}
	return &GameState{
		Board:   gs.Board.copyTiles(),
		Players: players,
		Cursor:  gs.Cursor,
	}
}

// CurrentPlayer returns the player the cursor points at.
func (gs *GameState) CurrentPlayer() PlayerState {
	return gs.Players[gs.Cursor]
}

// PlayerByColor returns the seated player with the given color.
func (gs *GameState) PlayerByColor(color PlayerColor) (PlayerState, bool) {
	for _, p := range gs.Players {
		if p.Color == color {
			return p, true
		}
	}
	return PlayerState{}, false
}

// OccupiedAt reports whether any penguin of any player sits at p.
func (gs *GameState) OccupiedAt(p Position) bool {
	for _, player := range gs.Players {
		for _, penguin := range player.Penguins {
			if penguin.Pos == p {
				return true
			}
		}
	}
	return false
}

// PlacePenguin returns a new state in which the named player has a new
// penguin at pos. It fails if the color is not seated, pos is out of
// bounds, the target tile is a hole, or any penguin already occupies
// pos. The cursor does not move.
func (gs *GameState) PlacePenguin(color PlayerColor, pos Position) (*GameState, error) {
	idx := -1
	for i, p := range gs.Players {
		if p.Color == color {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("place %s at (%d,%d): %w", color, pos.Row, pos.Col, ErrNoSuchPlayer)
	}
	tile, err := gs.Board.Tile(pos)
	if err != nil {
		return nil, fmt.Errorf("place %s: %w", color, ErrOutOfBounds)
	}
	if tile.IsHole() {
		return nil, fmt.Errorf("place %s at (%d,%d): %w", color, pos.Row, pos.Col, ErrHole)
	}
	if gs.OccupiedAt(pos) {
		return nil, fmt.Errorf("place %s at (%d,%d): %w", color, pos.Row, pos.Col, ErrOccupied)
	}

	next := gs.Copy()
	next.Players[idx].Penguins = append(next.Players[idx].Penguins, Penguin{Pos: pos})
	return next, nil
}

// MovePenguin returns a new state in which the current player's
// penguin at src has moved to dst. On success the mover's score grows
// by the fish on src, the src tile becomes a hole, and the cursor
// advances to the next player.
func (gs *GameState) MovePenguin(src, dst Position) (*GameState, error) {
	if !gs.Board.InBounds(src) || !gs.Board.InBounds(dst) {
		return nil, fmt.Errorf("move (%d,%d)->(%d,%d): %w", src.Row, src.Col, dst.Row, dst.Col, ErrOutOfBounds)
	}
	current := gs.CurrentPlayer()
	penguinIdx := -1
	for i, penguin := range current.Penguins {
		if penguin.Pos == src {
			penguinIdx = i
			break
		}
	}
	if penguinIdx == -1 {
		return nil, fmt.Errorf("move (%d,%d)->(%d,%d): %w", src.Row, src.Col, dst.Row, dst.Col, ErrNoPenguin)
	}
	if gs.OccupiedAt(dst) {
		return nil, fmt.Errorf("move (%d,%d)->(%d,%d): %w", src.Row, src.Col, dst.Row, dst.Col, ErrOccupied)
	}
	if !slices.Contains(gs.BoardMinusPenguins().Reachable(src), dst) {
		return nil, fmt.Errorf("move (%d,%d)->(%d,%d): %w", src.Row, src.Col, dst.Row, dst.Col, ErrUnreachable)
	}

	tile, err := gs.Board.Tile(src)
	if err != nil {
		return nil, err
	}
	board, err := gs.Board.RemoveTile(src)
	if err != nil {
		return nil, err
	}

	next := gs.Copy()
	next.Board = board
	next.Players[gs.Cursor].Score += tile.Fish()
	next.Players[gs.Cursor].Penguins[penguinIdx].Pos = dst
	next.Cursor = (next.Cursor + 1) % len(next.Players)
	return next, nil
}

// RotateToNextPlayer returns a new state with the cursor advanced by
// one seat.
func (gs *GameState) RotateToNextPlayer() *GameState {
	next := gs.Copy()
	next.Cursor = (next.Cursor + 1) % len(next.Players)
	return next
}

// RemoveCurrentPlayer returns a new state without the current player
// and its penguins. The tiles its penguins stood on keep their fish
// and become reachable for the remaining players. The cursor ends up
// on the player that would have acted next.
func (gs *GameState) RemoveCurrentPlayer() *GameState {
	next := gs.Copy()
	next.Players = append(next.Players[:next.Cursor], next.Players[next.Cursor+1:]...)
	if len(next.Players) == 0 {
		next.Cursor = 0
	} else {
		next.Cursor = next.Cursor % len(next.Players)
	}
	return next
}

// BoardMinusPenguins returns a view of the board in which every tile
// occupied by a penguin is a hole. Penguins interrupt straight-line
// movement, so reachability queries go through this view.
func (gs *GameState) BoardMinusPenguins() Board {
	board := gs.Board.copyTiles()
	for _, player := range gs.Players {
		for _, penguin := range player.Penguins {
			board.tiles[penguin.Pos.Row][penguin.Pos.Col] = Hole
		}
	}
	return board
}

// LegalMoves enumerates every legal move for the current player,
// sorted ascending by (From, To). Skip is never included.
func (gs *GameState) LegalMoves() []Action {
	if len(gs.Players) == 0 {
		return nil
	}
	view := gs.BoardMinusPenguins()
	var moves []Action
	for _, penguin := range gs.CurrentPlayer().Penguins {
		for _, dst := range view.Reachable(penguin.Pos) {
			moves = append(moves, Move(penguin.Pos, dst))
		}
	}
	slices.SortFunc(moves, func(a, b Action) int {
		if a == b {
			return 0
		}
		if a.Less(b) {
			return -1
		}
		return 1
	})
	return moves
}

// CanMove reports whether the player with the given color has at
// least one legal move.
func (gs *GameState) CanMove(color PlayerColor) bool {
	player, ok := gs.PlayerByColor(color)
	if !ok {
		return false
	}
	view := gs.BoardMinusPenguins()
	for _, penguin := range player.Penguins {
		if len(view.Reachable(penguin.Pos)) > 0 {
			return true
		}
	}
	return false
}

// AnyoneCanMove reports whether any seated player has a legal move.
func (gs *GameState) AnyoneCanMove() bool {
	for _, p := range gs.Players {
		if gs.CanMove(p.Color) {
			return true
		}
	}
	return false
}

// Validate checks the GameState invariants: distinct colors, every
// penguin on an in-bounds non-hole tile, no two penguins co-located,
// and a cursor that identifies a seated player.
func (gs *GameState) Validate() error {
	if len(gs.Players) > 0 && (gs.Cursor < 0 || gs.Cursor >= len(gs.Players)) {
		return fmt.Errorf("cursor %d does not identify a player among %d", gs.Cursor, len(gs.Players))
	}
	colors := map[PlayerColor]bool{}
	occupied := map[Position]bool{}
	for _, p := range gs.Players {
		if colors[p.Color] {
			return fmt.Errorf("duplicate player color %s", p.Color)
		}
		colors[p.Color] = true
		if p.Score < 0 {
			return fmt.Errorf("player %s has negative score %d", p.Color, p.Score)
		}
		for _, penguin := range p.Penguins {
			tile, err := gs.Board.Tile(penguin.Pos)
			if err != nil {
				return fmt.Errorf("player %s: penguin out of bounds at (%d,%d)", p.Color, penguin.Pos.Row, penguin.Pos.Col)
			}
			if tile.IsHole() {
				return fmt.Errorf("player %s: penguin on a hole at (%d,%d)", p.Color, penguin.Pos.Row, penguin.Pos.Col)
			}
			if occupied[penguin.Pos] {
				return fmt.Errorf("two penguins share (%d,%d)", penguin.Pos.Row, penguin.Pos.Col)
			}
			occupied[penguin.Pos] = true
		}
	}
	return nil
}

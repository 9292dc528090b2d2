package game

import "errors"

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrHole         = errors.New("tile is a hole")
	ErrOccupied     = errors.New("tile is occupied by a penguin")
	ErrUnreachable  = errors.New("destination is not reachable from source")
	ErrNoSuchPlayer = errors.New("no seated player with that color")
	ErrNoPenguin    = errors.New("current player has no penguin at source")
)

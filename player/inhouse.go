package player

import (
	"fish/game"
	"fish/strategy"
)

// InHouse is the built-in agent: it places with the scanning placer
// and moves with depth-bounded minimax. It never times out and never
// cheats, which makes it the reference opponent for tests and the
// demo CLI.
type InHouse struct {
	name  string
	depth int
	color game.PlayerColor
}

// NewInHouse builds an in-house agent searching the given minimax
// depth.
func NewInHouse(name string, depth int) *InHouse {
	if depth < 1 {
		depth = 1
	}
	return &InHouse{name: name, depth: depth}
}

func (p *InHouse) Name() string {
	return p.name
}

func (p *InHouse) AssignColor(color game.PlayerColor) error {
	p.color = color
	return nil
}

func (p *InHouse) PlacePenguin(state *game.GameState) (game.Position, error) {
	return strategy.ScanPlacement(state)
}

func (p *InHouse) TakeTurn(tree *game.GameTree) (game.Action, error) {
	return strategy.MinimaxMove(tree, p.depth)
}

func (p *InHouse) InformDisqualified() error {
	return nil
}

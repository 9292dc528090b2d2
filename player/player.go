// Package player defines the contract the referee drives external
// agents through, plus the in-house strategy-backed agent.
package player

import "fish/game"

// Player is an external agent. The referee invokes each operation
// under a timeout; a call that returns an error, a malformed value,
// or nothing within its budget gets the agent disqualified. Agents
// are untrusted: they receive defensive copies of referee state and
// nothing they do after a timeout reaches the match.
type Player interface {
	// Name returns the agent's external handle, used in results and
	// logs.
	Name() string

	// AssignColor tells the agent which color it plays this match.
	AssignColor(color game.PlayerColor) error

	// PlacePenguin asks for the position of the agent's next penguin.
	PlacePenguin(state *game.GameState) (game.Position, error)

	// TakeTurn asks for a Move or Skip action at the root of tree.
	TakeTurn(tree *game.GameTree) (game.Action, error)

	// InformDisqualified notifies the agent it is out of the match.
	// One-way; the referee ignores the outcome.
	InformDisqualified() error
}

// Package observer defines the event stream a referee fans out to
// registered observers, and a zerolog-backed reporter.
package observer

import "fish/game"

// MatchResult is the color-level summary delivered with the final
// event. Winners and losers are in seating order, failed and cheaters
// in disqualification order.
type MatchResult struct {
	Winners  []game.PlayerColor
	Losers   []game.PlayerColor
	Failed   []game.PlayerColor
	Cheaters []game.PlayerColor
}

// Observer receives match events. Each delivery is invoked by the
// referee under a timeout; an observer that errors, panics, or runs
// past its budget is dropped for the rest of the match. Events arrive
// in the order the referee emitted them. EndOfGame is always the last
// event a surviving observer sees.
type Observer interface {
	// Register delivers the current state when the observer is
	// attached to a running match, and the initial state at match
	// start.
	Register(state *game.GameState) error

	// PenguinPlacement reports an accepted placement.
	PenguinPlacement(color game.PlayerColor, pos game.Position) error

	// TurnAction reports a movement-phase action, including automatic
	// skips.
	TurnAction(color game.PlayerColor, action game.Action) error

	// Disqualify reports that the player with the given color was
	// removed from the match.
	Disqualify(color game.PlayerColor) error

	// EndOfGame reports the final result.
	EndOfGame(result MatchResult) error
}

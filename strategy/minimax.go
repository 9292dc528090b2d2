package strategy

import (
	"fmt"
	"math"

	"fish/game"
)

// MinimaxMove picks an action for the current player of the tree by
// depth-bounded minimax. The acting player maximizes its own eventual
// score; every other seated player minimizes it. Depth counts only
// moves by the maximizer. Between actions of equal value the
// lexicographically smaller (From.Row, From.Col, To.Row, To.Col)
// wins; Skip compares greater than every move.
func MinimaxMove(tree *game.GameTree, depth int) (game.Action, error) {
	if depth < 1 {
		return game.Action{}, fmt.Errorf("minimax depth must be at least 1, got %d", depth)
	}
	children := tree.Children()
	if len(children) == 0 {
		return game.Action{}, fmt.Errorf("no actions available: tree is terminal")
	}

	maximizer := tree.State.CurrentPlayer().Color

	// Children come sorted in tie-break order, so the first best child
	// wins ties.
	best := children[0].Action
	bestValue := math.MinInt
	for _, child := range children {
		remaining := depth
		if child.Action.Type == game.MoveAction {
			remaining--
		}
		value := minimaxValue(child.Tree, maximizer, remaining)
		if value > bestValue {
			bestValue = value
			best = child.Action
		}
	}
	return best, nil
}

func minimaxValue(tree *game.GameTree, maximizer game.PlayerColor, remaining int) int {
	score, seated := maximizerScore(tree.State, maximizer)
	if !seated || remaining == 0 {
		return score
	}

	children := tree.Children()
	if len(children) == 0 {
		return score
	}

	if tree.State.CurrentPlayer().Color == maximizer {
		best := math.MinInt
		for _, child := range children {
			next := remaining
			if child.Action.Type == game.MoveAction {
				next--
			}
			if value := minimaxValue(child.Tree, maximizer, next); value > best {
				best = value
			}
		}
		return best
	}

	worst := math.MaxInt
	for _, child := range children {
		if value := minimaxValue(child.Tree, maximizer, remaining); value < worst {
			worst = value
		}
	}
	return worst
}

// maximizerScore returns the maximizer's current score and whether it
// is still seated; a color that is not seated scores 0. The game tree
// never removes players and the maximizer is the acting player at the
// root, so inside a search the maximizer is always seated.
func maximizerScore(state *game.GameState, maximizer game.PlayerColor) (int, bool) {
	player, ok := state.PlayerByColor(maximizer)
	if !ok {
		return 0, false
	}
	return player.Score, true
}

package game

// GameTree is a lazily computed node in the tree of reachable states.
// Children are generated on first access and memoized one step deep;
// deeper expansion happens only when a child's own Children is asked
// for, so bounded-depth search never forces the whole tree.
type GameTree struct {
	State *GameState

	children []Child
	expanded bool
}

// Child is an edge of the tree: the action taken and the resulting
// subtree.
type Child struct {
	Action Action
	Tree   *GameTree
}

// NewGameTree roots a tree at state.
func NewGameTree(state *GameState) *GameTree {
	return &GameTree{State: state}
}

// Children returns every legal successor of this node for the current
// player:
//   - one child per legal move, when the current player has any;
//   - a single Skip child after rotation, when only other players can
//     still move;
//   - nothing, when no seated player can move (terminal node).
func (t *GameTree) Children() []Child {
	if t.expanded {
		return t.children
	}
	t.expanded = true

	if len(t.State.Players) == 0 {
		return nil
	}

	moves := t.State.LegalMoves()
	if len(moves) > 0 {
		t.children = make([]Child, 0, len(moves))
		for _, move := range moves {
			next, err := t.State.MovePenguin(move.From, move.To)
			if err != nil {
				// Legal moves come from the same state; a failure here
				// is an engine invariant violation.
				panic(err)
			}
			t.children = append(t.children, Child{Action: move, Tree: NewGameTree(next)})
		}
		return t.children
	}

	if t.State.AnyoneCanMove() {
		t.children = []Child{{Action: Skip, Tree: NewGameTree(t.State.RotateToNextPlayer())}}
	}
	return t.children
}

// IsTerminal reports whether no seated player can move from this node.
func (t *GameTree) IsTerminal() bool {
	return len(t.Children()) == 0
}

// Find returns the subtree reached by action, if action is a legal
// child of this node.
func (t *GameTree) Find(action Action) (*GameTree, bool) {
	for _, child := range t.Children() {
		if child.Action == action {
			return child.Tree, true
		}
	}
	return nil, false
}

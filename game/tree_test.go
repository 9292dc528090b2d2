package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameTreeChildren(t *testing.T) {
	t.Run("children enumerate every legal move of the current player", func(t *testing.T) {
		board := mustBoard(t, BoardConfig{Height: 4, Width: 3, Fish: 1})
		state := mustState(t, board, Red, White)
		state = mustPlace(t, state, Red, Position{Row: 0, Col: 0})
		state = mustPlace(t, state, White, Position{Row: 3, Col: 2})

		tree := NewGameTree(state)
		children := tree.Children()

		require.Equal(t, state.LegalMoves(), actionsOf(children))
		for _, child := range children {
			require.NoError(t, child.Tree.State.Validate(), "every child state must satisfy the invariants")
			require.Equal(t, White, child.Tree.State.CurrentPlayer().Color)
		}
	})

	t.Run("a stuck player with movable opponents yields a single skip child", func(t *testing.T) {
		board := mustBoard(t, BoardConfig{
			Height: 5,
			Width:  1,
			Layout: [][]int{{1}, {0}, {1}, {0}, {1}},
		})
		state := mustState(t, board, Red, White)
		state = mustPlace(t, state, Red, Position{Row: 0, Col: 0})
		state = mustPlace(t, state, White, Position{Row: 2, Col: 0})

		tree := NewGameTree(state)
		children := tree.Children()

		require.Len(t, children, 1)
		require.Equal(t, Skip, children[0].Action)
		require.Equal(t, White, children[0].Tree.State.CurrentPlayer().Color,
			"the skip child should hand the turn to the next player")
		require.False(t, tree.IsTerminal())
	})

	t.Run("a node where nobody can move is terminal", func(t *testing.T) {
		board := mustBoard(t, BoardConfig{
			Height: 5,
			Width:  1,
			Layout: [][]int{{1}, {0}, {0}, {0}, {1}},
		})
		state := mustState(t, board, Red, White)
		state = mustPlace(t, state, Red, Position{Row: 0, Col: 0})
		state = mustPlace(t, state, White, Position{Row: 4, Col: 0})

		tree := NewGameTree(state)

		require.True(t, tree.IsTerminal())
		require.Empty(t, tree.Children())
	})

	t.Run("children are computed on first access and memoized", func(t *testing.T) {
		board := mustBoard(t, BoardConfig{Height: 4, Width: 3, Fish: 1})
		state := mustState(t, board, Red, White)
		state = mustPlace(t, state, Red, Position{Row: 0, Col: 0})
		state = mustPlace(t, state, White, Position{Row: 3, Col: 2})

		tree := NewGameTree(state)
		require.False(t, tree.expanded, "a fresh node must not expand eagerly")

		first := tree.Children()
		require.True(t, tree.expanded)
		for _, child := range first {
			require.False(t, child.Tree.expanded, "grandchildren must stay unexpanded")
		}

		second := tree.Children()
		require.Len(t, second, len(first))
		for i := range first {
			require.Same(t, first[i].Tree, second[i].Tree, "children must be memoized, not rebuilt")
		}
	})
}

func TestGameTreeFind(t *testing.T) {
	board := mustBoard(t, BoardConfig{Height: 4, Width: 3, Fish: 1})
	state := mustState(t, board, Red, White)
	state = mustPlace(t, state, Red, Position{Row: 0, Col: 0})
	state = mustPlace(t, state, White, Position{Row: 3, Col: 2})

	tree := NewGameTree(state)

	t.Run("finds a legal child by its action", func(t *testing.T) {
		child, ok := tree.Find(Move(Position{Row: 0, Col: 0}, Position{Row: 2, Col: 0}))
		require.True(t, ok)
		require.NotNil(t, child)
	})

	t.Run("rejects an action that is not a child", func(t *testing.T) {
		_, ok := tree.Find(Move(Position{Row: 0, Col: 0}, Position{Row: 0, Col: 1}))
		require.False(t, ok, "a move to an occupied-or-unreachable tile is not an edge")

		_, ok = tree.Find(Skip)
		require.False(t, ok, "skip is not an edge while the player can move")
	})
}

func actionsOf(children []Child) []Action {
	actions := make([]Action, len(children))
	for i, child := range children {
		actions[i] = child.Action
	}
	return actions
}

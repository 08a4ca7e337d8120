package searcher

import (
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
)

func TestExpectimax(t *testing.T) {
	t.Run("averaging two ghost outcomes", func(t *testing.T) {
		tr := tree{agents: 2}
		root := tr.node("root", tr.node("G", tr.leaves("g", 4, 10)...))
		s := NewSearcher(Expectimax, WithDepth(1))

		got, _ := s.Search(root)

		require.Equal(t, 7.0, got.Value, "Chance node should take the arithmetic mean")
		require.Equal(t, game.Action("a"), got.Action)
	})

	t.Run("chance node result carries no action", func(t *testing.T) {
		tr := tree{agents: 2}
		run := newRun(Expectimax, game.EvaluateScore, 1)

		got := run.expectimax(tr.node("G", tr.leaves("g", 4, 10)...), 0, 1)

		require.Equal(t, 7.0, got.Value)
		require.False(t, got.HasAction, "Ghosts do not choose under expectimax")
	})

	t.Run("nesting chance nodes for several ghosts", func(t *testing.T) {
		tr := tree{agents: 3}
		root := tr.node("root",
			tr.node("G1",
				tr.node("G2a", tr.leaves("a", 4, 10)...),
				tr.node("G2b", tr.leaves("b", 1)...),
			),
		)
		s := NewSearcher(Expectimax, WithDepth(1))

		got, _ := s.Search(root)

		require.Equal(t, 4.0, got.Value, "Mean of 7 and 1")
	})

	t.Run("preferring the better average over the better worst case", func(t *testing.T) {
		tr := tree{agents: 2}
		root := tr.node("root",
			tr.node("A", tr.leaves("a", 0, 10)...),
			tr.node("B", tr.leaves("b", 3, 3)...),
		)

		adversarial, _ := NewSearcher(Minimax, WithDepth(1)).Search(root)
		random, _ := NewSearcher(Expectimax, WithDepth(1)).Search(root)

		require.Equal(t, game.Action("b"), adversarial.Action)
		require.Equal(t, game.Action("a"), random.Action)
		require.Equal(t, 5.0, random.Value)
	})

	t.Run("first action wins ties", func(t *testing.T) {
		tr := tree{agents: 2}
		root := tr.node("root",
			tr.node("A", tr.leaves("a", 2, 8)...),
			tr.node("B", tr.leaves("b", 5)...),
		)

		got, _ := NewSearcher(Expectimax, WithDepth(1)).Search(root)

		require.Equal(t, game.Action("a"), got.Action)
	})
}

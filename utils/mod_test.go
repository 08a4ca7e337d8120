package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("finding the first match", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first index of the item")
	})

	t.Run("missing item", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{1, 2, 3}, 4), "Should return -1 when the item is absent")
		require.False(t, Contains([]int{}, 4), "Empty slice should contain nothing")
	})
}

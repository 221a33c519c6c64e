package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/tagsoup/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		m := orderedmap.New[string, string]()
		m.Set("b", "1")
		m.Set("a", "2")
		m.Set("c", "3")

		var keys []string
		for k := range m.Range() {
			keys = append(keys, k)
		}
		require.Equal(t, []string{"b", "a", "c"}, keys)
	})
	t.Run("Overwrite", func(t *testing.T) {
		m := orderedmap.New[string, string]()
		m.Set("href", "1")
		m.Set("class", "x")
		m.Set("href", "2")

		require.Equal(t, 2, m.Len(), "overwrite does not add an entry")
		v, ok := m.Get("href")
		require.True(t, ok)
		require.Equal(t, "2", v, "last write wins")

		var keys []string
		for k := range m.Range() {
			keys = append(keys, k)
		}
		require.Equal(t, []string{"href", "class"}, keys, "position of first write is kept")
	})
	t.Run("Missing", func(t *testing.T) {
		m := orderedmap.New[string, int]()
		_, ok := m.Get("nope")
		require.False(t, ok)
	})
}

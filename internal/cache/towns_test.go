package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTownsColdByDefault(t *testing.T) {
	t.Parallel()

	c := NewTowns()
	towns, warm := c.Get()
	require.False(t, warm)
	require.Empty(t, towns)
}

func TestTownsSetAndGet(t *testing.T) {
	t.Parallel()

	c := NewTowns()
	c.Set([]string{"Thais", "Carlin"})

	towns, warm := c.Get()
	require.True(t, warm)
	require.Equal(t, []string{"Thais", "Carlin"}, towns)
}

// A warmed cache holding an empty list is distinct from a cold cache.
func TestTownsEmptyButWarm(t *testing.T) {
	t.Parallel()

	c := NewTowns()
	c.Set(nil)

	towns, warm := c.Get()
	require.True(t, warm)
	require.Empty(t, towns)
}

func TestTownsGetReturnsCopy(t *testing.T) {
	t.Parallel()

	c := NewTowns()
	c.Set([]string{"Thais", "Carlin"})

	towns, _ := c.Get()
	towns[0] = "mutated"

	again, _ := c.Get()
	require.Equal(t, []string{"Thais", "Carlin"}, again)
}

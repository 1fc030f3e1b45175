package ordmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vouch-dev/vouch/internal/ordmap"
)

func TestMap_AppendAndOrder(t *testing.T) {
	m := ordmap.New()
	m.Append("b", "1")
	m.Append("a", "2")
	m.Append("b", "3")

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, []string{"1", "3"}, m.Get("b"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, m.Total())
}

func TestMap_AppendNothingCreatesNoKey(t *testing.T) {
	m := ordmap.New()
	m.Append("a")
	assert.False(t, m.Has("a"))
	assert.Equal(t, 0, m.Len())
}

func TestMap_PopLast(t *testing.T) {
	t.Run("removes only the last value", func(t *testing.T) {
		m := ordmap.New()
		m.Append("a", "1", "2")
		v, ok := m.PopLast("a")
		require.True(t, ok)
		assert.Equal(t, "2", v)
		assert.Equal(t, []string{"1"}, m.Get("a"))
	})

	t.Run("drops the key when the list empties", func(t *testing.T) {
		m := ordmap.New()
		m.Append("a", "1")
		m.Append("b", "2")
		_, ok := m.PopLast("a")
		require.True(t, ok)
		assert.False(t, m.Has("a"))
		assert.Equal(t, []string{"b"}, m.Keys())
	})

	t.Run("missing key", func(t *testing.T) {
		m := ordmap.New()
		_, ok := m.PopLast("nope")
		assert.False(t, ok)
	})
}

func TestMap_SetLast(t *testing.T) {
	m := ordmap.New()
	m.Append("a", "1", "2")
	require.True(t, m.SetLast("a", "x"))
	assert.Equal(t, []string{"1", "x"}, m.Get("a"))
	assert.False(t, m.SetLast("missing", "x"))
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := ordmap.New()
	m.Append("a", "1")
	c := m.Clone()
	c.Append("a", "2")
	c.Append("b", "3")

	assert.Equal(t, []string{"1"}, m.Get("a"))
	assert.False(t, m.Has("b"))
	assert.Equal(t, []string{"1", "2"}, c.Get("a"))
}

func TestMap_RangeStops(t *testing.T) {
	m := ordmap.New()
	m.Append("a", "1")
	m.Append("b", "2")
	var seen []string
	m.Range(func(k string, _ []string) bool {
		seen = append(seen, k)
		return false
	})
	assert.Equal(t, []string{"a"}, seen)
}

func TestMap_GetReturnsCopy(t *testing.T) {
	m := ordmap.New()
	m.Append("a", "1")
	got := m.Get("a")
	got[0] = "mutated"
	assert.Equal(t, []string{"1"}, m.Get("a"))
}

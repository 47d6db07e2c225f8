package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genidx"
)

func TestIndices(t *testing.T) {
	ships := genidx.NewDynamic[ship, uint32, uint32]()
	rows := New[row, string](0)
	var where Indices[genidx.Valid[ship, uint32, uint32], Position[row]]

	s0, err := ships.Create()
	require.NoError(t, err)
	s1, err := ships.Create()
	require.NoError(t, err)

	where.Insert(s0, rows.Push("rocinante"))
	where.Insert(s1, rows.Push("canterbury"))
	assert.Equal(t, 2, where.Len())

	p, ok := where.Get(s1)
	require.True(t, ok)
	name, _ := rows.Get(p)
	assert.Equal(t, "canterbury", name)

	t.Run("gap panics", func(t *testing.T) {
		var x Indices[shipID, int]
		assert.Panics(t, func() { x.Insert(genidx.NewID[ship](uint32(2), uint32(1)), 1) })
	})

	old, ok := where.Remove(s0)
	require.True(t, ok)
	assert.Equal(t, 0, old.Row())
	_, ok = where.Get(s0)
	assert.False(t, ok)
	_, ok = where.Remove(s0)
	assert.False(t, ok)
	assert.Equal(t, 2, where.Len(), "removal clears the slot")

	s2, err := ships.Create()
	require.NoError(t, err)
	_, ok = where.Get(s2)
	assert.False(t, ok, "unwritten slot")

	x := NewIndices[shipID, int](4)
	_, ok = x.Remove(genidx.NewID[ship](uint32(0), uint32(1)))
	assert.False(t, ok)
}

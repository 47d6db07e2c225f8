package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct{}

func TestColumn(t *testing.T) {
	c := New[row, string](2)

	a := c.Push("a")
	b := c.Push("b")
	d := c.Push("c")
	assert.Equal(t, 0, a.Row())
	assert.Equal(t, 2, d.Slot())
	assert.Equal(t, "row 1", b.String())
	assert.Equal(t, 3, c.Len())

	v, ok := c.Get(b)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	*c.Ptr(b) = "B"
	v, _ = c.Get(b)
	assert.Equal(t, "B", v)

	t.Run("swap remove moves last row", func(t *testing.T) {
		assert.Equal(t, "a", c.SwapRemove(a))
		assert.Equal(t, 2, c.Len())
		v, _ := c.Get(a)
		assert.Equal(t, "c", v)
		_, ok := c.Get(d)
		assert.False(t, ok)
		assert.Nil(t, c.Ptr(d))
	})

	t.Run("swap remove out of range panics", func(t *testing.T) {
		assert.Panics(t, func() { c.SwapRemove(d) })
	})

	var rows []int
	var vals []string
	for p, v := range c.All() {
		rows = append(rows, p.Row())
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1}, rows)
	assert.Equal(t, []string{"c", "B"}, vals)

	n := 0
	for range c.Positions() {
		n++
	}
	assert.Equal(t, 2, n)
}

func TestColumn_ZeroValue(t *testing.T) {
	var c Column[row, int]
	p := c.Push(4)
	v, ok := c.Get(p)
	require.True(t, ok)
	assert.Equal(t, 4, v)
}

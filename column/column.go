package column

import (
	"fmt"
	"iter"
)

// Position is a row of the table C. It is only meaningful for the column
// that returned it and only until that column swap-removes.
type Position[C any] struct {
	row int
}

// Row returns the row number.
func (p Position[C]) Row() int { return p.row }

// Slot implements genidx.Slotter, so a Position can key a component store
// or Indices.
func (p Position[C]) Slot() int { return p.row }

func (p Position[C]) String() string {
	return fmt.Sprintf("row %d", p.row)
}

// Column is a dense array of T addressed by Position. The zero Column is
// empty and ready to use.
type Column[C, T any] struct {
	values []T
}

// New creates an empty Column with room for capacity values.
func New[C, T any](capacity int) *Column[C, T] {
	return &Column[C, T]{values: make([]T, 0, max(capacity, 0))}
}

// Push appends v and returns its position.
func (c *Column[C, T]) Push(v T) Position[C] {
	c.values = append(c.values, v)
	return Position[C]{row: len(c.values) - 1}
}

// SwapRemove removes the value at p by moving the last value into its
// place. It panics if p is out of range.
func (c *Column[C, T]) SwapRemove(p Position[C]) T {
	last := len(c.values) - 1
	if p.row < 0 || p.row > last {
		panic(fmt.Sprintf("column: swap remove at %s out of range (len %d)", p, len(c.values)))
	}
	v := c.values[p.row]
	c.values[p.row] = c.values[last]
	var zero T
	c.values[last] = zero
	c.values = c.values[:last]
	return v
}

// Get returns the value at p.
func (c *Column[C, T]) Get(p Position[C]) (T, bool) {
	if p.row < 0 || p.row >= len(c.values) {
		var zero T
		return zero, false
	}
	return c.values[p.row], true
}

// Ptr returns a pointer to the value at p, or nil if p is out of range.
// The pointer is invalidated by Push and SwapRemove.
func (c *Column[C, T]) Ptr(p Position[C]) *T {
	if p.row < 0 || p.row >= len(c.values) {
		return nil
	}
	return &c.values[p.row]
}

// Len returns the number of rows.
func (c *Column[C, T]) Len() int {
	return len(c.values)
}

// All iterates rows in order.
func (c *Column[C, T]) All() iter.Seq2[Position[C], T] {
	return func(yield func(Position[C], T) bool) {
		for i, v := range c.values {
			if !yield(Position[C]{row: i}, v) {
				return
			}
		}
	}
}

// Positions iterates every row position in order.
func (c *Column[C, T]) Positions() iter.Seq[Position[C]] {
	return func(yield func(Position[C]) bool) {
		for i := range c.values {
			if !yield(Position[C]{row: i}) {
				return
			}
		}
	}
}

// update applies fn to every row in place.
func (c *Column[C, T]) update(fn func(v *T)) {
	for i := range c.values {
		fn(&c.values[i])
	}
}

package column

import (
	"iter"

	"github.com/hupe1980/genidx"
)

// IDColumn stores an optional id of arena A per row of table C. Rows whose
// id dies are cleared, not removed, so positions stay stable across
// validation.
type IDColumn[C, A any, I genidx.Index, G genidx.Generation] struct {
	ids     Column[C, option[genidx.ID[A, I, G]]]
	tracker genidx.Tracker[A, I, G]
}

// NewIDColumn creates an empty IDColumn with room for capacity rows.
func NewIDColumn[C, A any, I genidx.Index, G genidx.Generation](capacity int) *IDColumn[C, A, I, G] {
	return &IDColumn[C, A, I, G]{ids: *New[C, option[genidx.ID[A, I, G]]](capacity)}
}

// Push appends a row holding h's id. Pushing a raw id instead of a fresh
// Valid proof makes the next Validate rescan.
func (c *IDColumn[C, A, I, G]) Push(h genidx.Handle[A, I, G]) Position[C] {
	if !genidx.Proven(h) {
		c.tracker.MarkDirty()
	}
	return c.ids.Push(some(h.ID()))
}

// PushNone appends an empty row.
func (c *IDColumn[C, A, I, G]) PushNone() Position[C] {
	return c.ids.Push(option[genidx.ID[A, I, G]]{})
}

// SwapRemove removes the row at p, moving the last row into its place, and
// returns the id it held.
func (c *IDColumn[C, A, I, G]) SwapRemove(p Position[C]) (genidx.ID[A, I, G], bool) {
	return c.ids.SwapRemove(p).get()
}

// Get returns the id at p. It does not check liveness.
func (c *IDColumn[C, A, I, G]) Get(p Position[C]) (genidx.ID[A, I, G], bool) {
	o, _ := c.ids.Get(p)
	return o.get()
}

// Len returns the number of rows, empty ones included.
func (c *IDColumn[C, A, I, G]) Len() int {
	return c.ids.Len()
}

// All iterates the rows that hold an id, without checking liveness.
func (c *IDColumn[C, A, I, G]) All() iter.Seq2[Position[C], genidx.ID[A, I, G]] {
	return func(yield func(Position[C], genidx.ID[A, I, G]) bool) {
		for p, o := range c.ids.All() {
			if !o.ok {
				continue
			}
			if !yield(p, o.v) {
				return
			}
		}
	}
}

// Kill eagerly clears every row holding an id the caller just killed. It
// does not count as a synchronization.
func (c *IDColumn[C, A, I, G]) Kill(killed genidx.ID[A, I, G]) int {
	return c.clear(func(id genidx.ID[A, I, G]) bool { return id == killed })
}

// Validate synchronizes the column with src and returns a view whose ids
// are all alive. The view stays usable until src kills again.
func (c *IDColumn[C, A, I, G]) Validate(src genidx.Source[A, I, G]) IDColumnView[C, A, I, G] {
	stamp := c.tracker.Sync(src, c.Kill, func(alive func(genidx.ID[A, I, G]) bool) int {
		return c.clear(func(id genidx.ID[A, I, G]) bool { return !alive(id) })
	})
	return IDColumnView[C, A, I, G]{c: c, stamp: stamp}
}

func (c *IDColumn[C, A, I, G]) clear(dead func(genidx.ID[A, I, G]) bool) int {
	n := 0
	c.ids.update(func(o *option[genidx.ID[A, I, G]]) {
		if o.ok && dead(o.v) {
			*o = option[genidx.ID[A, I, G]]{}
			n++
		}
	})
	return n
}

// IDColumnView is a validated IDColumn. Every accessor panics once the
// allocator it was validated against kills an id.
type IDColumnView[C, A any, I genidx.Index, G genidx.Generation] struct {
	c     *IDColumn[C, A, I, G]
	stamp genidx.Stamp
}

// Stamp returns the capability the view was minted under.
func (v IDColumnView[C, A, I, G]) Stamp() genidx.Stamp {
	return v.stamp
}

// Get returns the proven id at p.
func (v IDColumnView[C, A, I, G]) Get(p Position[C]) (genidx.Valid[A, I, G], bool) {
	v.stamp.Must()
	id, ok := v.c.Get(p)
	if !ok {
		return genidx.Valid[A, I, G]{}, false
	}
	return genidx.Attest(v.stamp, id), true
}

// Len returns the number of rows, empty ones included.
func (v IDColumnView[C, A, I, G]) Len() int {
	v.stamp.Must()
	return v.c.Len()
}

// All iterates the rows that hold an id, with the id proven alive.
func (v IDColumnView[C, A, I, G]) All() iter.Seq2[Position[C], genidx.Valid[A, I, G]] {
	return func(yield func(Position[C], genidx.Valid[A, I, G]) bool) {
		v.stamp.Must()
		for p, id := range v.c.All() {
			if !yield(p, genidx.Attest(v.stamp, id)) {
				return
			}
		}
	}
}

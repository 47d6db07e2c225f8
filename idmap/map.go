package idmap

import (
	"iter"
	"maps"

	"github.com/hupe1980/genidx"
)

// Map is an id-keyed cache. The zero Map is empty and ready to use.
type Map[A any, I genidx.Index, G genidx.Generation, V any] struct {
	entries map[genidx.ID[A, I, G]]V
	tracker genidx.Tracker[A, I, G]
}

// New creates an empty Map with room for capacity entries.
func New[A any, I genidx.Index, G genidx.Generation, V any](capacity int) *Map[A, I, G, V] {
	return &Map[A, I, G, V]{entries: make(map[genidx.ID[A, I, G]]V, max(capacity, 0))}
}

// Len returns the number of entries, including any not yet pruned.
func (m *Map[A, I, G, V]) Len() int {
	return len(m.entries)
}

// Insert stores v under h's id and returns the previous value.
//
// Inserting a raw id instead of a fresh Valid proof makes the next Validate
// rescan, since nothing guarantees the id was alive.
func (m *Map[A, I, G, V]) Insert(h genidx.Handle[A, I, G], v V) (V, bool) {
	if !genidx.Proven(h) {
		m.tracker.MarkDirty()
	}
	if m.entries == nil {
		m.entries = make(map[genidx.ID[A, I, G]]V)
	}
	id := h.ID()
	old, ok := m.entries[id]
	m.entries[id] = v
	return old, ok
}

// Get returns the value stored under h's id. It does not check liveness.
func (m *Map[A, I, G, V]) Get(h genidx.Handle[A, I, G]) (V, bool) {
	v, ok := m.entries[h.ID()]
	return v, ok
}

// Update applies fn to the value under h's id in place. It reports whether
// an entry existed.
func (m *Map[A, I, G, V]) Update(h genidx.Handle[A, I, G], fn func(v *V)) bool {
	id := h.ID()
	v, ok := m.entries[id]
	if !ok {
		return false
	}
	fn(&v)
	m.entries[id] = v
	return true
}

// Remove deletes and returns the value under h's id.
func (m *Map[A, I, G, V]) Remove(h genidx.Handle[A, I, G]) (V, bool) {
	id := h.ID()
	v, ok := m.entries[id]
	if ok {
		delete(m.entries, id)
	}
	return v, ok
}

// Kill eagerly drops the entry of an id the caller just killed. It does not
// count as a synchronization.
func (m *Map[A, I, G, V]) Kill(killed genidx.ID[A, I, G]) bool {
	return m.purge(killed) == 1
}

// Retain keeps only the entries for which keep returns true and returns the
// number removed.
func (m *Map[A, I, G, V]) Retain(keep func(id genidx.ID[A, I, G], v V) bool) int {
	n := len(m.entries)
	maps.DeleteFunc(m.entries, func(id genidx.ID[A, I, G], v V) bool {
		return !keep(id, v)
	})
	return n - len(m.entries)
}

// Clear removes every entry.
func (m *Map[A, I, G, V]) Clear() {
	clear(m.entries)
}

// All iterates every entry without checking liveness.
func (m *Map[A, I, G, V]) All() iter.Seq2[genidx.ID[A, I, G], V] {
	return maps.All(m.entries)
}

// Values iterates every value without checking liveness.
func (m *Map[A, I, G, V]) Values() iter.Seq[V] {
	return maps.Values(m.entries)
}

// Validate synchronizes the map with src and returns a view whose keys are
// all alive. The view stays usable until src kills again.
func (m *Map[A, I, G, V]) Validate(src genidx.Source[A, I, G]) View[A, I, G, V] {
	stamp := m.tracker.Sync(src, m.purge, func(alive func(genidx.ID[A, I, G]) bool) int {
		return m.Retain(func(id genidx.ID[A, I, G], _ V) bool { return alive(id) })
	})
	return View[A, I, G, V]{m: m, stamp: stamp}
}

// TryValidate returns a view only if the map is already synchronized with
// src. It never mutates the map.
func (m *Map[A, I, G, V]) TryValidate(src genidx.Source[A, I, G]) (View[A, I, G, V], bool) {
	stamp, ok := m.tracker.Stamp(src)
	if !ok {
		return View[A, I, G, V]{}, false
	}
	return View[A, I, G, V]{m: m, stamp: stamp}, true
}

func (m *Map[A, I, G, V]) purge(killed genidx.ID[A, I, G]) int {
	if _, ok := m.entries[killed]; !ok {
		return 0
	}
	delete(m.entries, killed)
	return 1
}

// View is a validated Map. Every accessor panics once the allocator it was
// validated against kills an id.
type View[A any, I genidx.Index, G genidx.Generation, V any] struct {
	m     *Map[A, I, G, V]
	stamp genidx.Stamp
}

// Stamp returns the capability the view was minted under.
func (v View[A, I, G, V]) Stamp() genidx.Stamp {
	return v.stamp
}

// Len returns the number of live entries.
func (v View[A, I, G, V]) Len() int {
	v.stamp.Must()
	return v.m.Len()
}

// Get returns the value under h's id.
func (v View[A, I, G, V]) Get(h genidx.Handle[A, I, G]) (V, bool) {
	v.stamp.Must()
	return v.m.Get(h)
}

// Update applies fn to the value under h's id in place.
func (v View[A, I, G, V]) Update(h genidx.Handle[A, I, G], fn func(v *V)) bool {
	v.stamp.Must()
	return v.m.Update(h, fn)
}

// All iterates every entry with its key proven alive.
func (v View[A, I, G, V]) All() iter.Seq2[genidx.Valid[A, I, G], V] {
	return func(yield func(genidx.Valid[A, I, G], V) bool) {
		v.stamp.Must()
		for id, val := range v.m.entries {
			if !yield(genidx.Attest(v.stamp, id), val) {
				return
			}
		}
	}
}

// Retain keeps only the entries for which keep returns true and returns the
// number removed.
func (v View[A, I, G, V]) Retain(keep func(id genidx.Valid[A, I, G], val V) bool) int {
	v.stamp.Must()
	return v.m.Retain(func(id genidx.ID[A, I, G], val V) bool {
		return keep(genidx.Attest(v.stamp, id), val)
	})
}

package graph

import (
	"iter"

	"github.com/hupe1980/genidx"
)

// View is a validated Graph. Every accessor panics once the allocator it
// was validated against kills an id.
type View[A any, I genidx.Index, G genidx.Generation, W any] struct {
	g     *Graph[A, I, G, W]
	stamp genidx.Stamp
}

// Stamp returns the capability the view was minted under.
func (v View[A, I, G, W]) Stamp() genidx.Stamp {
	return v.stamp
}

// Len returns the number of edges.
func (v View[A, I, G, W]) Len() int {
	v.stamp.Must()
	return v.g.Len()
}

// Get returns the weight of from -> to.
func (v View[A, I, G, W]) Get(from, to genidx.Handle[A, I, G]) (W, bool) {
	v.stamp.Must()
	return v.g.Get(from, to)
}

// Update applies fn to the weight of from -> to in place.
func (v View[A, I, G, W]) Update(from, to genidx.Handle[A, I, G], fn func(w *W)) bool {
	v.stamp.Must()
	return v.g.Update(from, to, fn)
}

// All iterates every edge with both endpoints proven alive.
func (v View[A, I, G, W]) All() iter.Seq2[genidx.ValidEdge[A, I, G], W] {
	return v.attest(v.g.All())
}

// EdgesFrom iterates the out-edges of node with both endpoints proven alive.
func (v View[A, I, G, W]) EdgesFrom(node genidx.Handle[A, I, G]) iter.Seq2[genidx.ValidEdge[A, I, G], W] {
	return v.attest(v.g.EdgesFrom(node))
}

func (v View[A, I, G, W]) attest(seq iter.Seq2[genidx.Edge[A, I, G], W]) iter.Seq2[genidx.ValidEdge[A, I, G], W] {
	return func(yield func(genidx.ValidEdge[A, I, G], W) bool) {
		v.stamp.Must()
		for e, w := range seq {
			if !yield(genidx.AttestEdge(v.stamp, e), w) {
				return
			}
		}
	}
}

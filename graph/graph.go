package graph

import (
	"cmp"
	"iter"

	"github.com/google/btree"

	"github.com/hupe1980/genidx"
)

const degree = 32

type entry[A any, I genidx.Index, G genidx.Generation, W any] struct {
	edge   genidx.Edge[A, I, G]
	weight W
}

// Graph maps directed edges to weights. The zero Graph is empty and ready
// to use.
type Graph[A any, I genidx.Index, G genidx.Generation, W any] struct {
	tree    *btree.BTreeG[*entry[A, I, G, W]]
	tracker genidx.Tracker[A, I, G]
}

// New creates an empty Graph.
func New[A any, I genidx.Index, G genidx.Generation, W any]() *Graph[A, I, G, W] {
	g := &Graph[A, I, G, W]{}
	g.init()
	return g
}

func (g *Graph[A, I, G, W]) init() {
	if g.tree == nil {
		g.tree = btree.NewG(degree, func(a, b *entry[A, I, G, W]) bool {
			return a.edge.Less(b.edge)
		})
	}
}

// Len returns the number of edges, including any not yet pruned.
func (g *Graph[A, I, G, W]) Len() int {
	if g.tree == nil {
		return 0
	}
	return g.tree.Len()
}

// Insert stores w on a proven edge and returns the previous weight.
func (g *Graph[A, I, G, W]) Insert(e genidx.ValidEdge[A, I, G], w W) (W, bool) {
	return g.put(e.Edge(), w)
}

// InsertIDs stores w on the edge from -> to and returns the previous
// weight. Unless both endpoints are fresh Valid proofs, the next Validate
// rescans every edge.
func (g *Graph[A, I, G, W]) InsertIDs(from, to genidx.Handle[A, I, G], w W) (W, bool) {
	return g.put(g.edge(from, to), w)
}

// InsertMin stores w on from -> to unless a smaller weight is already
// there, and returns the weight now stored.
func InsertMin[A any, I genidx.Index, G genidx.Generation, W cmp.Ordered](g *Graph[A, I, G, W], from, to genidx.Handle[A, I, G], w W) W {
	return g.upsert(g.edge(from, to), func(cur *W, found bool) {
		if !found || w < *cur {
			*cur = w
		}
	})
}

// InsertMax stores w on from -> to unless a larger weight is already
// there, and returns the weight now stored.
func InsertMax[A any, I genidx.Index, G genidx.Generation, W cmp.Ordered](g *Graph[A, I, G, W], from, to genidx.Handle[A, I, G], w W) W {
	return g.upsert(g.edge(from, to), func(cur *W, found bool) {
		if !found || w > *cur {
			*cur = w
		}
	})
}

// Get returns the weight of from -> to. It does not check liveness.
func (g *Graph[A, I, G, W]) Get(from, to genidx.Handle[A, I, G]) (W, bool) {
	return g.get(genidx.NewEdge(from.ID(), to.ID()))
}

// Update applies fn to the weight of from -> to in place. It reports
// whether the edge existed.
func (g *Graph[A, I, G, W]) Update(from, to genidx.Handle[A, I, G], fn func(w *W)) bool {
	e, ok := g.find(genidx.NewEdge(from.ID(), to.ID()))
	if !ok {
		return false
	}
	fn(&e.weight)
	return true
}

// Remove deletes edge e and returns its weight.
func (g *Graph[A, I, G, W]) Remove(e genidx.Edge[A, I, G]) (W, bool) {
	if g.tree == nil {
		var zero W
		return zero, false
	}
	old, ok := g.tree.Delete(&entry[A, I, G, W]{edge: e})
	if !ok {
		var zero W
		return zero, false
	}
	return old.weight, true
}

// RemoveIDs deletes the edge from -> to and returns its weight.
func (g *Graph[A, I, G, W]) RemoveIDs(from, to genidx.Handle[A, I, G]) (W, bool) {
	return g.Remove(genidx.NewEdge(from.ID(), to.ID()))
}

// Clear removes every edge.
func (g *Graph[A, I, G, W]) Clear() {
	if g.tree != nil {
		g.tree.Clear(false)
	}
}

// All iterates every edge in (from, to) order without checking liveness.
func (g *Graph[A, I, G, W]) All() iter.Seq2[genidx.Edge[A, I, G], W] {
	return func(yield func(genidx.Edge[A, I, G], W) bool) {
		if g.tree == nil {
			return
		}
		g.tree.Ascend(func(e *entry[A, I, G, W]) bool {
			return yield(e.edge, e.weight)
		})
	}
}

// EdgesFrom iterates the out-edges of node in order of their target.
func (g *Graph[A, I, G, W]) EdgesFrom(node genidx.Handle[A, I, G]) iter.Seq2[genidx.Edge[A, I, G], W] {
	from := node.ID()
	return func(yield func(genidx.Edge[A, I, G], W) bool) {
		if g.tree == nil {
			return
		}
		// The zero id sorts first, so this is the smallest edge out of from.
		pivot := &entry[A, I, G, W]{edge: genidx.Edge[A, I, G]{From: from}}
		g.tree.AscendGreaterOrEqual(pivot, func(e *entry[A, I, G, W]) bool {
			if e.edge.From != from {
				return false
			}
			return yield(e.edge, e.weight)
		})
	}
}

// Retain keeps only the edges for which keep returns true and returns the
// number removed.
func (g *Graph[A, I, G, W]) Retain(keep func(e genidx.Edge[A, I, G], w W) bool) int {
	if g.tree == nil {
		return 0
	}
	var doomed []*entry[A, I, G, W]
	g.tree.Ascend(func(e *entry[A, I, G, W]) bool {
		if !keep(e.edge, e.weight) {
			doomed = append(doomed, e)
		}
		return true
	})
	for _, e := range doomed {
		g.tree.Delete(e)
	}
	return len(doomed)
}

// Kill eagerly drops every edge touching an id the caller just killed. It
// does not count as a synchronization.
func (g *Graph[A, I, G, W]) Kill(killed genidx.ID[A, I, G]) int {
	return g.purge(killed)
}

// Validate synchronizes the graph with src and returns a view whose edges
// all have live endpoints. The view stays usable until src kills again.
func (g *Graph[A, I, G, W]) Validate(src genidx.Source[A, I, G]) View[A, I, G, W] {
	stamp := g.tracker.Sync(src, g.purge, func(alive func(genidx.ID[A, I, G]) bool) int {
		return g.Retain(func(e genidx.Edge[A, I, G], _ W) bool {
			return alive(e.From) && alive(e.To)
		})
	})
	return View[A, I, G, W]{g: g, stamp: stamp}
}

// TryValidate returns a view only if the graph is already synchronized with
// src. It never mutates the graph.
func (g *Graph[A, I, G, W]) TryValidate(src genidx.Source[A, I, G]) (View[A, I, G, W], bool) {
	stamp, ok := g.tracker.Stamp(src)
	if !ok {
		return View[A, I, G, W]{}, false
	}
	return View[A, I, G, W]{g: g, stamp: stamp}, true
}

func (g *Graph[A, I, G, W]) purge(killed genidx.ID[A, I, G]) int {
	return g.Retain(func(e genidx.Edge[A, I, G], _ W) bool {
		return !e.Contains(killed)
	})
}

func (g *Graph[A, I, G, W]) edge(from, to genidx.Handle[A, I, G]) genidx.Edge[A, I, G] {
	if !genidx.Proven(from) || !genidx.Proven(to) {
		g.tracker.MarkDirty()
	}
	return genidx.NewEdge(from.ID(), to.ID())
}

func (g *Graph[A, I, G, W]) put(e genidx.Edge[A, I, G], w W) (W, bool) {
	g.init()
	old, ok := g.tree.ReplaceOrInsert(&entry[A, I, G, W]{edge: e, weight: w})
	if !ok {
		var zero W
		return zero, false
	}
	return old.weight, true
}

func (g *Graph[A, I, G, W]) upsert(e genidx.Edge[A, I, G], fn func(cur *W, found bool)) W {
	if cur, ok := g.find(e); ok {
		fn(&cur.weight, true)
		return cur.weight
	}
	var w W
	fn(&w, false)
	g.put(e, w)
	return w
}

func (g *Graph[A, I, G, W]) find(e genidx.Edge[A, I, G]) (*entry[A, I, G, W], bool) {
	if g.tree == nil {
		return nil, false
	}
	return g.tree.Get(&entry[A, I, G, W]{edge: e})
}

func (g *Graph[A, I, G, W]) get(e genidx.Edge[A, I, G]) (W, bool) {
	cur, ok := g.find(e)
	if !ok {
		var zero W
		return zero, false
	}
	return cur.weight, true
}

package genidx

import "fmt"

// Liveness answers whether an id is alive. Allocators implement it.
type Liveness[A any, I Index, G Generation] interface {
	IsAlive(id ID[A, I, G]) bool
}

// Edge is a directed pair of ids.
type Edge[A any, I Index, G Generation] struct {
	From ID[A, I, G]
	To   ID[A, I, G]
}

// NewEdge builds a directed edge.
func NewEdge[A any, I Index, G Generation](from, to ID[A, I, G]) Edge[A, I, G] {
	return Edge[A, I, G]{From: from, To: to}
}

// Contains reports whether id is either endpoint.
func (e Edge[A, I, G]) Contains(id ID[A, I, G]) bool {
	return e.From == id || e.To == id
}

// Compare orders edges by From, then To.
func (e Edge[A, I, G]) Compare(other Edge[A, I, G]) int {
	if c := e.From.Compare(other.From); c != 0 {
		return c
	}
	return e.To.Compare(other.To)
}

// Less reports whether e sorts before other.
func (e Edge[A, I, G]) Less(other Edge[A, I, G]) bool {
	return e.Compare(other) < 0
}

// IsAlive reports whether both endpoints are alive.
func (e Edge[A, I, G]) IsAlive(l Liveness[A, I, G]) bool {
	return l.IsAlive(e.From) && l.IsAlive(e.To)
}

// Validate proves both endpoints alive.
func (e Edge[A, I, G]) Validate(v Validator[A, I, G]) (ValidEdge[A, I, G], bool) {
	from, ok := v.Validate(e.From)
	if !ok {
		return ValidEdge[A, I, G]{}, false
	}
	to, ok := v.Validate(e.To)
	if !ok {
		return ValidEdge[A, I, G]{}, false
	}
	return ValidEdge[A, I, G]{From: from, To: to}, true
}

func (e Edge[A, I, G]) String() string {
	return fmt.Sprintf("%s->%s", e.From, e.To)
}

// Validator mints proofs. Allocators implement it.
type Validator[A any, I Index, G Generation] interface {
	Validate(id ID[A, I, G]) (Valid[A, I, G], bool)
}

// ValidEdge is an edge whose endpoints were both proven alive.
type ValidEdge[A any, I Index, G Generation] struct {
	From Valid[A, I, G]
	To   Valid[A, I, G]
}

// AttestEdge wraps e in a proof tied to stamp.
func AttestEdge[A any, I Index, G Generation](stamp Stamp, e Edge[A, I, G]) ValidEdge[A, I, G] {
	return ValidEdge[A, I, G]{From: Attest(stamp, e.From), To: Attest(stamp, e.To)}
}

// Edge returns the proven edge. It panics if the proof is stale.
func (e ValidEdge[A, I, G]) Edge() Edge[A, I, G] {
	return Edge[A, I, G]{From: e.From.ID(), To: e.To.ID()}
}

// Pair is an unordered pair of ids, normalized so A() <= B().
type Pair[A any, I Index, G Generation] struct {
	a ID[A, I, G]
	b ID[A, I, G]
}

// NewPair builds a normalized pair.
func NewPair[A any, I Index, G Generation](x, y ID[A, I, G]) Pair[A, I, G] {
	if y.Less(x) {
		x, y = y, x
	}
	return Pair[A, I, G]{a: x, b: y}
}

// A returns the smaller id.
func (p Pair[A, I, G]) A() ID[A, I, G] { return p.a }

// B returns the larger id.
func (p Pair[A, I, G]) B() ID[A, I, G] { return p.b }

// Contains reports whether id is in the pair.
func (p Pair[A, I, G]) Contains(id ID[A, I, G]) bool {
	return p.a == id || p.b == id
}

// Compare orders pairs by A, then B.
func (p Pair[A, I, G]) Compare(other Pair[A, I, G]) int {
	if c := p.a.Compare(other.a); c != 0 {
		return c
	}
	return p.b.Compare(other.b)
}

// Validate proves both members alive.
func (p Pair[A, I, G]) Validate(v Validator[A, I, G]) (Valid[A, I, G], Valid[A, I, G], bool) {
	a, ok := v.Validate(p.a)
	if !ok {
		return Valid[A, I, G]{}, Valid[A, I, G]{}, false
	}
	b, ok := v.Validate(p.b)
	if !ok {
		return Valid[A, I, G]{}, Valid[A, I, G]{}, false
	}
	return a, b, true
}

package column

import (
	"github.com/hupe1980/genidx"
	"github.com/hupe1980/genidx/component"
)

// Indices maps owner slots to values, typically the Position of the row an
// entity occupies. Inserting follows the component store contract: the
// owner's slot must already exist or be the next one, otherwise Insert
// panics. The zero Indices is empty and ready to use.
type Indices[O genidx.Slotter, E any] struct {
	values *component.Store[O, option[E]]
}

// NewIndices creates an empty Indices with room for capacity owners.
func NewIndices[O genidx.Slotter, E any](capacity int) *Indices[O, E] {
	return &Indices[O, E]{values: component.New[O, option[E]](capacity)}
}

func (x *Indices[O, E]) store() *component.Store[O, option[E]] {
	if x.values == nil {
		x.values = component.New[O, option[E]](0)
	}
	return x.values
}

// Insert sets owner's value.
func (x *Indices[O, E]) Insert(owner O, v E) {
	x.store().Insert(owner, some(v))
}

// Remove clears owner's value and returns it.
func (x *Indices[O, E]) Remove(owner O) (E, bool) {
	s := x.store()
	if !s.Has(owner) {
		var zero E
		return zero, false
	}
	p := s.Ptr(owner)
	old := *p
	*p = option[E]{}
	return old.get()
}

// Get returns owner's value.
func (x *Indices[O, E]) Get(owner O) (E, bool) {
	s := x.store()
	if !s.Has(owner) {
		var zero E
		return zero, false
	}
	return s.Get(owner).get()
}

// Len returns the number of owner slots written, cleared ones included.
func (x *Indices[O, E]) Len() int {
	return x.store().Len()
}

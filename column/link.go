package column

import (
	"iter"

	"github.com/hupe1980/genidx"
	"github.com/hupe1980/genidx/component"
)

// Link stores an optional id of arena A for every owner O, e.g. the planet
// each ship orbits. Targets are pruned lazily once they die. The zero Link
// is empty and ready to use.
type Link[O genidx.Slotter, A any, I genidx.Index, G genidx.Generation] struct {
	links   *component.Store[O, option[genidx.ID[A, I, G]]]
	tracker genidx.Tracker[A, I, G]
}

// NewLink creates an empty Link with room for capacity owners.
func NewLink[O genidx.Slotter, A any, I genidx.Index, G genidx.Generation](capacity int) *Link[O, A, I, G] {
	return &Link[O, A, I, G]{links: component.New[O, option[genidx.ID[A, I, G]]](capacity)}
}

func (l *Link[O, A, I, G]) store() *component.Store[O, option[genidx.ID[A, I, G]]] {
	if l.links == nil {
		l.links = component.New[O, option[genidx.ID[A, I, G]]](0)
	}
	return l.links
}

// Len returns the number of owner slots written.
func (l *Link[O, A, I, G]) Len() int {
	return l.store().Len()
}

// Insert links owner to a proven target. Like any component store, owner's
// slot must already exist or be the next one.
func (l *Link[O, A, I, G]) Insert(owner O, target genidx.Valid[A, I, G]) {
	l.store().Insert(owner, some(target.ID()))
}

// InsertUnchecked links owner to a target nobody proved alive. The next
// Validate rescans every link.
func (l *Link[O, A, I, G]) InsertUnchecked(owner O, target genidx.ID[A, I, G]) {
	l.tracker.MarkDirty()
	l.store().Insert(owner, some(target))
}

// InsertNone writes an empty link for owner.
func (l *Link[O, A, I, G]) InsertNone(owner O) {
	l.store().Insert(owner, option[genidx.ID[A, I, G]]{})
}

// Remove clears owner's link and returns the target it held.
func (l *Link[O, A, I, G]) Remove(owner O) (genidx.ID[A, I, G], bool) {
	s := l.store()
	if !s.Has(owner) {
		return genidx.ID[A, I, G]{}, false
	}
	p := s.Ptr(owner)
	old := *p
	*p = option[genidx.ID[A, I, G]]{}
	return old.get()
}

// Get returns owner's target. It does not check liveness.
func (l *Link[O, A, I, G]) Get(owner O) (genidx.ID[A, I, G], bool) {
	s := l.store()
	if !s.Has(owner) {
		return genidx.ID[A, I, G]{}, false
	}
	return s.Get(owner).get()
}

// All iterates owner slots that hold a target, without checking liveness.
func (l *Link[O, A, I, G]) All() iter.Seq2[int, genidx.ID[A, I, G]] {
	return func(yield func(int, genidx.ID[A, I, G]) bool) {
		for slot, o := range l.store().All() {
			if !o.ok {
				continue
			}
			if !yield(slot, o.v) {
				return
			}
		}
	}
}

// Kill eagerly clears every link to an id the caller just killed. It does
// not count as a synchronization.
func (l *Link[O, A, I, G]) Kill(killed genidx.ID[A, I, G]) int {
	return l.clear(func(id genidx.ID[A, I, G]) bool { return id == killed })
}

// Validate synchronizes the links with src and returns a view whose
// targets are all alive. The view stays usable until src kills again.
func (l *Link[O, A, I, G]) Validate(src genidx.Source[A, I, G]) LinkView[O, A, I, G] {
	stamp := l.tracker.Sync(src, l.Kill, func(alive func(genidx.ID[A, I, G]) bool) int {
		return l.clear(func(id genidx.ID[A, I, G]) bool { return !alive(id) })
	})
	return LinkView[O, A, I, G]{l: l, stamp: stamp}
}

// TryValidate returns a view only if the links are already synchronized
// with src. It never mutates the links.
func (l *Link[O, A, I, G]) TryValidate(src genidx.Source[A, I, G]) (LinkView[O, A, I, G], bool) {
	stamp, ok := l.tracker.Stamp(src)
	if !ok {
		return LinkView[O, A, I, G]{}, false
	}
	return LinkView[O, A, I, G]{l: l, stamp: stamp}, true
}

func (l *Link[O, A, I, G]) clear(dead func(genidx.ID[A, I, G]) bool) int {
	n := 0
	for _, o := range l.store().Slots() {
		if o.ok && dead(o.v) {
			*o = option[genidx.ID[A, I, G]]{}
			n++
		}
	}
	return n
}

// LinkView is a validated Link. Every accessor panics once the allocator
// it was validated against kills an id.
type LinkView[O genidx.Slotter, A any, I genidx.Index, G genidx.Generation] struct {
	l     *Link[O, A, I, G]
	stamp genidx.Stamp
}

// Stamp returns the capability the view was minted under.
func (v LinkView[O, A, I, G]) Stamp() genidx.Stamp {
	return v.stamp
}

// Get returns owner's target, proven alive.
func (v LinkView[O, A, I, G]) Get(owner O) (genidx.Valid[A, I, G], bool) {
	v.stamp.Must()
	id, ok := v.l.Get(owner)
	if !ok {
		return genidx.Valid[A, I, G]{}, false
	}
	return genidx.Attest(v.stamp, id), true
}

// All iterates owner slots that hold a target, with the target proven
// alive.
func (v LinkView[O, A, I, G]) All() iter.Seq2[int, genidx.Valid[A, I, G]] {
	return func(yield func(int, genidx.Valid[A, I, G]) bool) {
		v.stamp.Must()
		for slot, id := range v.l.All() {
			if !yield(slot, genidx.Attest(v.stamp, id)) {
				return
			}
		}
	}
}

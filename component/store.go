package component

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/genidx"
)

const (
	// segmentBits determines the size of each segment.
	// 10 bits = 1024 values per segment.
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// segment is a fixed-size block of values. Segments never move once
// allocated, so pointers returned by Ptr stay valid while the store grows.
type segment[T any] struct {
	items [segmentSize]T
}

// Store is a dense per-slot value array addressed by the slot of an owner
// handle (an id or a Valid proof of arena O).
//
// Inserting is only legal at the current length (append) or below it
// (overwrite). Anything else means the store and its allocator disagree and
// panics.
type Store[O genidx.Slotter, T any] struct {
	segments []*segment[T]
	n        int
}

// New creates an empty Store with room for capacity values.
func New[O genidx.Slotter, T any](capacity int) *Store[O, T] {
	return &Store[O, T]{
		segments: make([]*segment[T], 0, (max(capacity, 0)+segmentSize-1)/segmentSize),
	}
}

// Len returns the number of slots written.
func (s *Store[O, T]) Len() int {
	return s.n
}

// Has reports whether owner's slot was written.
func (s *Store[O, T]) Has(owner O) bool {
	slot := owner.Slot()
	return slot >= 0 && slot < s.n
}

// Insert writes v at owner's slot.
func (s *Store[O, T]) Insert(owner O, v T) {
	slot := owner.Slot()
	switch {
	case slot >= 0 && slot < s.n:
		*s.at(slot) = v
	case slot == s.n:
		if slot>>segmentBits >= len(s.segments) {
			s.segments = append(s.segments, &segment[T]{})
		}
		*s.at(slot) = v
		s.n++
	default:
		panic(fmt.Sprintf("component: insert at slot %d would leave a gap (len %d)", slot, s.n))
	}
}

// Get returns the value at owner's slot. It panics if the slot was never
// written.
func (s *Store[O, T]) Get(owner O) T {
	return *s.Ptr(owner)
}

// Ptr returns a pointer to the value at owner's slot. It panics if the slot
// was never written.
func (s *Store[O, T]) Ptr(owner O) *T {
	slot := owner.Slot()
	if slot < 0 || slot >= s.n {
		panic(fmt.Sprintf("component: slot %d out of bounds (len %d)", slot, s.n))
	}
	return s.at(slot)
}

// All iterates slots in order.
func (s *Store[O, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, *s.at(i)) {
				return
			}
		}
	}
}

// Slots iterates pointers to every written value in order.
func (s *Store[O, T]) Slots() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(i, s.at(i)) {
				return
			}
		}
	}
}

// ParallelRange calls fn for every owner's value using up to limit
// goroutines (GOMAXPROCS if limit <= 0).
//
// Owners are resolved to slots before any goroutine starts, so a stale
// proof or an unwritten slot panics in the caller. No mutation of the store
// or of the owners' allocator may happen until ParallelRange returns. The
// first error cancels the remaining work and is returned.
func (s *Store[O, T]) ParallelRange(ctx context.Context, owners []O, limit int, fn func(ctx context.Context, owner O, v T) error) error {
	if len(owners) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	values := make([]*T, len(owners))
	for i, owner := range owners {
		values[i] = s.Ptr(owner)
	}

	chunk := (len(owners) + limit - 1) / limit
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for start := 0; start < len(owners); start += chunk {
		end := min(start+chunk, len(owners))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ctx, owners[i], *values[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *Store[O, T]) at(slot int) *T {
	return &s.segments[slot>>segmentBits].items[slot&segmentMask]
}

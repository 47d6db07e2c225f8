package genidx

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/genidx/internal/conv"
)

// Index is the set of unsigned widths an arena may use for slot numbers.
type Index = conv.Unsigned

// Unit is the generation of a fixed arena: no recycling, no invalidation.
type Unit struct{}

// Generation is the set of per-slot counter kinds. Unit disables generation
// tracking; the unsigned widths enable recycling.
type Generation interface {
	Unit | uint8 | uint16 | uint32 | uint64
}

// DynamicGeneration is the subset of Generation that can be bumped.
type DynamicGeneration interface {
	uint8 | uint16 | uint32 | uint64
}

// ID names one logical allocation inside the arena A.
//
// Two ids are equal iff both index and generation match, so an id is
// comparable and can be used as a map key. The zero value of a dynamic
// arena id is never alive because generation zero is never issued.
//
// A is a marker type. It carries no data; it only keeps ids of different
// arenas from being mixed up:
//
//	type Ship struct{}
//	type ShipID = genidx.ID[Ship, uint32, uint32]
type ID[A any, I Index, G Generation] struct {
	index I
	gen   G
}

// NewID builds an id from its parts. Allocators are the normal source of ids;
// this exists for tests and for decoding ids a caller stored elsewhere.
func NewID[A any, I Index, G Generation](index I, gen G) ID[A, I, G] {
	return ID[A, I, G]{index: index, gen: gen}
}

// Index returns the slot number.
func (id ID[A, I, G]) Index() I { return id.index }

// Generation returns the per-slot counter value.
func (id ID[A, I, G]) Generation() G { return id.gen }

// Slot returns the index as a slice offset.
func (id ID[A, I, G]) Slot() int { return int(id.index) }

// ID implements Handle.
func (id ID[A, I, G]) ID() ID[A, I, G] { return id }

// IsZero reports whether id is the zero value.
func (id ID[A, I, G]) IsZero() bool {
	var zero ID[A, I, G]
	return id == zero
}

// Compare orders ids by index, then generation.
func (id ID[A, I, G]) Compare(other ID[A, I, G]) int {
	if c := cmp.Compare(id.index, other.index); c != 0 {
		return c
	}
	return cmp.Compare(generationValue(id.gen), generationValue(other.gen))
}

// Less reports whether id sorts before other.
func (id ID[A, I, G]) Less(other ID[A, I, G]) bool {
	return id.Compare(other) < 0
}

// String returns "index" for fixed arenas and "index#generation" otherwise.
func (id ID[A, I, G]) String() string {
	if _, ok := any(id.gen).(Unit); ok {
		return fmt.Sprintf("%d", uint64(id.index))
	}
	return fmt.Sprintf("%d#%d", uint64(id.index), generationValue(id.gen))
}

func generationValue[G Generation](g G) uint64 {
	switch v := any(g).(type) {
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	default:
		return 0
	}
}

// Handle is anything reducible to an id of arena A: a raw ID, a pointer to
// one, or a Valid proof. APIs that store ids accept a Handle so callers can
// pass whichever they hold.
type Handle[A any, I Index, G Generation] interface {
	ID() ID[A, I, G]
}

// Slotter is anything that addresses a dense per-slot store.
type Slotter interface {
	Slot() int
}

package genidx

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/uuid"

	"github.com/hupe1980/genidx/internal/conv"
)

// Dynamic is a recycling allocator. Killed indices go onto a LIFO free list
// and are handed out again with a bumped generation, so every id it issued
// can later be detected as dead.
//
// Dynamic is not safe for concurrent mutation. Reads (IsAlive, Validate,
// GenerationCmp) may run in parallel with each other but not with Create or
// Kill.
type Dynamic[A any, I Index, G DynamicGeneration] struct {
	gens       []G
	dead       []I
	living     *roaring64.Bitmap
	gen        AllocGen
	lastKilled ID[A, I, G]
	instance   uuid.UUID

	name    string
	logger  *Logger
	metrics MetricsCollector
}

// NewDynamic creates an empty recycling allocator for arena A.
func NewDynamic[A any, I Index, G DynamicGeneration](optFns ...Option) *Dynamic[A, I, G] {
	o := applyOptions(arenaName[A](), optFns)
	return &Dynamic[A, I, G]{
		gens:     make([]G, 0, o.capacity),
		dead:     make([]I, 0, o.capacity/4),
		living:   roaring64.New(),
		instance: uuid.New(),
		name:     o.name,
		logger:   o.logger.WithArena(o.name),
		metrics:  o.metrics,
	}
}

// Create issues a live id, reusing the most recently freed index if there is
// one. The result is a proof valid until the next kill.
func (a *Dynamic[A, I, G]) Create() (Valid[A, I, G], error) {
	id, err := a.CreateOrReuse()
	if err != nil {
		return Valid[A, I, G]{}, err
	}
	return Attest(newStamp(a), id), nil
}

// CreateOrReuse issues a live id like Create and returns it as a plain id.
func (a *Dynamic[A, I, G]) CreateOrReuse() (ID[A, I, G], error) {
	if n := len(a.dead); n > 0 {
		index := a.dead[n-1]
		a.dead = a.dead[:n-1]
		a.living.Add(uint64(index))
		a.metrics.RecordCreate(true)
		// The stored generation was already bumped by Kill.
		return ID[A, I, G]{index: index, gen: a.gens[int(index)]}, nil
	}

	slots := len(a.gens)
	index, err := conv.IntToUnsigned[I](slots)
	if err != nil {
		err = &IndexOverflowError{Arena: a.name, Slots: uint64(slots), cause: err}
		a.logger.LogOverflow(uint64(slots), err)
		return ID[A, I, G]{}, err
	}

	gen := FirstGeneration[G]()
	a.gens = append(a.gens, gen)
	a.living.Add(uint64(index))
	a.metrics.RecordCreate(false)
	return ID[A, I, G]{index: index, gen: gen}, nil
}

// Kill frees id. It is a no-op returning false unless id is currently
// alive, so killing twice is harmless.
func (a *Dynamic[A, I, G]) Kill(id ID[A, I, G]) bool {
	if !a.IsAlive(id) {
		return false
	}

	i := int(id.index)
	a.gens[i] = NextGeneration(a.gens[i])
	a.dead = append(a.dead, id.index)
	a.living.Remove(uint64(id.index))
	a.gen++
	a.lastKilled = id

	a.logger.LogKill(id.String(), a.gen)
	a.metrics.RecordKill()
	return true
}

// IsAlive reports whether id was issued by this allocator and not killed
// since.
func (a *Dynamic[A, I, G]) IsAlive(id ID[A, I, G]) bool {
	if uint64(id.index) >= uint64(len(a.gens)) {
		return false
	}
	return a.gens[int(id.index)] == id.gen && a.living.Contains(uint64(id.index))
}

// Validate returns a proof for id if it is alive.
func (a *Dynamic[A, I, G]) Validate(id ID[A, I, G]) (Valid[A, I, G], bool) {
	if !a.IsAlive(id) {
		return Valid[A, I, G]{}, false
	}
	return Attest(newStamp(a), id), true
}

// Stamp returns a capability at the current generation.
func (a *Dynamic[A, I, G]) Stamp() Stamp {
	return newStamp(a)
}

// Generation returns the number of successful kills so far.
func (a *Dynamic[A, I, G]) Generation() AllocGen {
	return a.gen
}

// GenerationCmp classifies cached against the current generation. OffByOne
// carries the remembered last kill, which is the only kill since cached.
func (a *Dynamic[A, I, G]) GenerationCmp(cached AllocGen) GenerationCmp[A, I, G] {
	return compareGenerations(a.gen, cached, a.lastKilled)
}

// LastKilled returns the most recently killed id, if any.
func (a *Dynamic[A, I, G]) LastKilled() (ID[A, I, G], bool) {
	return a.lastKilled, a.gen > 0
}

// Instance identifies this allocator. Caches use it to notice that they are
// validated against an allocator other than the one they last synced with.
func (a *Dynamic[A, I, G]) Instance() uuid.UUID {
	return a.instance
}

// Name returns the arena name.
func (a *Dynamic[A, I, G]) Name() string {
	return a.name
}

// Len returns the number of live ids.
func (a *Dynamic[A, I, G]) Len() int {
	return int(a.living.GetCardinality())
}

// Cap returns the number of slots ever created.
func (a *Dynamic[A, I, G]) Cap() int {
	return len(a.gens)
}

// Living iterates live ids in index order.
func (a *Dynamic[A, I, G]) Living() iter.Seq[ID[A, I, G]] {
	return func(yield func(ID[A, I, G]) bool) {
		it := a.living.Iterator()
		for it.HasNext() {
			i := it.Next()
			if !yield(ID[A, I, G]{index: I(i), gen: a.gens[int(i)]}) {
				return
			}
		}
	}
}

func (a *Dynamic[A, I, G]) hooks() (*Logger, MetricsCollector) {
	return a.logger, a.metrics
}

func (a *Dynamic[A, I, G]) String() string {
	return fmt.Sprintf("Dynamic(%s, live=%d, slots=%d, gen=%d)", a.name, a.Len(), a.Cap(), a.gen)
}

func arenaName[A any]() string {
	t := reflect.TypeFor[A]()
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

package testutil

import (
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/genidx"
)

// OpKind is one step of a generated allocator/cache interleaving.
type OpKind uint8

const (
	// OpCreate allocates a new id.
	OpCreate OpKind = iota
	// OpKill kills a live id.
	OpKill
	// OpKillDead kills an id that may already be dead.
	OpKillDead
	// OpInsert stores a live id in the caches under test.
	OpInsert
	// OpValidate synchronizes the lazily-validated caches.
	OpValidate
)

func (k OpKind) String() string {
	switch k {
	case OpCreate:
		return "create"
	case OpKill:
		return "kill"
	case OpKillDead:
		return "kill-dead"
	case OpInsert:
		return "insert"
	case OpValidate:
		return "validate"
	default:
		return fmt.Sprintf("OpKind(%d)", k)
	}
}

// Op is a generated operation. Pick selects the operand.
type Op struct {
	Kind OpKind
	Pick int
}

// Choose maps Pick onto [0, n).
func (o Op) Choose(n int) int {
	return o.Pick % n
}

func (o Op) String() string {
	return fmt.Sprintf("%s(%d)", o.Kind, o.Pick)
}

// Mix holds relative weights per operation kind.
type Mix struct {
	Create   int
	Kill     int
	KillDead int
	Insert   int
	Validate int
}

// DefaultMix keeps the population stable while validating rarely enough
// that both single-kill and multi-kill synchronizations occur.
var DefaultMix = Mix{Create: 4, Kill: 3, KillDead: 1, Insert: 5, Validate: 2}

// Ops generates n operations drawn from mix.
func (r *RNG) Ops(n int, mix Mix) []Op {
	weights := []struct {
		kind OpKind
		w    int
	}{
		{OpCreate, mix.Create},
		{OpKill, mix.Kill},
		{OpKillDead, mix.KillDead},
		{OpInsert, mix.Insert},
		{OpValidate, mix.Validate},
	}

	total := 0
	for _, w := range weights {
		total += max(w.w, 0)
	}
	if total == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		x := r.rand.Intn(total)
		for _, w := range weights {
			if x < max(w.w, 0) {
				ops[i].Kind = w.kind
				break
			}
			x -= max(w.w, 0)
		}
		ops[i].Pick = r.rand.Intn(math.MaxInt32)
	}
	return ops
}

// World drives a Dynamic allocator and keeps the ground-truth live set.
type World[A any, I genidx.Index, G genidx.DynamicGeneration] struct {
	Alloc *genidx.Dynamic[A, I, G]
	live  []genidx.ID[A, I, G]
	dead  []genidx.ID[A, I, G]
}

// NewWorld creates a World over a fresh allocator.
func NewWorld[A any, I genidx.Index, G genidx.DynamicGeneration](optFns ...genidx.Option) *World[A, I, G] {
	return &World[A, I, G]{Alloc: genidx.NewDynamic[A, I, G](optFns...)}
}

// Create allocates an id and records it as live.
func (w *World[A, I, G]) Create() (genidx.ID[A, I, G], error) {
	id, err := w.Alloc.CreateOrReuse()
	if err != nil {
		return id, err
	}
	w.live = append(w.live, id)
	return id, nil
}

// Kill kills the live id selected by op. It reports false if nothing is
// alive.
func (w *World[A, I, G]) Kill(op Op) (genidx.ID[A, I, G], bool) {
	if len(w.live) == 0 {
		return genidx.ID[A, I, G]{}, false
	}
	i := op.Choose(len(w.live))
	id := w.live[i]
	w.live[i] = w.live[len(w.live)-1]
	w.live = w.live[:len(w.live)-1]
	w.dead = append(w.dead, id)
	return id, w.Alloc.Kill(id)
}

// KillDead kills an id that was killed before. The allocator must treat it
// as a no-op.
func (w *World[A, I, G]) KillDead(op Op) (genidx.ID[A, I, G], bool) {
	if len(w.dead) == 0 {
		return genidx.ID[A, I, G]{}, false
	}
	id := w.dead[op.Choose(len(w.dead))]
	return id, w.Alloc.Kill(id)
}

// Pick returns the live id selected by op.
func (w *World[A, I, G]) Pick(op Op) (genidx.ID[A, I, G], bool) {
	if len(w.live) == 0 {
		return genidx.ID[A, I, G]{}, false
	}
	return w.live[op.Choose(len(w.live))], true
}

// Live returns the ground-truth live ids in ascending order.
func (w *World[A, I, G]) Live() []genidx.ID[A, I, G] {
	out := slices.Clone(w.live)
	slices.SortFunc(out, genidx.ID[A, I, G].Compare)
	return out
}

// IsLive reports whether id is in the ground-truth live set.
func (w *World[A, I, G]) IsLive(id genidx.ID[A, I, G]) bool {
	return slices.Contains(w.live, id)
}

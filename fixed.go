package genidx

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hupe1980/genidx/internal/conv"
)

// Fixed is an append-only allocator. It never recycles, so every id it
// issued stays valid for its whole lifetime and there is no Kill.
type Fixed[A any, I Index] struct {
	next      uint64
	exhausted bool
	instance  uuid.UUID

	name    string
	logger  *Logger
	metrics MetricsCollector
}

// NewFixed creates an empty append-only allocator for arena A.
func NewFixed[A any, I Index](optFns ...Option) *Fixed[A, I] {
	o := applyOptions(arenaName[A](), optFns)
	return &Fixed[A, I]{
		instance: uuid.New(),
		name:     o.name,
		logger:   o.logger.WithArena(o.name),
		metrics:  o.metrics,
	}
}

// Create issues the next index. It fails once every value of I was issued.
func (a *Fixed[A, I]) Create() (ID[A, I, Unit], error) {
	if a.exhausted {
		err := &IndexOverflowError{
			Arena: a.name,
			Slots: a.next + 1,
			cause: fmt.Errorf("integer overflow: every %T index was issued", I(0)),
		}
		a.logger.LogOverflow(a.next+1, err)
		return ID[A, I, Unit]{}, err
	}

	index, err := conv.Uint64ToUnsigned[I](a.next)
	if err != nil {
		err = &IndexOverflowError{Arena: a.name, Slots: a.next, cause: err}
		a.logger.LogOverflow(a.next, err)
		return ID[A, I, Unit]{}, err
	}

	if index == conv.MaxOf[I]() {
		a.exhausted = true
	} else {
		a.next++
	}
	a.metrics.RecordCreate(false)
	return ID[A, I, Unit]{index: index}, nil
}

// IsAlive reports whether id was issued by this allocator.
func (a *Fixed[A, I]) IsAlive(id ID[A, I, Unit]) bool {
	return a.exhausted || uint64(id.index) < a.next
}

// Validate returns a proof for id if it was issued. Proofs of a fixed arena
// never go stale.
func (a *Fixed[A, I]) Validate(id ID[A, I, Unit]) (Valid[A, I, Unit], bool) {
	if !a.IsAlive(id) {
		return Valid[A, I, Unit]{}, false
	}
	return Attest(newStamp(a), id), true
}

// Generation is always zero: a fixed arena never kills.
func (a *Fixed[A, I]) Generation() AllocGen {
	return 0
}

// GenerationCmp always reports Synced.
func (a *Fixed[A, I]) GenerationCmp(AllocGen) GenerationCmp[A, I, Unit] {
	return GenerationCmp[A, I, Unit]{Kind: Synced}
}

// Instance identifies this allocator.
func (a *Fixed[A, I]) Instance() uuid.UUID {
	return a.instance
}

// Name returns the arena name.
func (a *Fixed[A, I]) Name() string {
	return a.name
}

// Len returns the number of ids issued.
func (a *Fixed[A, I]) Len() int {
	if a.exhausted {
		return int(a.next) + 1
	}
	return int(a.next)
}

func (a *Fixed[A, I]) hooks() (*Logger, MetricsCollector) {
	return a.logger, a.metrics
}

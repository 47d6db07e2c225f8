package genidx

import (
	"github.com/google/uuid"
)

// Source is an allocator a dependent cache can synchronize against. Both
// Dynamic and Fixed implement it.
type Source[A any, I Index, G Generation] interface {
	IsAlive(id ID[A, I, G]) bool
	Generation() AllocGen
	GenerationCmp(cached AllocGen) GenerationCmp[A, I, G]
	Instance() uuid.UUID
	hooks() (*Logger, MetricsCollector)
}

// Tracker is the per-cache half of the generation-diff protocol. A cache
// embeds one and calls Sync before exposing its entries as proven.
//
// The zero Tracker has never synchronized; its first Sync takes the
// Outdated path.
type Tracker[A any, I Index, G Generation] struct {
	gen      AllocGen
	instance uuid.UUID
	dirty    bool
}

// Generation returns the AllocGen adopted at the last Sync.
func (t *Tracker[A, I, G]) Generation() AllocGen {
	return t.gen
}

// MarkDirty forces the next Sync to rescan. Caches call it when they accept
// an id nobody proved alive.
func (t *Tracker[A, I, G]) MarkDirty() {
	t.dirty = true
}

// InSync reports whether the cache has seen every kill of src.
func (t *Tracker[A, I, G]) InSync(src Source[A, I, G]) bool {
	return !t.dirty && t.instance == src.Instance() && t.gen == src.Generation()
}

// Sync brings the cache up to date with src.
//
// On OffByOne, purge is called with the single id killed since the last
// sync. On Outdated, rescan is called with src.IsAlive and must drop every
// entry referencing a dead id. Both return the number of entries removed.
// The returned stamp is fresh until src kills again.
func (t *Tracker[A, I, G]) Sync(
	src Source[A, I, G],
	purge func(killed ID[A, I, G]) int,
	rescan func(alive func(ID[A, I, G]) bool) int,
) Stamp {
	kind := Outdated
	var killed ID[A, I, G]
	if !t.dirty && t.instance == src.Instance() {
		c := src.GenerationCmp(t.gen)
		kind, killed = c.Kind, c.Killed
	}

	removed := 0
	switch kind {
	case Synced:
	case OffByOne:
		removed = purge(killed)
	case Outdated:
		removed = rescan(src.IsAlive)
	}

	logger, metrics := src.hooks()
	if kind != Synced {
		logger.LogSync(kind, t.gen, src.Generation(), removed)
	}
	metrics.RecordSync(kind, removed)

	t.gen = src.Generation()
	t.instance = src.Instance()
	t.dirty = false
	return newStamp(src)
}

// Stamp returns a capability for a cache that is already in sync, or false.
func (t *Tracker[A, I, G]) Stamp(src Source[A, I, G]) (Stamp, bool) {
	if !t.InSync(src) {
		return Stamp{}, false
	}
	return newStamp(src), true
}

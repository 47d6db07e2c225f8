package genidx

// AllocGen is a monotonic kill counter. A Dynamic allocator increments it
// exactly once per successful kill; dependent caches keep a copy from their
// last resynchronization and compare it to detect staleness.
type AllocGen uint64

// Sub returns g - other. It is only meaningful when g is the newer value.
func (g AllocGen) Sub(other AllocGen) uint64 {
	return uint64(g) - uint64(other)
}

// Min returns the older of two generations.
func (g AllocGen) Min(other AllocGen) AllocGen {
	return min(g, other)
}

// CmpKind classifies how far a cached AllocGen lags behind an allocator.
type CmpKind uint8

const (
	// Synced means no kill happened since the cached generation.
	Synced CmpKind = iota
	// OffByOne means exactly one kill happened and the allocator still
	// remembers which id it was.
	OffByOne
	// Outdated means two or more kills happened, or the cache never
	// synchronized with this allocator. Only a full rescan is sound.
	Outdated
)

func (k CmpKind) String() string {
	switch k {
	case Synced:
		return "synced"
	case OffByOne:
		return "off-by-one"
	case Outdated:
		return "outdated"
	default:
		return "unknown"
	}
}

// GenerationCmp is the result of comparing a cached AllocGen with the
// allocator's current one. Killed is set only when Kind is OffByOne.
type GenerationCmp[A any, I Index, G Generation] struct {
	Kind   CmpKind
	Killed ID[A, I, G]
}

func compareGenerations[A any, I Index, G Generation](current, cached AllocGen, lastKilled ID[A, I, G]) GenerationCmp[A, I, G] {
	if cached > current {
		return GenerationCmp[A, I, G]{Kind: Outdated}
	}
	switch current.Sub(cached) {
	case 0:
		return GenerationCmp[A, I, G]{Kind: Synced}
	case 1:
		return GenerationCmp[A, I, G]{Kind: OffByOne, Killed: lastKilled}
	default:
		return GenerationCmp[A, I, G]{Kind: Outdated}
	}
}

package genidx

import "fmt"

// generationSource is the allocator side of a Stamp.
type generationSource interface {
	Generation() AllocGen
}

// Stamp is a scoped capability: it records the AllocGen of the allocator it
// was minted against. It stays fresh until that allocator kills an id.
//
// The zero Stamp is never fresh.
type Stamp struct {
	gen AllocGen
	src generationSource
}

func newStamp(src generationSource) Stamp {
	return Stamp{gen: src.Generation(), src: src}
}

// Generation returns the AllocGen the stamp was minted at.
func (s Stamp) Generation() AllocGen { return s.gen }

// Check returns a *StaleProofError if a kill happened since the stamp was
// minted.
func (s Stamp) Check() error {
	if s.src == nil {
		return &StaleProofError{}
	}
	if cur := s.src.Generation(); cur != s.gen {
		return &StaleProofError{Minted: s.gen, Current: cur}
	}
	return nil
}

// Fresh reports whether Check would succeed.
func (s Stamp) Fresh() bool {
	return s.src != nil && s.src.Generation() == s.gen
}

// Must panics if the stamp is stale. Using a stale proof means the caller
// kept it across a kill, which is a contract violation.
func (s Stamp) Must() {
	if err := s.Check(); err != nil {
		panic(fmt.Sprintf("genidx: %v", err))
	}
}

// Valid is a proof that an id was alive when the proof was minted. It is
// produced by an allocator's Validate or by a validated cache view.
//
// Every accessor re-checks that the allocator has not killed anything since
// minting and panics otherwise. Use Get for an error instead of a panic.
type Valid[A any, I Index, G Generation] struct {
	id    ID[A, I, G]
	stamp Stamp
}

// Attest wraps id in a proof tied to stamp. Callers must only attest ids
// they checked alive under that stamp; dependent caches use it for entries
// that survived a synchronization.
func Attest[A any, I Index, G Generation](stamp Stamp, id ID[A, I, G]) Valid[A, I, G] {
	return Valid[A, I, G]{id: id, stamp: stamp}
}

// ID returns the proven id. It panics if the proof is stale.
func (v Valid[A, I, G]) ID() ID[A, I, G] {
	v.stamp.Must()
	return v.id
}

// Get returns the proven id, or an error wrapping ErrStaleProof.
func (v Valid[A, I, G]) Get() (ID[A, I, G], error) {
	if err := v.stamp.Check(); err != nil {
		return ID[A, I, G]{}, err
	}
	return v.id, nil
}

// Slot returns the proven id's index as a slice offset. It panics if the
// proof is stale.
func (v Valid[A, I, G]) Slot() int {
	v.stamp.Must()
	return v.id.Slot()
}

// Fresh reports whether the proof can still be used.
func (v Valid[A, I, G]) Fresh() bool {
	return v.stamp.Fresh()
}

// Stamp returns the capability the proof was minted under.
func (v Valid[A, I, G]) Stamp() Stamp {
	return v.stamp
}

// Unchecked returns the wrapped id without a freshness check. The result is
// a plain id and carries no liveness guarantee.
func (v Valid[A, I, G]) Unchecked() ID[A, I, G] {
	return v.id
}

func (v Valid[A, I, G]) String() string {
	return fmt.Sprintf("Valid(%s)", v.id)
}

// Proven reports whether h is a fresh Valid proof. Caches use it to decide
// whether an inserted id may be trusted on the next synchronization.
func Proven[A any, I Index, G Generation](h Handle[A, I, G]) bool {
	v, ok := h.(Valid[A, I, G])
	return ok && v.Fresh()
}

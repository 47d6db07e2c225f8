package genidx

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOverflow is returned when an arena's index type cannot
	// represent the next slot.
	ErrIndexOverflow = errors.New("index overflow")

	// ErrStaleProof is returned when a Valid proof or a validated view is
	// used after its allocator killed an id.
	ErrStaleProof = errors.New("stale validity proof")
)

// IndexOverflowError reports which arena ran out of index space.
//
// errors.Is(err, ErrIndexOverflow) holds. The conversion error that detected
// the overflow can be accessed via errors.Unwrap.
type IndexOverflowError struct {
	Arena string
	Slots uint64
	cause error
}

func (e *IndexOverflowError) Error() string {
	return fmt.Sprintf("%s: %v: cannot address slot %d", e.Arena, ErrIndexOverflow, e.Slots)
}

func (e *IndexOverflowError) Unwrap() []error {
	return []error{ErrIndexOverflow, e.cause}
}

// StaleProofError reports a proof that outlived the generation it was
// minted at.
type StaleProofError struct {
	Minted  AllocGen
	Current AllocGen
}

func (e *StaleProofError) Error() string {
	return fmt.Sprintf("%v: minted at generation %d, allocator at %d", ErrStaleProof, e.Minted, e.Current)
}

func (e *StaleProofError) Unwrap() error { return ErrStaleProof }

// Package genidx provides generational index allocation.
//
// An allocator issues lightweight, comparable ids that name slots in a
// growable table. A recycling allocator detects use of an id after its slot
// was freed and reused, and lets dependent caches (maps, graphs, columns)
// resynchronize lazily instead of rescanning on every mutation.
//
// # Quick Start
//
//	type Ship struct{}
//	type ShipID = genidx.ID[Ship, uint32, uint32]
//
//	ships := genidx.NewDynamic[Ship, uint32, uint32]()
//	v, _ := ships.Create()      // proof, fresh until the next kill
//	id := v.ID()
//	ships.Kill(id)              // true
//	ships.Kill(id)              // false, already dead
//	ships.IsAlive(id)           // false
//
// # Allocators
//
//   - Fixed: append-only, no generations, ids never die.
//   - Dynamic: LIFO free list, generation bumped on kill, generations cycle
//     1..MAX and never take the value zero.
//
// # Validity Proofs
//
// Validate returns a Valid proof stamped with the allocator's AllocGen (its
// kill counter). Any use of the proof re-checks the stamp and panics if a
// kill happened since. Valid.Get reports the same condition as an error.
//
// # Generation-Diff Synchronization
//
// Dependent caches embed a Tracker holding the AllocGen of their last
// resynchronization. On Validate the allocator classifies the lag:
//
//   - Synced: nothing to do.
//   - OffByOne: exactly one kill; the allocator remembers the id, so the
//     cache removes it directly.
//   - Outdated: two or more kills, or first sync; the cache rescans every
//     entry with IsAlive.
//
// Batching many kills between reads degrades the next sync of every
// affected cache to a rescan. That is the accepted trade-off for keeping a
// single remembered kill.
//
// # Concurrency
//
// Nothing here locks. Create, Kill and cache inserts must be serialized by
// the caller. Reads of dense stores addressed by validated ids may run in
// parallel while no mutation happens; see component.Store.ParallelRange.
package genidx

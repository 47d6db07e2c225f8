// Package component provides dense per-slot value storage for arenas.
//
// A Store is indexed by the slot of an id (or of a Valid proof) and is the
// collaborator an entity/component system keeps next to an allocator:
//
//	ships := genidx.NewDynamic[Ship, uint32, uint32]()
//	names := component.New[genidx.Valid[Ship, uint32, uint32], string](0)
//
//	v, _ := ships.Create()
//	names.Insert(v, "Rocinante")
//	names.Get(v) // "Rocinante"
//
// Architecture:
//   - Segmented design: 1024 values per segment, segments never move
//   - Append-or-overwrite inserts; a gap is a contract violation and panics
//   - ParallelRange fans reads out over an errgroup while no mutation runs
package component

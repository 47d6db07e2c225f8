// Package idmap provides a hash map keyed by generational ids that prunes
// dead keys lazily.
//
// A Map does not need its allocator until it is read through Validate:
//
//	var cargo idmap.Map[Ship, uint32, uint32, int]
//	cargo.Insert(v, 10) // v is a Valid proof from ships.Create
//
//	view := cargo.Validate(ships)
//	for ship, n := range view.All() {
//		...
//	}
//
// Validate removes at most the single killed key when the allocator killed
// exactly one id since the last call, and rescans every key otherwise.
package idmap

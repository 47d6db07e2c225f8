// Package testutil provides testing utilities for genidx.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a generator for interleaved
// allocator/cache operations, used to check that every cache ends up
// holding exactly the live ids regardless of the synchronization path.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	w := testutil.NewWorld[Ship, uint32, uint32]()
//	for _, op := range rng.Ops(1000, testutil.DefaultMix) {
//		switch op.Kind {
//		case testutil.OpCreate:
//			w.Create()
//		case testutil.OpKill:
//			w.Kill(op)
//		...
//		}
//	}
package testutil

// Package graph provides an edge-weighted graph over generational ids.
//
// Edges are kept in a B-tree ordered by (from, to), so the out-edges of a
// node are a contiguous range. Edges whose endpoints die are pruned lazily
// by Validate, using the allocator's kill counter to pick between removing
// the edges of a single killed node and checking every edge.
package graph

// Package bitset provides a fixed-width dense bitvector (Bitset) and a
// sparse variant (SparseBitset) keyed by an arbitrary comparable type.
//
// Both are used by the mdd package to represent per-node value sets:
// a Bitset for the scheduler's constraint-scheduled flags, and
// SparseBitset for per-node value sets keyed by the actual domain values
// a constraint is scoped over (which need not be contiguous integers
// starting at zero).
package bitset

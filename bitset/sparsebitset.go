package bitset

import "fmt"

// SparseBitset is a dense Bitset addressed through a map from an
// arbitrary comparable key to a bit position. Bit positions are assigned
// once, at construction, in the order the keys are supplied.
//
// Two sparse bitsets may only be combined (Union, Intersect, SizeUnion)
// if they were built from key sets yielding the same bit positions;
// callers satisfy this by constructing both from the same key slice.
type SparseBitset[T comparable] struct {
	dense *Bitset
	index map[T]int
}

// NewSparse builds a SparseBitset over keys, assigning bit positions in
// slice order. Duplicate keys collapse onto the same bit.
func NewSparse[T comparable](keys []T) *SparseBitset[T] {
	index := make(map[T]int, len(keys))
	bit := 0
	for _, key := range keys {
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = bit
		bit++
	}

	return &SparseBitset[T]{
		dense: New(len(index)),
		index: index,
	}
}

func (s *SparseBitset[T]) bitOf(key T) int {
	bit, ok := s.index[key]
	if !ok {
		panic(fmt.Errorf("%w: %v", ErrUnknownKey, key))
	}

	return bit
}

// Contains reports whether key is set. Panics on an unknown key.
func (s *SparseBitset[T]) Contains(key T) bool {
	return s.dense.Contains(s.bitOf(key))
}

// Insert sets key. Panics on an unknown key.
func (s *SparseBitset[T]) Insert(key T) {
	s.dense.Insert(s.bitOf(key))
}

// Remove clears key. Panics on an unknown key.
func (s *SparseBitset[T]) Remove(key T) {
	s.dense.Remove(s.bitOf(key))
}

// Size returns the number of set keys.
func (s *SparseBitset[T]) Size() int {
	return s.dense.Size()
}

// SizeUnion returns the popcount of the union with other, without
// mutating either operand.
func (s *SparseBitset[T]) SizeUnion(other *SparseBitset[T]) int {
	return s.dense.SizeUnion(other.dense)
}

// Union ORs other into s in place.
func (s *SparseBitset[T]) Union(other *SparseBitset[T]) {
	s.dense.Union(other.dense)
}

// Intersect ANDs other into s in place.
func (s *SparseBitset[T]) Intersect(other *SparseBitset[T]) {
	s.dense.Intersect(other.dense)
}

// Reset fills the underlying dense bitset with pattern (0 clears, ^uint64(0)
// sets every key currently known to s).
func (s *SparseBitset[T]) Reset(pattern uint64) {
	s.dense.Reset(pattern)
}

// Hash delegates to the underlying dense bitset.
func (s *SparseBitset[T]) Hash() uint64 {
	return s.dense.Hash()
}

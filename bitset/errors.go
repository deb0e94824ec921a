package bitset

import "errors"

// ErrWidthMismatch is the error Union, Intersect and SizeUnion panic with
// when the two operands' word arrays differ in length. Operands of
// different widths that share a word count are not detected. Combining
// bitsets of different widths is a contract violation, not a recoverable
// runtime condition.
var ErrWidthMismatch = errors.New("bitset: operand width mismatch")

// ErrUnknownKey indicates a SparseBitset was asked about a key it was
// not constructed with. This always signals a scope mismatch between a
// constraint and the bitset it built for that scope, so callers should
// treat it as a programming error rather than recover from it.
var ErrUnknownKey = errors.New("bitset: unknown key")

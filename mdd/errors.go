package mdd

import "errors"

// ErrOrderingMismatch is returned by SetVariableOrdering when the given
// permutation's length does not equal the number of variables, or when
// it is not a bijection onto [0, n).
var ErrOrderingMismatch = errors.New("mdd: variable ordering is not a permutation of [0, n)")

// ErrLayerInvariantBroken indicates an edge whose endpoints are not in
// adjacent layers. AddEdge panics with this if asked to create one;
// seeing it means a propagator or a graph-surgery primitive has a bug.
var ErrLayerInvariantBroken = errors.New("mdd: edge endpoints are not in adjacent layers")

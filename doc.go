// Package lvmdd is a library for building and propagating multi-valued
// decision diagrams (MDDs) over finite-domain constraint satisfaction
// problems.
//
// An MDD here is a layered DAG with one layer per variable plus a
// terminal layer: each node's outgoing edges enumerate the values still
// considered possible for that layer's variable, and a root-to-sink path
// is a candidate assignment. Constraint propagators prune edges that can
// never participate in a satisfying assignment, without ever
// materializing the full assignment space.
//
// Two subpackages carry the weight:
//
//	bitset/ — fixed-width dense bitvectors and a generic sparse variant
//	          keyed by an arbitrary comparable type, used by every
//	          propagator to track per-node value sets.
//	mdd/    — Problem/Variable modelling, the Mdd graph itself (arena-
//	          indexed nodes and edges, swap-remove adjacency surgery),
//	          the AllDifferent and NotEquals propagators, the fixpoint
//	          scheduler, and width-bounded refinement.
//
// A typical session builds a Problem, registers constraints over its
// variables, fixes a variable ordering, constructs the initial
// one-node-per-layer relaxation, and runs PropagateConstraints to a
// fixpoint:
//
//	p := mdd.NewProblem()
//	vars := p.AddVariables(3, []int{0, 1, 2})
//	mdd.AllDifferentConstraint(p, vars)
//	p.SetVariableOrdering([]int{0, 1, 2})
//	m := mdd.New(p)
//	m.PropagateConstraints(context.Background(), p)
//	m.CountSolutions()
package lvmdd

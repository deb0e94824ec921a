// Package mdd implements constraint propagation over multi-valued
// decision diagrams (MDDs).
//
// A Problem describes a finite CSP: a set of integer Variables, each with
// a finite domain, plus a set of Constraints over them. Mdd builds a
// layered decision diagram — one layer per variable, in the Problem's
// variable ordering — where every root-to-sink path assigns a value to
// every variable. PropagateConstraints then drives a fixpoint loop that
// removes edges whose assignment cannot be extended to a path
// satisfying every constraint; Refine tightens the diagram further by
// splitting high-in-degree nodes against a width cap.
//
// The package does not search for or enumerate solutions: it refines the
// diagram in place. Callers count root-to-sink paths (see CountSolutions)
// to detect whether any solution survives.
package mdd

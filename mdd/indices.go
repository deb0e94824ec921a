package mdd

// VariableIndex identifies a variable in a Problem.
type VariableIndex int

// ValueIndex identifies a position within a variable's domain.
type ValueIndex int

// ConstraintIndex identifies a constraint in a Problem.
type ConstraintIndex int

// LayerIndex identifies a layer of the MDD, 0..n where n is the number
// of variables. Layer n is the terminal (sink) layer and has no
// decision variable.
type LayerIndex int

// NodeIndex is a handle into the Mdd's node arena.
type NodeIndex int

// EdgeIndex is a handle into the Mdd's edge arena.
type EdgeIndex int

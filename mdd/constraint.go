package mdd

// Constraint is the uniform interface every propagator implements. The
// Mdd and the scheduler know nothing about concrete constraint types;
// they drive every constraint through this interface alone.
//
// Implementations own per-node state shaped like the MDD's layer/index
// scheme (typically [][]T, indexed first by LayerIndex then by a node's
// position within that layer) and must grow that state in lockstep with
// AddNodeInLayer whenever the Mdd creates a node.
type Constraint interface {
	// UpdateVariableOrdering recomputes any ordering-derived state: which
	// layers fall in the constraint's scope, and any positional
	// information (e.g. Hall-set sizes) the propagator needs.
	UpdateVariableOrdering(ordering []int)

	// UpdatePropertyTopDown recomputes this constraint's per-node
	// top-down state for every node, layer 1 upward.
	UpdatePropertyTopDown(m *Mdd)

	// UpdatePropertyBottomUp recomputes this constraint's per-node
	// bottom-up state for every node, layer n-1 downward.
	UpdatePropertyBottomUp(m *Mdd)

	// IsLayerInScope reports whether layer's decision variable is in the
	// constraint's scope. Must be cheap; the scheduler calls it per layer
	// per pass.
	IsLayerInScope(layer LayerIndex) bool

	// IsAssignmentInvalid reports whether edge can be pruned given the
	// constraint's current (already up to date) properties.
	IsAssignmentInvalid(m *Mdd, edge EdgeIndex) bool

	// AddNodeInLayer grows the constraint's internal per-node state to
	// account for a newly created node in layer.
	AddNodeInLayer(layer LayerIndex)

	// HashNode contributes a canonical digest of node's per-constraint
	// state, used by refinement to deduplicate split nodes. Constraints
	// with no state relevant to merge equivalence may return 0.
	HashNode(m *Mdd, node NodeIndex) uint64
}

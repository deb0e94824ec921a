package mdd

// Node is one member of an MDD layer. Its layer is fixed at creation;
// only its activity flag and adjacency lists change afterward.
//
// Constraint per-node state is never stored here — each propagator keeps
// its own [][]T tables indexed by (layer, indexInLayer), exactly as
// NotEquals and AllDifferent do (see notequals.go, alldifferent.go).
// That keeps Node a plain, non-generic struct and avoids every
// constraint having to agree on a common property representation.
type Node struct {
	layer        LayerIndex
	indexInLayer int
	active       bool
	parents      []EdgeIndex
	children     []EdgeIndex
}

// Layer returns the node's (immutable) layer.
func (n *Node) Layer() LayerIndex {
	return n.layer
}

// IndexInLayer returns the node's position within its layer's node
// list. Used by propagators to index their own per-node tables.
func (n *Node) IndexInLayer() int {
	return n.indexInLayer
}

// IsActive reports whether the node is still reachable (has not been
// cascade-removed).
func (n *Node) IsActive() bool {
	return n.active
}

// NumberParents returns the number of active incoming edges.
func (n *Node) NumberParents() int {
	return len(n.parents)
}

// ParentEdgeAt returns the i-th incoming edge. Valid indices shift after
// a swap-remove; callers iterating under deletion must iterate in
// reverse (see Mdd.DeactivateEdge).
func (n *Node) ParentEdgeAt(i int) EdgeIndex {
	return n.parents[i]
}

// NumberChildren returns the number of active outgoing edges.
func (n *Node) NumberChildren() int {
	return len(n.children)
}

// ChildEdgeAt returns the i-th outgoing edge. See ParentEdgeAt for the
// iteration-under-deletion caveat.
func (n *Node) ChildEdgeAt(i int) EdgeIndex {
	return n.children[i]
}

func (n *Node) addParentEdge(e EdgeIndex) {
	n.parents = append(n.parents, e)
}

func (n *Node) addChildEdge(e EdgeIndex) {
	n.children = append(n.children, e)
}

// swapRemoveParentAt removes the parent edge at position i via
// swap-remove, reordering the remaining siblings.
func (n *Node) swapRemoveParentAt(i int) {
	last := len(n.parents) - 1
	n.parents[i] = n.parents[last]
	n.parents = n.parents[:last]
}

// swapRemoveChildAt removes the child edge at position i via
// swap-remove, reordering the remaining siblings.
func (n *Node) swapRemoveChildAt(i int) {
	last := len(n.children) - 1
	n.children[i] = n.children[last]
	n.children = n.children[:last]
}

// removeParentEdge removes e from the parent list by value, wherever it
// currently sits (its position may have moved due to prior swap-removes).
func (n *Node) removeParentEdge(e EdgeIndex) {
	for i, p := range n.parents {
		if p == e {
			n.swapRemoveParentAt(i)

			return
		}
	}
}

// removeChildEdge removes e from the child list by value.
func (n *Node) removeChildEdge(e EdgeIndex) {
	for i, c := range n.children {
		if c == e {
			n.swapRemoveChildAt(i)

			return
		}
	}
}

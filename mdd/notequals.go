package mdd

import "github.com/katalvlaran/lvmdd/bitset"

// NotEquals is the binary x != y propagator. It tracks, per node, a
// single bitset per direction over the union of x's and y's domains:
// the values that x's and y's layers assign on some path through the
// node (top-down toward the sink, bottom-up toward the source). An edge is
// pruned when the relevant endpoint's bitset, for the other variable in
// the pair, has collapsed to exactly the edge's own assignment.
type NotEquals struct {
	x, y     VariableIndex
	universe []int

	layerX, layerY LayerIndex

	topDown  [][]*bitset.SparseBitset[int]
	bottomUp [][]*bitset.SparseBitset[int]
}

// NewNotEquals builds a NotEquals propagator over x and y.
func NewNotEquals(problem *Problem, x, y VariableIndex) *NotEquals {
	universe := domainUnion(problem, []VariableIndex{x, y})
	layers := problem.NumberVariables() + 1

	return &NotEquals{
		x:        x,
		y:        y,
		universe: universe,
		topDown:  make([][]*bitset.SparseBitset[int], layers),
		bottomUp: make([][]*bitset.SparseBitset[int], layers),
	}
}

// NotEqualsConstraint registers a NotEquals constraint between x and y
// and returns its index.
func NotEqualsConstraint(problem *Problem, x, y VariableIndex) ConstraintIndex {
	idx := problem.addConstraint(NewNotEquals(problem, x, y))
	problem.Variable(x).AddConstraint(idx)
	problem.Variable(y).AddConstraint(idx)

	return idx
}

// UpdateVariableOrdering records which layers x and y fall on under the
// new ordering.
func (ne *NotEquals) UpdateVariableOrdering(ordering []int) {
	ne.layerX = LayerIndex(ordering[ne.x])
	ne.layerY = LayerIndex(ordering[ne.y])
}

// IsLayerInScope reports whether layer is x's or y's layer.
func (ne *NotEquals) IsLayerInScope(layer LayerIndex) bool {
	return layer == ne.layerX || layer == ne.layerY
}

// AddNodeInLayer grows both per-node tables for layer by one fresh,
// empty entry.
func (ne *NotEquals) AddNodeInLayer(layer LayerIndex) {
	ne.topDown[layer] = append(ne.topDown[layer], bitset.NewSparse(ne.universe))
	ne.bottomUp[layer] = append(ne.bottomUp[layer], bitset.NewSparse(ne.universe))
}

// UpdatePropertyTopDown recomputes the top-down bitset for every node,
// layer 1 upward: the union of every parent's top-down bitset, plus the
// parent edge's own assignment when the parent's layer is in scope.
func (ne *NotEquals) UpdatePropertyTopDown(m *Mdd) {
	for layer := LayerIndex(1); int(layer) < m.NumberLayers(); layer++ {
		for i := 0; i < m.Layer(layer).NumberNodes(); i++ {
			node := m.Layer(layer).NodeAt(i)
			self := ne.topDown[layer][i]
			self.Reset(0)

			n := m.Node(node)
			for p := 0; p < n.NumberParents(); p++ {
				edge := m.Edge(n.ParentEdgeAt(p))
				parent := m.Node(edge.From())
				source := ne.topDown[parent.Layer()][parent.IndexInLayer()]

				if ne.IsLayerInScope(parent.Layer()) {
					self.Insert(edge.Assignment())
				}
				self.Union(source)
			}
		}
	}
}

// UpdatePropertyBottomUp mirrors UpdatePropertyTopDown over outgoing
// edges, from the sink upward.
func (ne *NotEquals) UpdatePropertyBottomUp(m *Mdd) {
	for layer := int(m.NumberLayers()) - 2; layer >= 0; layer-- {
		l := LayerIndex(layer)
		inScope := ne.IsLayerInScope(l)
		for i := 0; i < m.Layer(l).NumberNodes(); i++ {
			node := m.Layer(l).NodeAt(i)
			self := ne.bottomUp[l][i]
			self.Reset(0)

			n := m.Node(node)
			for c := 0; c < n.NumberChildren(); c++ {
				edge := m.Edge(n.ChildEdgeAt(c))
				child := m.Node(edge.To())
				target := ne.bottomUp[child.Layer()][child.IndexInLayer()]

				if inScope {
					self.Insert(edge.Assignment())
				}
				self.Union(target)
			}
		}
	}
}

// IsAssignmentInvalid reports whether edge's assignment to x (or y)
// leaves the other variable with no support left: its bitset at the
// source node, in the direction facing the other variable's layer, has
// collapsed to exactly this one value.
func (ne *NotEquals) IsAssignmentInvalid(m *Mdd, edgeIdx EdgeIndex) bool {
	edge := m.Edge(edgeIdx)
	v := edge.Assignment()
	source := m.Node(edge.From())
	layer := source.Layer()
	decision := m.Layer(layer).Decision()

	// The edge's own layer faces the other variable's layer through
	// whichever direction points toward it: bottom-up if the other
	// variable sits deeper, top-down if it sits shallower.
	var useBottomUp bool
	if decision == ne.x {
		useBottomUp = ne.layerX < ne.layerY
	} else {
		useBottomUp = ne.layerY < ne.layerX
	}

	var side *bitset.SparseBitset[int]
	if useBottomUp {
		side = ne.bottomUp[layer][source.IndexInLayer()]
	} else {
		side = ne.topDown[layer][source.IndexInLayer()]
	}

	return side.Contains(v) && side.Size() == 1
}

// HashNode mixes the top-down and bottom-up bitsets into a digest for
// refinement's merge-deduplication step.
func (ne *NotEquals) HashNode(m *Mdd, node NodeIndex) uint64 {
	n := m.Node(node)
	layer, idx := n.Layer(), n.IndexInLayer()

	return ne.topDown[layer][idx].Hash()*1099511628211 ^ ne.bottomUp[layer][idx].Hash()
}

package mdd

import "github.com/katalvlaran/lvmdd/bitset"

// AllDifferent is the MDD-based all-different propagator, after Hoda,
// Van Hoeve & Hooker, "A systematic approach to MDD-based constraint
// programming" (CP 2010).
//
// Per node it tracks two sparse bitsets per direction over the union of
// the scope's domains: A(n), the values on every source-to-n (top-down)
// or n-to-sink (bottom-up) path, and S(n), the values on some such path.
// Edge pruning combines A-membership (a value already spent on every
// path to this edge) with Hall-set detection over S (a block of scope
// variables whose combined domain is exactly as large as the block,
// so every value in it is spent by the block as a whole).
type AllDifferent struct {
	variables []VariableIndex
	universe  []int

	inScope *bitset.Bitset // keyed by LayerIndex
	up      map[VariableIndex]int
	down    map[VariableIndex]int

	// per-direction, per-node state: [layer][indexInLayer]
	aTD, sTD [][]*bitset.SparseBitset[int]
	aBU, sBU [][]*bitset.SparseBitset[int]
}

// NewAllDifferent builds an AllDifferent propagator over variables. The
// union of their domains becomes the value universe every per-node
// bitset is keyed by.
func NewAllDifferent(problem *Problem, variables []VariableIndex) *AllDifferent {
	universe := domainUnion(problem, variables)
	layers := problem.NumberVariables() + 1

	return &AllDifferent{
		variables: append([]VariableIndex(nil), variables...),
		universe:  universe,
		inScope:   bitset.New(problem.NumberVariables()),
		aTD:       make([][]*bitset.SparseBitset[int], layers),
		sTD:       make([][]*bitset.SparseBitset[int], layers),
		aBU:       make([][]*bitset.SparseBitset[int], layers),
		sBU:       make([][]*bitset.SparseBitset[int], layers),
	}
}

// AllDifferentConstraint registers an AllDifferent constraint over
// variables and returns its index.
func AllDifferentConstraint(problem *Problem, variables []VariableIndex) ConstraintIndex {
	idx := problem.addConstraint(NewAllDifferent(problem, variables))
	for _, v := range variables {
		problem.Variable(v).AddConstraint(idx)
	}

	return idx
}

func domainUnion(problem *Problem, variables []VariableIndex) []int {
	seen := make(map[int]bool)
	var universe []int
	for _, v := range variables {
		for _, value := range problem.Variable(v).Domain() {
			if !seen[value] {
				seen[value] = true
				universe = append(universe, value)
			}
		}
	}

	return universe
}

// UpdateVariableOrdering recomputes which layers are in scope and, for
// each scope variable, the number of scope variables strictly above
// (up) and strictly below (down) it under the new ordering.
func (a *AllDifferent) UpdateVariableOrdering(ordering []int) {
	a.inScope.Reset(0)
	layers := make([]int, len(a.variables))
	for i, v := range a.variables {
		layers[i] = ordering[v]
		a.inScope.Insert(ordering[v])
	}

	a.up = make(map[VariableIndex]int, len(a.variables))
	a.down = make(map[VariableIndex]int, len(a.variables))
	for _, v := range a.variables {
		own := ordering[v]
		up, down := 0, 0
		for _, l := range layers {
			switch {
			case l < own:
				up++
			case l > own:
				down++
			}
		}
		a.up[v] = up
		a.down[v] = down
	}
}

// IsLayerInScope reports whether layer's decision variable is one of
// this constraint's scope variables.
func (a *AllDifferent) IsLayerInScope(layer LayerIndex) bool {
	return int(layer) < len(a.aTD)-1 && a.inScope.Contains(int(layer))
}

// AddNodeInLayer grows every per-node table for layer by one fresh,
// empty entry.
func (a *AllDifferent) AddNodeInLayer(layer LayerIndex) {
	a.aTD[layer] = append(a.aTD[layer], bitset.NewSparse(a.universe))
	a.sTD[layer] = append(a.sTD[layer], bitset.NewSparse(a.universe))
	a.aBU[layer] = append(a.aBU[layer], bitset.NewSparse(a.universe))
	a.sBU[layer] = append(a.sBU[layer], bitset.NewSparse(a.universe))
}

// UpdatePropertyTopDown recomputes A_td/S_td for every node, layer 1
// upward, by aggregating over each node's incoming edges: A as
// intersection, S as union, with each parent's contributed value
// temporarily folded into its own A before the intersection (A does not
// distribute over union, so the fold-and-roll-back keeps the
// aggregation edge-order-independent).
func (a *AllDifferent) UpdatePropertyTopDown(m *Mdd) {
	for layer := LayerIndex(1); int(layer) < m.NumberLayers(); layer++ {
		for i := 0; i < m.Layer(layer).NumberNodes(); i++ {
			node := m.Layer(layer).NodeAt(i)
			aT, sT := a.aTD[layer][i], a.sTD[layer][i]
			aT.Reset(^uint64(0))
			sT.Reset(0)

			n := m.Node(node)
			for p := 0; p < n.NumberParents(); p++ {
				edge := m.Edge(n.ParentEdgeAt(p))
				parent := m.Node(edge.From())
				lp := edge.LayerFrom()
				aP := a.aTD[lp][parent.IndexInLayer()]
				sP := a.sTD[lp][parent.IndexInLayer()]
				a.foldIntersectUnion(edge, lp, aT, sT, aP, sP)
			}
		}
	}
}

// UpdatePropertyBottomUp mirrors UpdatePropertyTopDown, aggregating over
// each node's outgoing edges from the sink upward: the node being
// computed (the edge's shallower endpoint) receives the value directly
// into its S, while the child's A temporarily holds the value during
// the intersection.
func (a *AllDifferent) UpdatePropertyBottomUp(m *Mdd) {
	for layer := int(m.NumberLayers()) - 2; layer >= 0; layer-- {
		l := LayerIndex(layer)
		for i := 0; i < m.Layer(l).NumberNodes(); i++ {
			node := m.Layer(l).NodeAt(i)
			aS, sS := a.aBU[l][i], a.sBU[l][i]
			aS.Reset(^uint64(0))
			sS.Reset(0)

			n := m.Node(node)
			for c := 0; c < n.NumberChildren(); c++ {
				edge := m.Edge(n.ChildEdgeAt(c))
				child := m.Node(edge.To())
				aC := a.aBU[child.Layer()][child.IndexInLayer()]
				sC := a.sBU[child.Layer()][child.IndexInLayer()]
				a.foldIntersectUnion(edge, edge.LayerFrom(), aS, sS, aC, sC)
			}
		}
	}
}

// foldIntersectUnion implements the shared aggregation step described in
// UpdatePropertyTopDown/UpdatePropertyBottomUp: if edge's own layer
// (always its shallower endpoint, LayerFrom) is in this constraint's
// scope, the edge's value is inserted directly into self's S and
// temporarily folded into other's A; then self.A is intersected with
// other.A and self.S is unioned with other.S; finally the temporary
// fold, if any, is rolled back.
func (a *AllDifferent) foldIntersectUnion(edge *Edge, ownLayer LayerIndex, selfA, selfS, otherA, otherS *bitset.SparseBitset[int]) {
	v := edge.Assignment()
	if a.IsLayerInScope(ownLayer) {
		wasIn := otherA.Contains(v)
		if !wasIn {
			otherA.Insert(v)
		}
		selfS.Insert(v)
		selfA.Intersect(otherA)
		selfS.Union(otherS)
		if !wasIn {
			otherA.Remove(v)
		}

		return
	}

	selfA.Intersect(otherA)
	selfS.Union(otherS)
}

// IsAssignmentInvalid applies the five pruning rules from Hoda/Van
// Hoeve/Hooker §3: a value already spent on every path to (or from) the
// edge's endpoint, or spent by a Hall set formed from the scope
// variables strictly above, strictly below, or straddling x.
func (a *AllDifferent) IsAssignmentInvalid(m *Mdd, edgeIdx EdgeIndex) bool {
	edge := m.Edge(edgeIdx)
	v := edge.Assignment()
	p, q := m.Node(edge.From()), m.Node(edge.To())
	lp := edge.LayerFrom()
	x := m.Layer(lp).Decision()

	aTDp := a.aTD[lp][p.IndexInLayer()]
	sTDp := a.sTD[lp][p.IndexInLayer()]
	aBUq := a.aBU[q.Layer()][q.IndexInLayer()]
	sBUq := a.sBU[q.Layer()][q.IndexInLayer()]

	if aTDp.Contains(v) {
		return true
	}
	if aBUq.Contains(v) {
		return true
	}

	up, down := a.up[x], a.down[x]

	if sTDp.Contains(v) && sTDp.Size() == up {
		return true
	}
	if sBUq.Contains(v) && sBUq.Size() == down {
		return true
	}
	if sTDp.Contains(v) && sBUq.Contains(v) && up+down == sTDp.SizeUnion(sBUq) {
		return true
	}

	return false
}

// HashNode mixes A and S, top-down and bottom-up, into a single digest
// for refinement's merge-deduplication step.
func (a *AllDifferent) HashNode(m *Mdd, node NodeIndex) uint64 {
	n := m.Node(node)
	layer, idx := n.Layer(), n.IndexInLayer()

	h := a.aTD[layer][idx].Hash()
	h = h*1099511628211 ^ a.sTD[layer][idx].Hash()
	h = h*1099511628211 ^ a.aBU[layer][idx].Hash()
	h = h*1099511628211 ^ a.sBU[layer][idx].Hash()

	return h
}

package mdd

import (
	"fmt"

	"github.com/katalvlaran/lvmdd/bitset"
)

// Mdd is a layered DAG with exactly one source (layer 0) and one sink
// (layer n), where n is the problem's variable count. Nodes and edges
// are stored in two arenas addressed by NodeIndex/EdgeIndex handles;
// layers hold only lists of those handles. Nodes and edges are created
// during construction and during SplitNode; they are never physically
// removed, only deactivated.
type Mdd struct {
	nodes  []*Node
	edges  []*Edge
	layers []*Layer

	queue     []ConstraintIndex
	scheduled *bitset.Bitset
	cache     map[uint64]NodeIndex
}

// New builds the initial relaxation for problem: n+1 layers, one node
// per layer, and for each layer an active edge per domain value of that
// layer's decision variable. problem.SetVariableOrdering must have been
// called first.
func New(problem *Problem) *Mdd {
	n := problem.NumberVariables()
	m := &Mdd{
		layers: make([]*Layer, n+1),
		cache:  make(map[uint64]NodeIndex),
	}
	for i := range m.layers {
		m.layers[i] = newLayer()
	}
	m.scheduled = bitset.New(problem.NumberConstraints())

	for layer := LayerIndex(0); int(layer) < len(m.layers); layer++ {
		m.addNode(problem, layer)
	}

	for variableID, layer := range problem.VariableOrdering() {
		m.layers[layer].setDecision(VariableIndex(variableID))
	}

	for layerFrom := LayerIndex(0); int(layerFrom) < len(m.layers)-1; layerFrom++ {
		source := m.layers[layerFrom].NodeAt(0)
		target := m.layers[layerFrom+1].NodeAt(0)
		variable := m.layers[layerFrom].Decision()

		domain := problem.Variable(variable).Domain()
		for _, value := range domain {
			m.AddEdge(source, target, value)
		}
	}

	return m
}

func (m *Mdd) addNode(problem *Problem, layer LayerIndex) NodeIndex {
	indexInLayer := m.layers[layer].NumberNodes()
	idx := NodeIndex(len(m.nodes))
	m.nodes = append(m.nodes, &Node{layer: layer, indexInLayer: indexInLayer, active: true})
	m.layers[layer].addNode(idx)

	for _, c := range problem.IterConstraints() {
		problem.Constraint(c).AddNodeInLayer(layer)
	}

	return idx
}

// AddEdge appends an active edge from -> to carrying value, registering
// it in both endpoints' adjacency lists.
func (m *Mdd) AddEdge(from, to NodeIndex, value int) EdgeIndex {
	if m.nodes[to].layer != m.nodes[from].layer+1 {
		panic(fmt.Errorf("%w: from layer %d to layer %d", ErrLayerInvariantBroken, m.nodes[from].layer, m.nodes[to].layer))
	}

	idx := EdgeIndex(len(m.edges))
	m.edges = append(m.edges, &Edge{
		layerFrom:  m.nodes[from].layer,
		from:       from,
		to:         to,
		assignment: value,
		active:     true,
	})
	m.nodes[from].addChildEdge(idx)
	m.nodes[to].addParentEdge(idx)

	return idx
}

// DeactivateEdge marks e inactive and removes it from both endpoints'
// adjacency lists via swap-remove. It does not cascade; callers wanting
// cascading removal of now-childless/parentless nodes should go through
// RemoveNode or the scheduler's own bookkeeping.
func (m *Mdd) DeactivateEdge(e EdgeIndex) {
	edge := m.edges[e]
	if !edge.active {
		return
	}
	edge.active = false
	m.nodes[edge.from].removeChildEdge(e)
	m.nodes[edge.to].removeParentEdge(e)
}

// RemoveNode deactivates node and cascades: every remaining incident
// edge is deactivated, which may in turn empty a neighbour's adjacency
// list and remove that neighbour too. The active flag guards against
// re-entry.
func (m *Mdd) RemoveNode(node NodeIndex) {
	n := m.nodes[node]
	if !n.active {
		return
	}
	n.active = false

	for len(n.children) > 0 {
		edge := n.children[len(n.children)-1]
		to := m.edges[edge].to
		m.DeactivateEdge(edge)
		if m.nodes[to].NumberParents() == 0 {
			m.RemoveNode(to)
		}
	}
	for len(n.parents) > 0 {
		edge := n.parents[len(n.parents)-1]
		from := m.edges[edge].from
		m.DeactivateEdge(edge)
		if m.nodes[from].NumberChildren() == 0 {
			m.RemoveNode(from)
		}
	}
}

// SplitNode creates a sibling node' in node's layer, notifying every
// constraint so it can grow matching per-node state. The lower half of
// node's parent edges (by position, taken from the tail) are moved to
// node', and node' receives a fresh child edge — carrying the same
// assignment — to each of node's current children. node and node' thus
// end up sharing children while partitioning parents.
func (m *Mdd) SplitNode(problem *Problem, node NodeIndex) NodeIndex {
	layer := m.nodes[node].layer
	sibling := m.addNode(problem, layer)

	n := m.nodes[node]
	half := n.NumberParents() / 2
	for i := half - 1; i >= 0; i-- {
		edge := n.ParentEdgeAt(i)
		n.swapRemoveParentAt(i)
		m.edges[edge].to = sibling
		m.nodes[sibling].addParentEdge(edge)
	}

	for i := 0; i < n.NumberChildren(); i++ {
		edge := n.ChildEdgeAt(i)
		to := m.edges[edge].to
		value := m.edges[edge].assignment
		m.AddEdge(sibling, to, value)
	}

	return sibling
}

// MergeNode rewires every active parent edge of node to point at into,
// then cascade-deletes node's child edges and deactivates node. It does
// not re-add node's children under into: the caller (refinement) only
// merges a freshly split node into a node already carrying equivalent
// children, a precondition refinement establishes by hashing (see
// refine.go).
func (m *Mdd) MergeNode(node, into NodeIndex) {
	n := m.nodes[node]
	n.active = false

	for len(n.parents) > 0 {
		i := len(n.parents) - 1
		edge := n.parents[i]
		n.swapRemoveParentAt(i)
		m.edges[edge].to = into
		m.nodes[into].addParentEdge(edge)
	}

	for len(n.children) > 0 {
		i := len(n.children) - 1
		edge := n.children[i]
		to := m.edges[edge].to
		m.DeactivateEdge(edge)
		if m.nodes[to].NumberParents() == 0 {
			m.RemoveNode(to)
		}
	}
}

// NumberNodes returns the size of the node arena (including inactive
// nodes).
func (m *Mdd) NumberNodes() int {
	return len(m.nodes)
}

// NumberEdges returns the size of the edge arena (including inactive
// edges).
func (m *Mdd) NumberEdges() int {
	return len(m.edges)
}

// NumberLayers returns n+1, the number of layers including the
// terminal.
func (m *Mdd) NumberLayers() int {
	return len(m.layers)
}

// Layer returns the layer at index.
func (m *Mdd) Layer(index LayerIndex) *Layer {
	return m.layers[index]
}

// Node returns the node at index.
func (m *Mdd) Node(index NodeIndex) *Node {
	return m.nodes[index]
}

// Edge returns the edge at index.
func (m *Mdd) Edge(index EdgeIndex) *Edge {
	return m.edges[index]
}

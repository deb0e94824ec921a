package mdd

import "sort"

// CountSolutions returns the number of distinct root-to-sink paths in
// the (possibly relaxed) diagram — i.e. the number of assignments the
// current diagram still admits. It is the standard way callers detect
// unsatisfiability: a propagated diagram with CountSolutions() == 0 has
// no satisfying assignment.
func (m *Mdd) CountSolutions() int {
	if len(m.layers) == 0 {
		return 0
	}

	pathsTo := make(map[NodeIndex]int)
	pathsTo[m.layers[0].NodeAt(0)] = 1

	for layer := 1; layer < len(m.layers); layer++ {
		prevWidth := m.layers[layer-1].NumberNodes()
		for i := 0; i < m.layers[layer].NumberNodes(); i++ {
			node := m.layers[layer].NodeAt(i)
			n := m.nodes[node]
			if !n.IsActive() {
				continue
			}

			fromCount := make([]int, prevWidth)
			for p := 0; p < n.NumberParents(); p++ {
				edge := m.edges[n.ParentEdgeAt(p)]
				from := m.nodes[edge.from]
				fromCount[from.IndexInLayer()]++
			}

			total := 0
			for j := 0; j < prevWidth; j++ {
				prevNode := m.layers[layer-1].NodeAt(j)
				total += fromCount[j] * pathsTo[prevNode]
			}
			pathsTo[node] = total
		}
	}

	return pathsTo[m.layers[len(m.layers)-1].NodeAt(0)]
}

// NodeChildValues returns the sorted, deduplicated set of values
// assigned by node's active outgoing edges — the values still reachable
// for this layer's decision variable from node.
func (m *Mdd) NodeChildValues(node NodeIndex) []int {
	n := m.nodes[node]
	seen := make(map[int]bool)
	values := make([]int, 0, n.NumberChildren())
	for i := 0; i < n.NumberChildren(); i++ {
		v := m.edges[n.ChildEdgeAt(i)].assignment
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Ints(values)

	return values
}

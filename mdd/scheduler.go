package mdd

import "context"

// PropagateConstraints drives every constraint in problem to a fixpoint:
// repeatedly recompute a pending constraint's top-down and bottom-up
// properties, test every edge in its scope for validity, and deactivate
// invalid edges. Removing an edge from a layer re-schedules every
// constraint sharing that layer's decision variable. The loop terminates
// once the queue empties, which it always does since edges only ever
// transition active -> inactive.
//
// ctx is checked between constraint dispatches; a cancelled context
// stops the loop early and returns ctx.Err(), leaving the Mdd in
// whatever partially-propagated state it reached (callers that cannot
// tolerate a partial fixpoint should not cancel, or should discard the
// Mdd on cancellation).
func (m *Mdd) PropagateConstraints(ctx context.Context, problem *Problem) error {
	for _, c := range problem.IterConstraints() {
		m.scheduleConstraint(c)
	}

	for len(m.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		c := m.queue[len(m.queue)-1]
		m.queue = m.queue[:len(m.queue)-1]
		m.scheduled.Remove(int(c))

		constraint := problem.Constraint(c)
		constraint.UpdatePropertyTopDown(m)
		constraint.UpdatePropertyBottomUp(m)

		for layer := LayerIndex(0); int(layer) < len(m.layers)-1; layer++ {
			if !constraint.IsLayerInScope(layer) {
				continue
			}

			changed := false
			for ni := 0; ni < m.layers[layer].NumberNodes(); ni++ {
				node := m.layers[layer].NodeAt(ni)
				n := m.nodes[node]
				for i := n.NumberChildren() - 1; i >= 0; i-- {
					edge := n.ChildEdgeAt(i)
					if constraint.IsAssignmentInvalid(m, edge) {
						m.removeChildEdgeCascading(node, i)
						changed = true
					}
				}
			}

			if changed {
				decision := m.layers[layer].Decision()
				for _, other := range problem.Variable(decision).Constraints() {
					m.scheduleConstraint(other)
				}
			}
		}
	}

	return nil
}

func (m *Mdd) scheduleConstraint(c ConstraintIndex) {
	if m.scheduled.Contains(int(c)) {
		return
	}
	m.scheduled.Insert(int(c))
	m.queue = append(m.queue, c)
}

// removeChildEdgeCascading deactivates the i-th child edge of node and
// cascades node/target removal if either endpoint is left with no
// incident edges on the relevant side.
func (m *Mdd) removeChildEdgeCascading(node NodeIndex, i int) {
	n := m.nodes[node]
	edge := n.ChildEdgeAt(i)
	to := m.edges[edge].to
	m.DeactivateEdge(edge)

	if n.NumberChildren() == 0 {
		m.RemoveNode(node)
	}
	if m.nodes[to].NumberParents() == 0 {
		m.RemoveNode(to)
	}
}

package mdd

import "context"

// RefineOptions configures Refine.
type RefineOptions struct {
	// MaxWidth caps the number of nodes Refine will grow each interior
	// layer to. MaxWidth <= 1 performs no refinement.
	MaxWidth int

	// Trace, if non-nil, is called once per split with the layer and the
	// digest the new node hashed to — the Go analogue of the original
	// prototype's per-split stdout trace. Left nil, Refine is silent.
	Trace func(format string, args ...any)
}

// Refine tightens the diagram by splitting high-in-degree nodes against
// opts.MaxWidth, re-running PropagateConstraints to a fixpoint after
// every split, and deduplicating newly split nodes by a
// constraint-contributed hash: a split node whose hash collides with one
// already cached at that layer is merged into the cached node instead of
// kept. ctx is forwarded to each re-propagation pass and checked between
// splits.
func (m *Mdd) Refine(ctx context.Context, problem *Problem, opts RefineOptions) error {
	if opts.MaxWidth <= 1 {
		return nil
	}

	for layer := 1; layer < len(m.layers)-1; layer++ {
		for m.layers[layer].NumberNodes() < opts.MaxWidth {
			if err := ctx.Err(); err != nil {
				return err
			}

			node, ok := m.findSplittable(LayerIndex(layer))
			if !ok {
				break
			}

			sibling := m.SplitNode(problem, node)
			if err := m.PropagateConstraints(ctx, problem); err != nil {
				return err
			}

			digest := m.hashNode(problem, sibling)
			if opts.Trace != nil {
				opts.Trace("refine: layer %d split node %d -> %d, digest %x", layer, node, sibling, digest)
			}

			if cached, ok := m.cache[digest]; ok && m.nodes[cached].layer == LayerIndex(layer) {
				m.MergeNode(sibling, cached)
			} else {
				m.cache[digest] = sibling
			}
		}
	}

	return nil
}

func (m *Mdd) findSplittable(layer LayerIndex) (NodeIndex, bool) {
	for i := 0; i < m.layers[layer].NumberNodes(); i++ {
		node := m.layers[layer].NodeAt(i)
		if m.nodes[node].NumberParents() > 1 {
			return node, true
		}
	}

	return 0, false
}

func (m *Mdd) hashNode(problem *Problem, node NodeIndex) uint64 {
	var digest uint64
	for _, c := range problem.IterConstraints() {
		digest += problem.Constraint(c).HashNode(m, node)
	}

	return digest
}

package mdd

import (
	"fmt"
	"os"
	"strings"
)

// AsGraphviz renders the active subgraph of the MDD as a GraphViz dot
// document: one point-shaped node per active MDD node, ranked by layer,
// and one labelled arc per active edge. Output is deterministic for a
// given Mdd state (nodes and edges are walked in arena order).
func (m *Mdd) AsGraphviz() string {
	var labels, nodes, arcs strings.Builder

	labels.WriteString("subgraph labels {\n")
	for layer := LayerIndex(0); int(layer) < len(m.layers); layer++ {
		variable := m.layers[layer].Decision()
		fmt.Fprintf(&labels, "\tL%d [shape=plaintext, label=\"x%d\"];\n", layer, variable)
	}
	labels.WriteString("}\n")

	nodes.WriteString("subgraph mdd {\n")
	for layer := LayerIndex(0); int(layer) < len(m.layers); layer++ {
		for i := 0; i < m.layers[layer].NumberNodes(); i++ {
			idx := m.layers[layer].NodeAt(i)
			if !m.nodes[idx].IsActive() {
				continue
			}
			fmt.Fprintf(&nodes, "\t{rank=same; %d [shape=point,width=0.05] L%d};\n", idx, layer)
		}
	}
	for idx, e := range m.edges {
		if !e.IsActive() {
			continue
		}
		fmt.Fprintf(&arcs, "\t%d -> %d [penwidth=1, label=\"%d\"]; // edge %d\n", e.from, e.to, e.assignment, idx)
	}
	nodes.WriteString(arcs.String())
	nodes.WriteString("}\n")

	var out strings.Builder
	out.WriteString("digraph {\nrankdir=TD;\nranksep = 3;\n\n")
	out.WriteString(labels.String())
	out.WriteString(nodes.String())
	out.WriteString("}")

	return out.String()
}

// ToFile writes AsGraphviz's output to path.
func (m *Mdd) ToFile(path string) error {
	return os.WriteFile(path, []byte(m.AsGraphviz()), 0o644)
}

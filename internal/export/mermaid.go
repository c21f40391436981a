package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dusk-indust/dyadcensus/internal/graph"
)

// GenerateMermaid produces a Mermaid graph TD diagram of one layer.
// Nodes carry their 1-based global labels; mutual ties become a single
// double-headed arrow.
func GenerateMermaid(g *graph.Graph, layer int) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	dg, err := g.Layer(layer)
	if err != nil {
		return "", fmt.Errorf("layer %d: %w", layer, err)
	}
	start, _, _ := g.Partition().LayerRange(layer)

	type arc struct{ from, to int64 }
	var arcs []arc
	edges := dg.Edges()
	for edges.Next() {
		e := edges.Edge()
		arcs = append(arcs, arc{e.From().ID(), e.To().ID()})
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].from != arcs[j].from {
			return arcs[i].from < arcs[j].from
		}
		return arcs[i].to < arcs[j].to
	})

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("  %%%% layer %d\n", layer))

	for id := int64(0); id < int64(dg.Nodes().Len()); id++ {
		sb.WriteString(fmt.Sprintf("  N%d[\"%d\"]\n", id, start+int(id)+1))
	}

	for _, a := range arcs {
		if dg.HasEdgeFromTo(a.to, a.from) {
			if a.from < a.to {
				sb.WriteString(fmt.Sprintf("  N%d <--> N%d\n", a.from, a.to))
			}
			continue
		}
		sb.WriteString(fmt.Sprintf("  N%d --> N%d\n", a.from, a.to))
	}

	return sb.String(), nil
}

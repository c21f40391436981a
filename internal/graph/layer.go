package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Layer returns layer k as a gonum directed graph over local node IDs
// 0..netsize-1. Duplicate edges collapse, self loops and edges leaving the
// layer are dropped.
func (g *Graph) Layer(k int) (*simple.DirectedGraph, error) {
	start, end, err := g.partition.LayerRange(k)
	if err != nil {
		return nil, err
	}

	dg := simple.NewDirectedGraph()
	for i := 0; i < end-start; i++ {
		dg.AddNode(simple.Node(int64(i)))
	}

	for _, e := range g.edges {
		if e.Source < start || e.Source >= end || e.Target < start || e.Target >= end {
			continue
		}
		if e.Source == e.Target {
			continue
		}
		u, v := int64(e.Source-start), int64(e.Target-start)
		if dg.HasEdgeFromTo(u, v) {
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}
	return dg, nil
}

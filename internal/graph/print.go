package graph

import (
	"fmt"
	"io"
)

// PrintOptions bounds the diagnostic listing written by Fprint.
type PrintOptions struct {
	Verbose   bool
	MaxLayers int // layers listed in verbose mode (default 10)
	MaxEdges  int // edges listed per layer in verbose mode (default 10)
}

// Summary describes the layer count and per-layer size.
func (g *Graph) Summary() string {
	return fmt.Sprintf("A graph with %d networks of size %d.", g.partition.LayerCount(), g.partition.Netsize())
}

// Fprint writes the summary and, in verbose mode, up to MaxEdges edges for
// each of the first MaxLayers layers as 1-based node labels. Write errors
// are ignored.
func (g *Graph) Fprint(w io.Writer, opts PrintOptions) {
	if opts.MaxLayers <= 0 {
		opts.MaxLayers = 10
	}
	if opts.MaxEdges <= 0 {
		opts.MaxEdges = 10
	}

	fmt.Fprintln(w, g.Summary())
	if !opts.Verbose {
		return
	}

	layers := min(g.partition.LayerCount(), opts.MaxLayers)
	perLayer := make([][]Edge, layers)
	totals := make([]int, layers)
	var crossing int
	for _, e := range g.edges {
		k := g.partition.LayerOf(e.Source)
		if k < 0 || k != g.partition.LayerOf(e.Target) {
			crossing++
			continue
		}
		if k >= layers {
			continue
		}
		totals[k]++
		if len(perLayer[k]) < opts.MaxEdges {
			perLayer[k] = append(perLayer[k], e)
		}
	}

	for k := 0; k < layers; k++ {
		start, end, _ := g.partition.LayerRange(k)
		fmt.Fprintf(w, "Layer %d (nodes %d-%d): %d edges\n", k, start+1, end, totals[k])
		for _, e := range perLayer[k] {
			fmt.Fprintf(w, "  %d -> %d\n", e.Source+1, e.Target+1)
		}
		if totals[k] > len(perLayer[k]) {
			fmt.Fprintf(w, "  ... (%d more)\n", totals[k]-len(perLayer[k]))
		}
	}
	if rest := g.partition.LayerCount() - layers; rest > 0 {
		fmt.Fprintf(w, "... (%d more layers)\n", rest)
	}
	if crossing > 0 {
		fmt.Fprintf(w, "%d edges cross layer boundaries\n", crossing)
	}
}

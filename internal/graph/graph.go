package graph

import (
	"fmt"
	"slices"
)

// Edge is a directed tie between two 0-based node indices.
type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// Graph is a directed graph over a fixed node count whose index space is
// stacked into equally sized layers. It owns its edges and its Partition
// together and is read-only once New returns, so concurrent readers need no
// locking.
type Graph struct {
	nodeCount int
	edges     []Edge
	ties      tieIndex
	partition Partition
	tagged    bool
}

// Option configures New.
type Option func(*options)

type options struct {
	netsize      int
	endpoints    []int
	hasPartition bool
	index        IndexKind
}

// WithPartition stacks the graph into layers of netsize nodes starting at
// 0 and at each endpoint.
func WithPartition(netsize int, endpoints []int) Option {
	return func(o *options) {
		o.netsize = netsize
		o.endpoints = endpoints
		o.hasPartition = true
	}
}

// WithIndex forces the tie lookup structure. The default is IndexAuto.
func WithIndex(kind IndexKind) Option {
	return func(o *options) { o.index = kind }
}

// New builds a graph from parallel 0-based source and target arrays.
// Duplicate pairs are kept in the edge list; HasEdge only reports presence.
// Without WithPartition the whole graph is a single layer.
func New(nodeCount int, source, target []int, opts ...Option) (*Graph, error) {
	o := options{index: IndexAuto}
	for _, opt := range opts {
		opt(&o)
	}

	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: node count %d is negative", ErrInvalidIndex, nodeCount)
	}
	if len(source) != len(target) {
		return nil, fmt.Errorf("%w: %d sources but %d targets", ErrInvalidIndex, len(source), len(target))
	}

	edges := make([]Edge, len(source))
	for i := range source {
		s, t := source[i], target[i]
		if s < 0 || s >= nodeCount {
			return nil, fmt.Errorf("%w: edge %d source %d outside [0, %d)", ErrInvalidIndex, i, s, nodeCount)
		}
		if t < 0 || t >= nodeCount {
			return nil, fmt.Errorf("%w: edge %d target %d outside [0, %d)", ErrInvalidIndex, i, t, nodeCount)
		}
		edges[i] = Edge{Source: s, Target: t}
	}

	netsize, endpoints := nodeCount, []int(nil)
	if o.hasPartition {
		netsize, endpoints = o.netsize, o.endpoints
	}
	p, err := NewPartition(nodeCount, netsize, endpoints)
	if err != nil {
		return nil, err
	}

	switch o.index {
	case IndexAuto, IndexSparse, IndexDense:
	default:
		return nil, fmt.Errorf("graph: unknown index kind %q", o.index)
	}

	return &Graph{
		nodeCount: nodeCount,
		edges:     edges,
		ties:      newTieIndex(o.index, nodeCount, edges),
		partition: p,
		tagged:    true,
	}, nil
}

// Validate reports ErrTypeMismatch for a nil graph or one that was not built
// by New.
func (g *Graph) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrTypeMismatch)
	}
	if !g.tagged {
		return fmt.Errorf("%w: graph was not constructed with graph.New", ErrTypeMismatch)
	}
	return nil
}

// NodeCount returns the total number of nodes across all layers.
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of stored edges, duplicates included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Partition returns the layer partition.
func (g *Graph) Partition() Partition { return g.partition }

// IndexKind reports which lookup structure backs HasEdge.
func (g *Graph) IndexKind() IndexKind { return g.ties.kind() }

// HasEdge reports whether at least one u→v edge exists.
func (g *Graph) HasEdge(u, v int) bool { return g.ties.has(u, v) }

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

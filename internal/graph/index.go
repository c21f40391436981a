package graph

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// IndexKind selects the tie lookup structure built by New.
type IndexKind string

const (
	// IndexAuto picks dense for small, dense graphs and sparse otherwise.
	IndexAuto IndexKind = "auto"
	// IndexSparse answers HasEdge in O(log degree) from a CSR adjacency.
	IndexSparse IndexKind = "sparse"
	// IndexDense answers HasEdge in O(1) from an n×n adjacency matrix.
	IndexDense IndexKind = "dense"
)

// The dense index keeps one float64 per ordered pair: 8 MiB at the node
// ceiling, held for as long as the graph lives in a store.
const (
	denseMaxNodes   = 1024
	denseMinDensity = 0.05
)

// tieIndex answers presence queries; multiplicity is not tracked.
type tieIndex interface {
	has(u, v int) bool
	kind() IndexKind
}

func newTieIndex(kind IndexKind, n int, edges []Edge) tieIndex {
	if n == 0 {
		return newCSRIndex(n, edges)
	}
	switch kind {
	case IndexDense:
		return newDenseIndex(n, edges)
	case IndexSparse:
		return newCSRIndex(n, edges)
	}
	if n <= denseMaxNodes && float64(len(edges)) >= denseMinDensity*float64(n)*float64(n) {
		return newDenseIndex(n, edges)
	}
	return newCSRIndex(n, edges)
}

// csrIndex stores the distinct targets of node u, sorted, in
// head[firstOut[u]:firstOut[u+1]].
type csrIndex struct {
	firstOut []int
	head     []int
}

func newCSRIndex(n int, edges []Edge) *csrIndex {
	rows := make([][]int, n)
	for _, e := range edges {
		rows[e.Source] = append(rows[e.Source], e.Target)
	}

	idx := &csrIndex{firstOut: make([]int, n+1)}
	for u, row := range rows {
		sort.Ints(row)
		row = slices.Compact(row)
		idx.head = append(idx.head, row...)
		idx.firstOut[u+1] = len(idx.head)
	}
	return idx
}

func (c *csrIndex) has(u, v int) bool {
	if u < 0 || u+1 >= len(c.firstOut) {
		return false
	}
	row := c.head[c.firstOut[u]:c.firstOut[u+1]]
	i := sort.SearchInts(row, v)
	return i < len(row) && row[i] == v
}

func (c *csrIndex) kind() IndexKind { return IndexSparse }

// denseIndex is only built for n > 0; mat.NewDense rejects empty shapes.
type denseIndex struct {
	n   int
	adj *mat.Dense
}

func newDenseIndex(n int, edges []Edge) *denseIndex {
	adj := mat.NewDense(n, n, nil)
	for _, e := range edges {
		adj.Set(e.Source, e.Target, 1)
	}
	return &denseIndex{n: n, adj: adj}
}

func (d *denseIndex) has(u, v int) bool {
	if u < 0 || v < 0 || u >= d.n || v >= d.n {
		return false
	}
	return d.adj.At(u, v) != 0
}

func (d *denseIndex) kind() IndexKind { return IndexDense }

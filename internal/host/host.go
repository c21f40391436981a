// Package host is the boundary used by embedding environments: node labels
// are 1-based on this side, graphs travel as untyped handles, and results come
// back as columnar frames.
package host

import (
	"context"
	"fmt"
	"io"

	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/graph"
)

// Frame is a column-oriented result table with one entry per projected row.
type Frame struct {
	ID    []int    `json:"id"`
	Name  []string `json:"name"`
	Label []string `json:"label"`
	Layer []int    `json:"layer"`
	Value []int64  `json:"value"`
}

// Len returns the number of rows.
func (f Frame) Len() int { return len(f.ID) }

// Rows turns the columns back into projected rows.
func (f Frame) Rows() []census.Row {
	rows := make([]census.Row, f.Len())
	for i := range rows {
		rows[i] = census.Row{ID: f.ID[i], Name: f.Name[i], Label: f.Label[i], Layer: f.Layer[i], Value: f.Value[i]}
	}
	return rows
}

// Matrix is a two-column integer matrix with named columns.
type Matrix struct {
	ColNames [2]string `json:"colNames"`
	Data     [][2]int  `json:"data"`
}

// NewGraph builds a graph from 1-based source and target labels. A nil
// netsize means the graph is a single layer; endpoints are 0-based layer
// start offsets.
func NewGraph(nodeCount int, source, target []int, netsize *int, endpoints []int, opts ...graph.Option) (*graph.Graph, error) {
	if len(source) != len(target) {
		return nil, fmt.Errorf("%w: %d sources but %d targets", graph.ErrInvalidIndex, len(source), len(target))
	}
	src := make([]int, len(source))
	tgt := make([]int, len(target))
	for i := range source {
		if source[i] < 1 || source[i] > nodeCount {
			return nil, fmt.Errorf("%w: edge %d source label %d outside [1, %d]", graph.ErrInvalidIndex, i, source[i], nodeCount)
		}
		if target[i] < 1 || target[i] > nodeCount {
			return nil, fmt.Errorf("%w: edge %d target label %d outside [1, %d]", graph.ErrInvalidIndex, i, target[i], nodeCount)
		}
		src[i], tgt[i] = source[i]-1, target[i]-1
	}
	if netsize != nil {
		opts = append(opts, graph.WithPartition(*netsize, endpoints))
	} else if len(endpoints) > 0 {
		return nil, fmt.Errorf("%w: endpoints given without netsize", graph.ErrInvalidPartition)
	}
	return graph.New(nodeCount, src, tgt, opts...)
}

// FromDocument builds a graph from a loaded graph document.
func FromDocument(doc *graph.Document, opts ...graph.Option) (*graph.Graph, error) {
	source, target := doc.Columns()
	return NewGraph(doc.NodeCount, source, target, doc.Netsize, doc.Endpoints, opts...)
}

// AsGraph unwraps a handle, rejecting anything that is not a constructed
// graph.
func AsGraph(x any) (*graph.Graph, error) {
	g, ok := x.(*graph.Graph)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", graph.ErrTypeMismatch, x)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// PrintSummary writes the layer summary of x, and its first edges when
// verbose. It never fails: a bad handle is reported in the output itself.
func PrintSummary(w io.Writer, x any, verbose bool) {
	g, err := AsGraph(x)
	if err != nil {
		fmt.Fprintf(w, "<%v>\n", err)
		return
	}
	g.Fprint(w, graph.PrintOptions{Verbose: verbose})
}

// CountCensus runs the ten census classifiers.
func CountCensus(ctx context.Context, x any, opts ...census.Option) (Frame, error) {
	return count(ctx, x, census.CensusClassifiers(), opts)
}

// CountRecipErrors runs the five reciprocity-error classifiers.
func CountRecipErrors(ctx context.Context, x any, opts ...census.Option) (Frame, error) {
	return count(ctx, x, census.RecipClassifiers(), opts)
}

// CountAll runs both families in one pass, reciprocity errors first.
func CountAll(ctx context.Context, x any, opts ...census.Option) (Frame, error) {
	return count(ctx, x, census.AllClassifiers(), opts)
}

// CountClassifiers runs the named classifiers, in the order given.
func CountClassifiers(ctx context.Context, x any, names []string, opts ...census.Option) (Frame, error) {
	classifiers, err := census.Lookup(names...)
	if err != nil {
		return Frame{}, err
	}
	return count(ctx, x, classifiers, opts)
}

func count(ctx context.Context, x any, classifiers []census.Classifier, opts []census.Option) (Frame, error) {
	g, err := AsGraph(x)
	if err != nil {
		return Frame{}, err
	}
	table, err := census.Count(ctx, g, classifiers, opts...)
	if err != nil {
		return Frame{}, err
	}
	return FrameOf(table.Rows()), nil
}

// FrameOf turns projected rows into columns.
func FrameOf(rows []census.Row) Frame {
	f := Frame{
		ID:    make([]int, len(rows)),
		Name:  make([]string, len(rows)),
		Label: make([]string, len(rows)),
		Layer: make([]int, len(rows)),
		Value: make([]int64, len(rows)),
	}
	for i, r := range rows {
		f.ID[i] = r.ID
		f.Name[i] = r.Name
		f.Label[i] = r.Label
		f.Layer[i] = r.Layer
		f.Value[i] = r.Value
	}
	return f
}

// ToEdgelist returns the edges of x as 1-based (source, target) rows in
// insertion order.
func ToEdgelist(x any) (Matrix, error) {
	g, err := AsGraph(x)
	if err != nil {
		return Matrix{}, err
	}
	edges := g.Edges()
	m := Matrix{
		ColNames: [2]string{"source", "target"},
		Data:     make([][2]int, len(edges)),
	}
	for i, e := range edges {
		m.Data[i] = [2]int{e.Source + 1, e.Target + 1}
	}
	return m, nil
}

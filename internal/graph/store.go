package graph

import (
	"context"
	"io"
)

// Store persists named stacked graphs.
// Implementations: KuzuStore (persistent, cgo), MemStore (in-process).
type Store interface {
	io.Closer

	// Schema setup, called once before any graph is saved.
	InitSchema(ctx context.Context) error

	// SaveGraph stores g under name, replacing any previous graph.
	SaveGraph(ctx context.Context, name string, g *Graph) error

	// LoadGraph returns the graph saved under name. opts apply when the graph
	// is rebuilt from persistent storage. Returns ErrGraphNotFound if no such
	// graph exists.
	LoadGraph(ctx context.Context, name string, opts ...Option) (*Graph, error)

	// ListGraphs describes every stored graph, sorted by name.
	ListGraphs(ctx context.Context) ([]GraphInfo, error)

	// DeleteGraph removes a graph. Deleting an unknown name is not an error.
	DeleteGraph(ctx context.Context, name string) error
}

// GraphInfo summarizes a stored graph.
type GraphInfo struct {
	Name      string `json:"name"`
	NodeCount int    `json:"nodeCount"`
	EdgeCount int    `json:"edgeCount"`
	Netsize   int    `json:"netsize"`
	Layers    int    `json:"layers"`
}

// Info summarizes g under the given name.
func Info(name string, g *Graph) GraphInfo {
	return GraphInfo{
		Name:      name,
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Netsize:   g.Partition().Netsize(),
		Layers:    g.Partition().LayerCount(),
	}
}

package mcptools

import (
	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/graph"
)

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.

// CreateGraphInput is the input for the create_graph MCP tool.
type CreateGraphInput struct {
	Name      string `json:"name" jsonschema:"name under which the graph is stored"`
	NodeCount int    `json:"nodeCount" jsonschema:"total number of nodes across all layers"`
	Source    []int  `json:"source" jsonschema:"1-based source node of each edge"`
	Target    []int  `json:"target" jsonschema:"1-based target node of each edge"`
	Netsize   *int   `json:"netsize,omitempty" jsonschema:"nodes per layer; omit for a single-layer graph"`
	Endpoints []int  `json:"endpoints,omitempty" jsonschema:"0-based first node index of each layer after the first"`
}

// CreateGraphOutput is the result of the create_graph MCP tool.
type CreateGraphOutput struct {
	Graph graph.GraphInfo `json:"graph"`
}

// GraphRefInput names a stored graph.
type GraphRefInput struct {
	Name string `json:"name" jsonschema:"name of a graph created with create_graph"`
}

// PrintGraphInput is the input for the print_graph MCP tool.
type PrintGraphInput struct {
	Name    string `json:"name" jsonschema:"name of a graph created with create_graph"`
	Verbose bool   `json:"verbose,omitempty" jsonschema:"also list the first edges of each layer"`
}

// PrintGraphOutput is the result of the print_graph MCP tool.
type PrintGraphOutput struct {
	Text string `json:"text"`
}

// CountOutput is the result of the count_* MCP tools.
type CountOutput struct {
	Graph graph.GraphInfo `json:"graph"`
	Rows  []census.Row    `json:"rows"`
}

// DeleteGraphOutput is the result of the delete_graph MCP tool.
type DeleteGraphOutput struct {
	Name string `json:"name"`
}

// EdgeRow is one 1-based edge of an edge list.
type EdgeRow struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// ToEdgelistOutput is the result of the to_edgelist MCP tool.
type ToEdgelistOutput struct {
	ColNames []string  `json:"colNames"`
	Edges    []EdgeRow `json:"edges"`
}

// ListGraphsInput is the input for the list_graphs MCP tool.
type ListGraphsInput struct{}

// ListGraphsOutput is the result of the list_graphs MCP tool.
type ListGraphsOutput struct {
	Graphs []graph.GraphInfo `json:"graphs"`
}

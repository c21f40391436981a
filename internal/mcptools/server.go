package mcptools

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewCensusMCPServer creates an MCP server with all 8 census tools registered.
func NewCensusMCPServer(svc *CensusService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dyadcensus",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_graph",
		Description: "Create a stacked directed graph from 1-based source/target arrays. netsize and endpoints split the node range into equally sized layers: layer 0 is the reference network, the others are compared against it.",
	}, svc.CreateGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_graphs",
		Description: "List every stored graph with its node count, edge count, netsize and number of layers.",
	}, svc.ListGraphs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "print_graph",
		Description: "Describe a stored graph: number of layers and layer size, optionally with the first edges of each layer.",
	}, svc.PrintGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_graph",
		Description: "Remove a stored graph and drop its cached counts.",
	}, svc.DeleteGraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_census",
		Description: "Count the ten-category dyad census (accurate null through accurate full) of every layer against layer 0.",
	}, svc.CountCensus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_recip_errors",
		Description: "Count the five reciprocity errors (partial/complete omission and commission, mixed) of every layer against layer 0.",
	}, svc.CountRecipErrors)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_all",
		Description: "Count reciprocity errors and the dyad census in a single pass.",
	}, svc.CountAll)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "to_edgelist",
		Description: "Return the edge list of a stored graph as 1-based source/target rows in insertion order.",
	}, svc.ToEdgelist)

	return server
}

// RunMCPServer starts an HTTP server exposing the census MCP tools.
func RunMCPServer(ctx context.Context, svc *CensusService, addr string) error {
	server := NewCensusMCPServer(svc)

	handler := mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Shutdown gracefully when context is cancelled.
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background())
	}()

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// RunMCPServerStdio runs the MCP server on stdio transport, blocking until
// stdin is closed or the context is cancelled.
func RunMCPServerStdio(ctx context.Context, svc *CensusService) error {
	return NewCensusMCPServer(svc).Run(ctx, &mcp.StdioTransport{})
}

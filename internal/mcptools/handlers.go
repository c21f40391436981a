package mcptools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/graph"
	"github.com/dusk-indust/dyadcensus/internal/host"
)

// CensusService holds the graph store and result cache used by MCP tool
// handlers.
type CensusService struct {
	store     graph.Store
	cache     *lru.Cache[string, []census.Row]
	logger    zerolog.Logger
	graphOpts []graph.Option
	countOpts []census.Option

	mu       sync.Mutex
	versions map[string]uint64 // bumped on every create_graph
}

// ServiceOption configures a CensusService.
type ServiceOption func(*CensusService)

// WithLogger sets the service logger. The default discards everything.
func WithLogger(l zerolog.Logger) ServiceOption {
	return func(s *CensusService) { s.logger = l }
}

// WithGraphOptions applies opts to every graph built by create_graph.
func WithGraphOptions(opts ...graph.Option) ServiceOption {
	return func(s *CensusService) { s.graphOpts = append(s.graphOpts, opts...) }
}

// WithCountOptions applies opts to every census pass.
func WithCountOptions(opts ...census.Option) ServiceOption {
	return func(s *CensusService) { s.countOpts = append(s.countOpts, opts...) }
}

// NewCensusService creates a CensusService over store with an LRU cache of
// cacheSize count results.
func NewCensusService(store graph.Store, cacheSize int, opts ...ServiceOption) (*CensusService, error) {
	cache, err := lru.New[string, []census.Row](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("result cache: %w", err)
	}
	s := &CensusService{
		store:    store,
		cache:    cache,
		logger:   zerolog.Nop(),
		versions: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateGraph builds a graph from 1-based edge arrays and stores it under
// name, replacing any earlier graph and its cached counts.
func (s *CensusService) CreateGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateGraphInput,
) (*mcp.CallToolResult, CreateGraphOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, CreateGraphOutput{}, fmt.Errorf("name is required")
	}

	g, err := host.NewGraph(input.NodeCount, input.Source, input.Target, input.Netsize, input.Endpoints, s.graphOpts...)
	if err != nil {
		return nil, CreateGraphOutput{}, fmt.Errorf("create graph: %w", err)
	}
	if err := s.store.SaveGraph(ctx, name, g); err != nil {
		return nil, CreateGraphOutput{}, fmt.Errorf("save graph: %w", err)
	}

	s.mu.Lock()
	s.versions[name]++
	s.mu.Unlock()

	info := graph.Info(name, g)
	s.logger.Info().
		Str("graph", name).
		Int("nodes", info.NodeCount).
		Int("edges", info.EdgeCount).
		Int("layers", info.Layers).
		Msg("graph created")

	return nil, CreateGraphOutput{Graph: info}, nil
}

// ListGraphs describes every stored graph.
func (s *CensusService) ListGraphs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListGraphsInput,
) (*mcp.CallToolResult, ListGraphsOutput, error) {
	graphs, err := s.store.ListGraphs(ctx)
	if err != nil {
		return nil, ListGraphsOutput{}, fmt.Errorf("list graphs: %w", err)
	}
	if graphs == nil {
		graphs = []graph.GraphInfo{}
	}
	return nil, ListGraphsOutput{Graphs: graphs}, nil
}

// PrintGraph renders the layer summary of a stored graph.
func (s *CensusService) PrintGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PrintGraphInput,
) (*mcp.CallToolResult, PrintGraphOutput, error) {
	g, err := s.load(ctx, input.Name)
	if err != nil {
		return nil, PrintGraphOutput{}, err
	}
	var sb strings.Builder
	host.PrintSummary(&sb, g, input.Verbose)
	return nil, PrintGraphOutput{Text: sb.String()}, nil
}

// CountCensus runs the ten census classifiers on a stored graph.
func (s *CensusService) CountCensus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraphRefInput,
) (*mcp.CallToolResult, CountOutput, error) {
	return s.count(ctx, input.Name, census.FamilyCensus)
}

// CountRecipErrors runs the five reciprocity-error classifiers.
func (s *CensusService) CountRecipErrors(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraphRefInput,
) (*mcp.CallToolResult, CountOutput, error) {
	return s.count(ctx, input.Name, census.FamilyRecip)
}

// CountAll runs both families in a single pass.
func (s *CensusService) CountAll(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraphRefInput,
) (*mcp.CallToolResult, CountOutput, error) {
	return s.count(ctx, input.Name, "")
}

// DeleteGraph removes a stored graph. Its cached counts become unreachable.
func (s *CensusService) DeleteGraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraphRefInput,
) (*mcp.CallToolResult, DeleteGraphOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, DeleteGraphOutput{}, fmt.Errorf("name is required")
	}
	if err := s.store.DeleteGraph(ctx, name); err != nil {
		return nil, DeleteGraphOutput{}, fmt.Errorf("delete graph: %w", err)
	}

	s.mu.Lock()
	s.versions[name]++
	s.mu.Unlock()

	s.logger.Info().Str("graph", name).Msg("graph deleted")
	return nil, DeleteGraphOutput{Name: name}, nil
}

// ToEdgelist returns the 1-based edge list of a stored graph.
func (s *CensusService) ToEdgelist(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GraphRefInput,
) (*mcp.CallToolResult, ToEdgelistOutput, error) {
	g, err := s.load(ctx, input.Name)
	if err != nil {
		return nil, ToEdgelistOutput{}, err
	}
	m, err := host.ToEdgelist(g)
	if err != nil {
		return nil, ToEdgelistOutput{}, err
	}
	out := ToEdgelistOutput{
		ColNames: m.ColNames[:],
		Edges:    make([]EdgeRow, len(m.Data)),
	}
	for i, row := range m.Data {
		out.Edges[i] = EdgeRow{Source: row[0], Target: row[1]}
	}
	return nil, out, nil
}

var countFuncs = map[census.Family]func(context.Context, any, ...census.Option) (host.Frame, error){
	census.FamilyCensus: host.CountCensus,
	census.FamilyRecip:  host.CountRecipErrors,
	"":                  host.CountAll,
}

func (s *CensusService) count(ctx context.Context, name string, family census.Family) (*mcp.CallToolResult, CountOutput, error) {
	// Snapshot the version before loading: a concurrent create_graph can then
	// only leave newer rows under an older key.
	key := s.cacheKey(name, family)
	g, err := s.load(ctx, name)
	if err != nil {
		return nil, CountOutput{}, err
	}
	info := graph.Info(name, g)

	if rows, ok := s.cache.Get(key); ok {
		return nil, CountOutput{Graph: info, Rows: rows}, nil
	}

	countFn, ok := countFuncs[family]
	if !ok {
		return nil, CountOutput{}, fmt.Errorf("%w: family %q", census.ErrUnknownClassifier, family)
	}
	opts := append([]census.Option{census.WithLogger(s.logger)}, s.countOpts...)
	frame, err := countFn(ctx, g, opts...)
	if err != nil {
		return nil, CountOutput{}, fmt.Errorf("count %s: %w", name, err)
	}

	rows := frame.Rows()
	s.cache.Add(key, rows)
	return nil, CountOutput{Graph: info, Rows: rows}, nil
}

func (s *CensusService) load(ctx context.Context, name string) (*graph.Graph, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	g, err := s.store.LoadGraph(ctx, name, s.graphOpts...)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	return g, nil
}

// cacheKey ties cached rows to the graph version they were computed from.
func (s *CensusService) cacheKey(name string, family census.Family) string {
	s.mu.Lock()
	v := s.versions[name]
	s.mu.Unlock()
	return fmt.Sprintf("%s|%s|%d", name, family, v)
}

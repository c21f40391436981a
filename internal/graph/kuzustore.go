//go:build cgo

package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph backend.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
//
// Each graph is a Network node plus one Vertex per node index that carries
// at least one tie. Ties are TIE relationships numbered by seq so the edge
// list comes back in insertion order, duplicates included.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(":memory:", cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at the
// given directory path. KuzuDB creates the directory itself for new databases.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open file database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Network(
		name STRING,
		node_count INT64,
		netsize INT64,
		endpoints STRING,
		PRIMARY KEY(name)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Vertex(
		id STRING,
		network STRING,
		idx INT64,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS TIE(FROM Vertex TO Vertex, seq INT64)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// SaveGraph replaces any graph stored under name inside one transaction.
func (s *KuzuStore) SaveGraph(ctx context.Context, name string, g *Graph) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := s.run("BEGIN TRANSACTION"); err != nil {
		return err
	}
	if err := s.saveGraph(ctx, name, g); err != nil {
		_ = s.run("ROLLBACK")
		return err
	}
	return s.run("COMMIT")
}

func (s *KuzuStore) saveGraph(ctx context.Context, name string, g *Graph) error {
	if err := s.deleteGraph(name); err != nil {
		return err
	}

	p := g.Partition()
	err := s.exec(
		"CREATE (n:Network {name: $name, node_count: $nodes, netsize: $netsize, endpoints: $endpoints})",
		map[string]any{
			"name":      name,
			"nodes":     int64(g.NodeCount()),
			"netsize":   int64(p.Netsize()),
			"endpoints": joinInts(p.Endpoints()),
		},
	)
	if err != nil {
		return err
	}

	edges := g.edges
	var vertices []int
	for _, e := range edges {
		vertices = append(vertices, e.Source, e.Target)
	}
	slices.Sort(vertices)
	for _, v := range slices.Compact(vertices) {
		err := s.exec(
			"CREATE (v:Vertex {id: $id, network: $net, idx: $idx})",
			map[string]any{"id": vertexID(name, v), "net": name, "idx": int64(v)},
		)
		if err != nil {
			return err
		}
	}

	for i, e := range edges {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.exec(
			`MATCH (a:Vertex {id: $src}), (b:Vertex {id: $dst})
			 CREATE (a)-[:TIE {seq: $seq}]->(b)`,
			map[string]any{
				"src": vertexID(name, e.Source),
				"dst": vertexID(name, e.Target),
				"seq": int64(i),
			},
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteGraph removes the Network node and every Vertex (with its ties).
func (s *KuzuStore) DeleteGraph(_ context.Context, name string) error {
	return s.deleteGraph(name)
}

func (s *KuzuStore) deleteGraph(name string) error {
	if err := s.exec("MATCH (v:Vertex) WHERE v.network = $name DETACH DELETE v", map[string]any{"name": name}); err != nil {
		return err
	}
	return s.exec("MATCH (n:Network {name: $name}) DELETE n", map[string]any{"name": name})
}

// ---------- Read operations ----------

// LoadGraph rebuilds the named graph with its partition and edge order.
// opts (typically WithIndex) are applied on top of the stored partition.
func (s *KuzuStore) LoadGraph(_ context.Context, name string, opts ...Option) (*Graph, error) {
	rows, err := s.query(
		"MATCH (n:Network {name: $name}) RETURN n.node_count, n.netsize, n.endpoints",
		map[string]any{"name": name},
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrGraphNotFound, name)
	}
	nodeCount := toInt(rows[0][0])
	netsize := toInt(rows[0][1])
	endpoints, err := splitInts(toString(rows[0][2]))
	if err != nil {
		return nil, fmt.Errorf("kuzu: network %q endpoints: %w", name, err)
	}

	edgeRows, err := s.query(
		`MATCH (a:Vertex)-[t:TIE]->(b:Vertex)
		 WHERE a.network = $name
		 RETURN a.idx, b.idx
		 ORDER BY t.seq`,
		map[string]any{"name": name},
	)
	if err != nil {
		return nil, err
	}
	source := make([]int, len(edgeRows))
	target := make([]int, len(edgeRows))
	for i, r := range edgeRows {
		source[i] = toInt(r[0])
		target[i] = toInt(r[1])
	}
	opts = append([]Option{WithPartition(netsize, endpoints)}, opts...)
	return New(nodeCount, source, target, opts...)
}

// ListGraphs summarizes every stored network, sorted by name.
func (s *KuzuStore) ListGraphs(_ context.Context) ([]GraphInfo, error) {
	rows, err := s.query("MATCH (n:Network) RETURN n.name, n.node_count, n.netsize, n.endpoints ORDER BY n.name", nil)
	if err != nil {
		return nil, err
	}
	out := make([]GraphInfo, 0, len(rows))
	for _, r := range rows {
		name := toString(r[0])
		endpoints, err := splitInts(toString(r[3]))
		if err != nil {
			return nil, fmt.Errorf("kuzu: network %q endpoints: %w", name, err)
		}
		edges, err := s.countTies(name)
		if err != nil {
			return nil, err
		}
		out = append(out, GraphInfo{
			Name:      name,
			NodeCount: toInt(r[1]),
			EdgeCount: edges,
			Netsize:   toInt(r[2]),
			Layers:    len(endpoints) + 1,
		})
	}
	return out, nil
}

// ---------- Internal helpers ----------

func (s *KuzuStore) countTies(name string) (int, error) {
	rows, err := s.query(
		"MATCH (a:Vertex)-[t:TIE]->(:Vertex) WHERE a.network = $name RETURN count(t)",
		map[string]any{"name": name},
	)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// run executes an unparameterized statement and discards its result.
func (s *KuzuStore) run(cypher string) error {
	res, err := s.conn.Query(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: %s: %w", cypher, err)
	}
	res.Close()
	return nil
}

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// vertexID produces a deterministic identifier for a node: "network:index".
func vertexID(network string, idx int) string {
	return network + ":" + strconv.Itoa(idx)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string).

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

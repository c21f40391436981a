package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/config"
	"github.com/dusk-indust/dyadcensus/internal/export"
	"github.com/dusk-indust/dyadcensus/internal/graph"
	"github.com/dusk-indust/dyadcensus/internal/host"
)

// loadGraph reads the graph document named by args[0] and applies the
// -nodes, -netsize and -endpoints overrides.
func loadGraph(flags cliFlags, args []string) (*graph.Graph, string, error) {
	if len(args) != 1 {
		return nil, "", fmt.Errorf("expected exactly one graph file, got %d arguments", len(args))
	}
	path := args[0]

	doc, err := graph.LoadDocument(path)
	if err != nil {
		return nil, "", err
	}
	if flags.NodeCount > 0 {
		doc.NodeCount = flags.NodeCount
	}
	if flags.Netsize >= 0 {
		netsize := flags.Netsize
		doc.Netsize = &netsize
	}
	endpoints, err := parseEndpoints(flags.Endpoints)
	if err != nil {
		return nil, "", err
	}
	if endpoints != nil {
		doc.Endpoints = endpoints
	}

	kind, err := indexKind(flags.Index)
	if err != nil {
		return nil, "", err
	}
	g, err := host.FromDocument(doc, graph.WithIndex(kind))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return g, name, nil
}

func indexKind(s string) (graph.IndexKind, error) {
	switch kind := graph.IndexKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case "":
		return graph.IndexAuto, nil
	case graph.IndexAuto, graph.IndexSparse, graph.IndexDense:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown index %q (want auto, sparse or dense)", s)
	}
}

func runCount(ctx context.Context, cmd string, flags cliFlags, args []string, stdout io.Writer, logger zerolog.Logger) error {
	g, name, err := loadGraph(flags, args)
	if err != nil {
		return err
	}

	opts := []census.Option{
		census.WithWorkers(flags.Workers),
		census.WithLogger(logger),
	}
	family := cmd
	var frame host.Frame
	switch names := splitNames(flags.Classifiers); {
	case len(names) > 0:
		family = "custom"
		frame, err = host.CountClassifiers(ctx, g, names, opts...)
	case cmd == "census":
		frame, err = host.CountCensus(ctx, g, opts...)
	case cmd == "recip":
		frame, err = host.CountRecipErrors(ctx, g, opts...)
	default:
		frame, err = host.CountAll(ctx, g, opts...)
	}
	if err != nil {
		return err
	}
	rows := frame.Rows()

	switch flags.Format {
	case "json":
		return export.WriteJSON(stdout, export.NewResultExport(graph.Info(name, g), family, rows))
	case "csv":
		return export.WriteCSV(stdout, rows)
	case "table", "":
		return export.WriteTable(stdout, rows)
	default:
		return fmt.Errorf("unknown format %q (want table, json or csv)", flags.Format)
	}
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

func runEdgelist(flags cliFlags, args []string, stdout io.Writer) error {
	g, _, err := loadGraph(flags, args)
	if err != nil {
		return err
	}
	m, err := host.ToEdgelist(g)
	if err != nil {
		return err
	}
	return export.WriteEdgelist(stdout, m.ColNames, m.Data)
}

func runPrint(flags cliFlags, cfg *config.ProjectConfig, args []string, stdout io.Writer) error {
	g, _, err := loadGraph(flags, args)
	if err != nil {
		return err
	}
	g.Fprint(stdout, graph.PrintOptions{
		Verbose:   flags.Verbose,
		MaxLayers: cfg.PrintMaxLayers,
		MaxEdges:  cfg.PrintMaxEdges,
	})
	return nil
}

func runDiagram(flags cliFlags, args []string, stdout io.Writer) error {
	g, _, err := loadGraph(flags, args)
	if err != nil {
		return err
	}
	out, err := export.GenerateMermaid(g, flags.Layer)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}

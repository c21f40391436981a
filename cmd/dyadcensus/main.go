package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dusk-indust/dyadcensus/internal/config"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir   string
	NodeCount   int
	Netsize     int
	Endpoints   string
	Format      string
	Index       string
	Classifiers string
	Workers     int
	Layer       int
	Verbose     bool
	HTTPAddr    string
	StorePath   string
	Version     bool
}

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: dyadcensus [flags] <command> [args]

commands:
  census <file>     ten-category dyad census of every layer against layer 0
  recip <file>      five reciprocity-error counts
  all <file>        reciprocity errors and census in one pass
  edgelist <file>   1-based source,target edge list
  print <file>      layer summary (-verbose lists edges)
  diagram <file>    Mermaid diagram of one layer (-layer)
  serve-mcp         run the MCP tool server (stdio, or HTTP with -http)

<file> is a .yml/.yaml graph document or a .csv edge list.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("dyadcensus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fmt.Fprintln(stderr, "\nflags:")
		fs.PrintDefaults()
	}
	fs.StringVar(&flags.ConfigDir, "config", ".", "directory holding dyadcensus.yml and .env")
	fs.IntVar(&flags.NodeCount, "nodes", 0, "total node count (overrides the document)")
	fs.IntVar(&flags.Netsize, "netsize", -1, "nodes per layer (overrides the document)")
	fs.StringVar(&flags.Endpoints, "endpoints", "", "comma-separated 0-based layer start offsets")
	fs.StringVar(&flags.Format, "format", "", "output format: table, json or csv")
	fs.StringVar(&flags.Classifiers, "classifiers", "", "comma-separated classifier names counted instead of the command's family")
	fs.StringVar(&flags.Index, "index", "", "tie index: auto, sparse or dense")
	fs.IntVar(&flags.Workers, "workers", 0, "layer-pairs counted concurrently (0: config or GOMAXPROCS)")
	fs.IntVar(&flags.Layer, "layer", 0, "layer drawn by the diagram command")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.StringVar(&flags.HTTPAddr, "http", "", "serve MCP over streamable HTTP on this address instead of stdio")
	fs.StringVar(&flags.StorePath, "store", "", "KuzuDB directory for graphs created over MCP")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	flags.applyConfig(cfg)

	level := cfg.LogLevel
	if flags.Verbose {
		level = zerolog.LevelDebugValue
	}
	logger := config.NewLogger(level, stderr)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "census", "recip", "all":
		return runCount(ctx, cmd, flags, cmdArgs, stdout, logger)
	case "edgelist":
		return runEdgelist(flags, cmdArgs, stdout)
	case "print":
		return runPrint(flags, cfg, cmdArgs, stdout)
	case "diagram":
		return runDiagram(flags, cmdArgs, stdout)
	case "serve-mcp":
		return runServe(ctx, flags, cfg, logger)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// applyConfig fills flags left at their zero value from the project config.
func (f *cliFlags) applyConfig(cfg *config.ProjectConfig) {
	if f.Format == "" {
		f.Format = cfg.Format
	}
	if f.Index == "" {
		f.Index = cfg.Index
	}
	if f.Workers == 0 {
		f.Workers = cfg.Workers
	}
	if f.StorePath == "" {
		f.StorePath = cfg.StorePath
	}
}

func parseEndpoints(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", p, err)
		}
		out[i] = n
	}
	return out, nil
}

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dusk-indust/dyadcensus/internal/census"
	"github.com/dusk-indust/dyadcensus/internal/config"
	"github.com/dusk-indust/dyadcensus/internal/graph"
	"github.com/dusk-indust/dyadcensus/internal/mcptools"
)

func runServe(ctx context.Context, flags cliFlags, cfg *config.ProjectConfig, logger zerolog.Logger) error {
	kind, err := indexKind(flags.Index)
	if err != nil {
		return err
	}

	store, err := openStore(flags.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	svc, err := mcptools.NewCensusService(store, cfg.CacheSize,
		mcptools.WithLogger(logger),
		mcptools.WithGraphOptions(graph.WithIndex(kind)),
		mcptools.WithCountOptions(census.WithWorkers(flags.Workers)),
	)
	if err != nil {
		return err
	}

	if flags.HTTPAddr != "" {
		logger.Info().Str("addr", flags.HTTPAddr).Msg("serving MCP over HTTP")
		return mcptools.RunMCPServer(ctx, svc, flags.HTTPAddr)
	}
	logger.Debug().Msg("serving MCP over stdio")
	return mcptools.RunMCPServerStdio(ctx, svc)
}

package census

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/dusk-indust/dyadcensus/internal/graph"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Option configures Count.
type Option func(*counterOptions)

type counterOptions struct {
	workers int
	logger  zerolog.Logger
}

// WithWorkers bounds how many layer-pairs are counted at once. Values below
// one mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *counterOptions) { o.workers = n }
}

// WithLogger sets the logger used for pass-level debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(o *counterOptions) { o.logger = l }
}

// Count compares layer 0 of g against every other layer. For each dyad
// i < j of a layer-pair it derives both tie-states with HasEdge and runs
// every classifier, adding one to each classifier that matches.
//
// At most one census classifier may match a dyad, and exactly one when all
// ten are registered; anything else fails with ErrPreconditionViolation.
// The context is checked between dyad rows. On any error no table is
// returned.
//
// Work is O((K-1) · netsize² · len(classifiers)) HasEdge calls; see
// graph.IndexKind for the cost of one call.
func Count(ctx context.Context, g *graph.Graph, classifiers []Classifier, opts ...Option) (*Table, error) {
	o := counterOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	p := g.Partition()
	table := newTable(classifiers, p.LayerCount()-1)
	full := fullCensus(classifiers)

	started := time.Now()
	o.logger.Debug().
		Int("nodes", g.NodeCount()).
		Int("netsize", p.Netsize()).
		Int("layers", p.LayerCount()).
		Int("classifiers", len(classifiers)).
		Msg("census pass started")

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(o.workers)
	for k := 1; k < p.LayerCount(); k++ {
		grp.Go(func() error {
			return countLayer(gctx, g, k, classifiers, full, table.counts[k-1])
		})
	}
	if err := grp.Wait(); err != nil {
		o.logger.Debug().Err(err).Msg("census pass failed")
		return nil, err
	}

	o.logger.Debug().
		Dur("elapsed", time.Since(started)).
		Msg("census pass finished")
	return table, nil
}

// countLayer fills counts for the comparison of layer 0 with layer k.
// counts is owned by this call alone.
func countLayer(ctx context.Context, g *graph.Graph, k int, classifiers []Classifier, full bool, counts []int64) error {
	p := g.Partition()
	n := p.Netsize()
	ref, refEnd, err := p.LayerRange(0)
	if err != nil {
		return err
	}
	obs, obsEnd, err := p.LayerRange(k)
	if err != nil {
		return err
	}
	if refEnd-ref != n || obsEnd-obs != n {
		return fmt.Errorf("%w: layer 0 has %d nodes, layer %d has %d, netsize is %d",
			ErrPreconditionViolation, refEnd-ref, k, obsEnd-obs, n)
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("census: layer %d: %w", k, err)
		}
		for j := i + 1; j < n; j++ {
			d := Dyad{
				Layer: k,
				I:     i,
				J:     j,
				Ref:   StateOf(g.HasEdge(ref+i, ref+j), g.HasEdge(ref+j, ref+i)),
				Obs:   StateOf(g.HasEdge(obs+i, obs+j), g.HasEdge(obs+j, obs+i)),
			}

			matched := 0
			for c, cl := range classifiers {
				if !cl.Match(d) {
					continue
				}
				counts[c]++
				if cl.Family == FamilyCensus {
					matched++
				}
			}
			if matched > 1 || (full && matched == 0) {
				return fmt.Errorf("%w: dyad (%d, %d) of layer %d matched %d census outcomes (ref %s, observed %s)",
					ErrPreconditionViolation, i, j, k, matched, d.Ref, d.Obs)
			}
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package: netresil/tolerance
//
// structural.go - property-vs-removals sweep.

package tolerance

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netresil/core"
	"github.com/katalvlaran/netresil/property"
	"github.com/katalvlaran/netresil/removal"
	"github.com/katalvlaran/netresil/schedule"
)

// Simulation sweeps a graph property over the levels of a schedule.
type Simulation struct {
	g     *core.Graph
	sched schedule.Schedule
	cfg   config
}

// NewSimulation binds g to sched. sched must have been built for
// g.VertexCount() nodes.
func NewSimulation(g *core.Graph, sched schedule.Schedule, opts ...Option) (*Simulation, error) {
	if err := checkGraph("NewSimulation", g, sched); err != nil {
		return nil, err
	}

	return &Simulation{g: g, sched: sched, cfg: newConfig(opts...)}, nil
}

// Schedule returns the removal schedule.
func (s *Simulation) Schedule() schedule.Schedule { return s.sched }

// Graph returns the original, never mutated, graph.
func (s *Simulation) Graph() *core.Graph { return s.g }

// PropertyVsRemovals evaluates prop on strategy(g, count) for every level.
// The first failing level aborts the sweep.
func (s *Simulation) PropertyVsRemovals(ctx context.Context, prop property.Func, strategy removal.Strategy) (Series, error) {
	if prop == nil || strategy == nil {
		return Series{}, fmt.Errorf("PropertyVsRemovals: %w", ErrNilFunc)
	}
	started := time.Now()
	seed := s.cfg.sweepSeed()
	levels := s.sched.Levels()
	values := make([]float64, len(levels))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.workers)
	for i, lvl := range levels {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			h, err := strategy(s.g, lvl.Count, streamRand(seed, i, -1))
			if err != nil {
				return fmt.Errorf("PropertyVsRemovals: level %d (n=%d): %w", i, lvl.Count, err)
			}
			v, err := prop(ctx, h)
			if err != nil {
				return fmt.Errorf("PropertyVsRemovals: level %d (n=%d): %w", i, lvl.Count, err)
			}
			values[i] = v
			s.cfg.recorder.LevelEvaluated(KindStructural, time.Since(t0))
			s.cfg.logger.Debug("level evaluated",
				"kind", KindStructural, "level", i, "frequency", lvl.Frequency,
				"removed", lvl.Count, "value", v)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Series{}, err
	}

	s.cfg.recorder.SweepCompleted(KindStructural, len(levels))
	s.cfg.logger.Info("sweep finished",
		"kind", KindStructural, "levels", len(levels), "seed", seed,
		"elapsed", time.Since(started))

	return newSeries(s.sched, values), nil
}

func checkGraph(method string, g *core.Graph, sched schedule.Schedule) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if n := g.VertexCount(); n != sched.NumNodes() {
		return fmt.Errorf("%s: graph has %d nodes, schedule %d: %w", method, n, sched.NumNodes(), ErrScheduleMismatch)
	}

	return nil
}

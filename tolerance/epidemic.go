// SPDX-License-Identifier: MIT
// Package: netresil/tolerance
//
// epidemic.go - statistic-vs-removals sweep over SIR batches.
//
// Phases:
//   1. Per level: strategy(g, count) -> sir.Network (parallel over levels).
//   2. Per (level, run): one SIR run written into row `run` of the level's
//      batches (parallel over all runs of all levels).
//   3. Per level: reduce the batches with the statistic (sequential).

package tolerance

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/netresil/core"
	"github.com/katalvlaran/netresil/removal"
	"github.com/katalvlaran/netresil/schedule"
	"github.com/katalvlaran/netresil/sir"
	"github.com/katalvlaran/netresil/stats"
)

// EpidemicSimulation sweeps an epidemic statistic over the levels of a
// schedule.
type EpidemicSimulation struct {
	g     *core.Graph
	sched schedule.Schedule
	model *sir.Model
	cfg   config
}

// Batch holds every run of one removal level: row r of Infected and
// Recovered is run r, column t is step t+1.
type Batch struct {
	Level     schedule.Level
	Nodes     int // vertices left after removal
	Infected  *mat.Dense
	Recovered *mat.Dense
}

// NewEpidemicSimulation binds g to sched and validates params.
func NewEpidemicSimulation(g *core.Graph, sched schedule.Schedule, params sir.Params, opts ...Option) (*EpidemicSimulation, error) {
	if err := checkGraph("NewEpidemicSimulation", g, sched); err != nil {
		return nil, err
	}
	model, err := sir.NewModel(params)
	if err != nil {
		return nil, fmt.Errorf("NewEpidemicSimulation: %w", err)
	}

	return &EpidemicSimulation{g: g, sched: sched, model: model, cfg: newConfig(opts...)}, nil
}

// Schedule returns the removal schedule.
func (s *EpidemicSimulation) Schedule() schedule.Schedule { return s.sched }

// Params returns the SIR parameters.
func (s *EpidemicSimulation) Params() sir.Params { return s.model.Params() }

// StatisticVsRemovals runs numSimulations epidemics per level and reduces
// each level's batches with stat.
func (s *EpidemicSimulation) StatisticVsRemovals(ctx context.Context, stat stats.Statistic, strategy removal.Strategy, numSimulations int) (Series, error) {
	if stat == nil {
		return Series{}, fmt.Errorf("StatisticVsRemovals: %w", ErrNilFunc)
	}
	batches, err := s.Batches(ctx, strategy, numSimulations)
	if err != nil {
		return Series{}, fmt.Errorf("StatisticVsRemovals: %w", err)
	}

	values := make([]float64, len(batches))
	for i, b := range batches {
		v, err := stat.Evaluate(b.Infected, b.Recovered)
		if err != nil {
			return Series{}, fmt.Errorf("StatisticVsRemovals: level %d: %w", i, err)
		}
		values[i] = v
	}

	return newSeries(s.sched, values), nil
}

// Batches runs the sweep and returns the raw trajectories of every level,
// for callers that reduce one sweep with several statistics.
func (s *EpidemicSimulation) Batches(ctx context.Context, strategy removal.Strategy, numSimulations int) ([]Batch, error) {
	if strategy == nil {
		return nil, fmt.Errorf("Batches: %w", ErrNilFunc)
	}
	if numSimulations < 1 {
		return nil, fmt.Errorf("Batches: %d: %w", numSimulations, ErrInvalidSimulations)
	}
	started := time.Now()
	seed := s.cfg.sweepSeed()
	levels := s.sched.Levels()

	networks, err := s.prepare(ctx, seed, levels, strategy)
	if err != nil {
		return nil, err
	}

	steps := s.model.Params().Duration
	batches := make([]Batch, len(levels))
	for i, lvl := range levels {
		batches[i] = Batch{
			Level:     lvl,
			Nodes:     networks[i].Len(),
			Infected:  mat.NewDense(numSimulations, steps, nil),
			Recovered: mat.NewDense(numSimulations, steps, nil),
		}
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.cfg.workers)
	for i := range levels {
		for r := 0; r < numSimulations; r++ {
			eg.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				t0 := time.Now()
				tr, err := networks[i].Run(streamRand(seed, i, r))
				if err != nil {
					return fmt.Errorf("Batches: level %d run %d: %w", i, r, err)
				}
				// Rows are disjoint, so concurrent SetRow calls never overlap.
				batches[i].Infected.SetRow(r, tr.Infected)
				batches[i].Recovered.SetRow(r, tr.Recovered)
				s.cfg.recorder.RunCompleted(time.Since(t0))
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, lvl := range levels {
		s.cfg.logger.Debug("level evaluated",
			"kind", KindEpidemic, "level", i, "frequency", lvl.Frequency,
			"removed", lvl.Count, "nodes", batches[i].Nodes, "runs", numSimulations)
	}
	s.cfg.recorder.SweepCompleted(KindEpidemic, len(levels))
	s.cfg.logger.Info("sweep finished",
		"kind", KindEpidemic, "levels", len(levels), "runs", numSimulations,
		"seed", seed, "elapsed", time.Since(started))

	return batches, nil
}

// prepare removes vertices and relabels the survivors for every level.
func (s *EpidemicSimulation) prepare(ctx context.Context, seed uint64, levels []schedule.Level, strategy removal.Strategy) ([]*sir.Network, error) {
	networks := make([]*sir.Network, len(levels))

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
				return fmt.Errorf("Batches: level %d (n=%d): %w", i, lvl.Count, err)
			}
			nw, err := s.model.Prepare(h)
			if err != nil {
				return fmt.Errorf("Batches: level %d: %w", i, err)
			}
			if nw.Clamped() {
				s.cfg.logger.Debug("initial infection clamped",
					"level", i, "nodes", nw.Len(), "infected_t0", s.model.Params().InfectedT0)
			}
			networks[i] = nw
			s.cfg.recorder.LevelEvaluated(KindEpidemic, time.Since(t0))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return networks, nil
}

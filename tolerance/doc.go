// Package tolerance runs removal sweeps: it removes a growing fraction of a
// graph's vertices and records how a metric responds.
//
// Two orchestrators share one schedule.Schedule by composition:
//
//   - Simulation.PropertyVsRemovals applies a removal.Strategy at every level
//     of the schedule and evaluates a property.Func on the result.
//   - EpidemicSimulation.StatisticVsRemovals applies the strategy once per
//     level, runs NumSimulations independent SIR epidemics on the remaining
//     graph and reduces the stacked trajectories with a stats.Statistic.
//
// Both return a Series of parallel frequency, count and value slices.
//
// Randomness: every removal and every SIR run draws from its own PCG stream
// derived from (seed, level, run). With WithSeed the output is bit-identical
// across calls and independent of WithWorkers; without it a fresh seed is
// drawn for each sweep.
//
// Concurrency: levels (structural) and runs (epidemic) are evaluated on an
// errgroup bounded by WithWorkers. The caller's graph is only read; every
// level works on its own copy. Cancelling ctx aborts the sweep.
package tolerance

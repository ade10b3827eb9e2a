// Package netresil studies the error and attack tolerance of complex
// networks.
//
// A sweep removes a growing fraction of vertices, either uniformly at random
// ("error") or by descending degree ("attack"), and evaluates the damaged
// graph at every removal level. Two kinds of evaluation are provided:
//
//   - structural: diameter (average shortest-path length), relative size of
//     the largest component S, average size of the other components <s>;
//   - epidemic: an SIR process (transmission mu, recovery nu) run many
//     times per level and reduced to peak, time of peak, duration or the
//     total fraction ever infected.
//
// Layout:
//
//	core/       thread-safe Graph, copies without vertices, dense relabelling
//	builder/    ER, BA and fixture constructors
//	bfs/        breadth-first traversal and hop distances
//	graphio/    edge-list reader (whitespace, CSV, snappy framed)
//	network/    named networks: ER, SF, ER_SF, airports
//	removal/    error and attack strategies
//	schedule/   removal-frequency grid
//	property/   diameter and component measures
//	degree/     degree distribution and power-law fit
//	sir/        discrete-time SIR model
//	stats/      epidemic statistics over run batches
//	tolerance/  parallel, reproducible removal sweeps
//	analysis/   error-vs-attack comparisons
//	cmd/netresil  command-line front end
//
// Quick start:
//
//	g, _ := network.Generate(network.KindSF, 1000, 0.004, 102)
//	sched, _ := schedule.New(0.5, 15, g.VertexCount())
//	sim, _ := tolerance.NewSimulation(g, sched, tolerance.WithSeed(1))
//	res, _ := analysis.Connectivity(ctx, sim)
package netresil

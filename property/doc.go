// Package property provides the graph metrics tracked by structural
// tolerance sweeps.
//
// Every metric is a Func of a context and one graph snapshot:
//
//	Diameter                  average shortest-path length over reachable
//	                          ordered pairs at positive distance
//	LargestComponentFraction  S, size of the giant (weakly) connected
//	                          component divided by |V|
//	AverageSmallComponentSize ⟨s⟩, mean size of every component except the
//	                          largest one
//
// Sweeps drive graphs towards fragmentation and full depletion, so empty and
// edgeless graphs are ordinary inputs: they yield 0, never an error.
//
// Connectivity and component enumeration run on a gonum graph built from the
// dense relabelling of the core.Graph (see toGonum); hop distances come from
// package bfs (Hops.Sweep, which honours cancellation).
package property

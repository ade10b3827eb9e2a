// Package bfs computes unweighted hop distances over a core.Graph.
//
// A Hops value relabels the graph onto 0..n-1 (core.DenseEdges) and keeps a
// dense adjacency list, so the repeated single-source searches behind an
// average path length allocate two int slices per graph instead of a map
// per source.
//
//	h, err := bfs.NewHops(g)
//	err = h.Sweep(ctx, func(src int, dist []int) {
//		// dist[v] is the hop count src -> v, or Unreachable
//	})
//
// Directed graphs are followed along edge orientation; self-loops never
// shorten a path and are dropped. Sweep checks ctx before every source, so
// an all-pairs evaluation stops within one O(V+E) search of cancellation.
//
// Distances is the ID-keyed single-source form.
package bfs

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters and a summary snapshot.
// Policy:
//   - No algorithms here.
//   - Flags are immutable after NewGraph, so getters only need muVert.

package core

// Directed reports whether edges of this graph are one-way.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// GraphStats is a compact snapshot of a graph's configuration and size.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}

// Stats produces a read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges and self-loops, then release.
//
// Behavior highlights:
//   - Never holds both locks at once.
//
// Complexity:
//   - Time O(E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return stats
}

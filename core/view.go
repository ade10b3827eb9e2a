// File: view.go
// Role: Non-mutating graph views (vertex-induced copies).
// Determinism:
//   - Preserves vertex/edge IDs and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import (
	"fmt"
	"sync/atomic"
)

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacencyList[id] = make(map[string]string)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		linkEdge(out, &Edge{ID: eid, From: e.From, To: e.To, Directed: e.Directed})
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// WithoutVertices returns a copy of g with the listed vertices and all their
// incident edges removed. g itself is left untouched, so the same graph can
// feed every level of a removal sweep.
//
// Implementation:
//   - Stage 1: Validate every ID against the vertex catalog.
//   - Stage 2: Build the keep-set as V minus ids.
//   - Stage 3: Delegate to InducedSubgraph.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound (wrapped with the offending ID).
//
// Complexity: O(V + E + len(ids)).
func (g *Graph) WithoutVertices(ids []string) (*Graph, error) {
	g.muVert.RLock()
	keep := make(map[string]bool, len(g.vertices))
	for id := range g.vertices {
		keep[id] = true
	}
	g.muVert.RUnlock()

	for _, id := range ids {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		if _, ok := keep[id]; !ok {
			return nil, fmt.Errorf("WithoutVertices: %q: %w", id, ErrVertexNotFound)
		}
		keep[id] = false
	}

	return InducedSubgraph(g, keep), nil
}

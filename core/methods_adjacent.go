// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the IDs reachable from id over one edge, sorted
// lexicographically ascending.
//
// Adjacency policy:
//   - Directed graphs: successors only (e.From == id).
//   - Undirected graphs: every incident edge; a self-loop lists id once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	toMap := g.adjacencyList[id]
	ids := make([]string, 0, len(toMap))
	for to := range toMap {
		ids = append(ids, to)
	}
	sort.Strings(ids)

	return ids, nil
}

// Neighbors returns the edges leaving id under the same policy as
// NeighborIDs, ordered by neighbor ID.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	ids, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(ids))
	for _, to := range ids {
		if eid, ok := g.adjacencyList[id][to]; ok {
			out = append(out, g.edges[eid])
		}
	}

	return out, nil
}

// ensureAdjacency guarantees that adjacencyList[id] is initialized.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]string)
	}
}

// removeAdjacency unlinks e from from→to and, for undirected non-loops, to→from.
// Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacencyList[e.From]; m != nil {
		delete(m, e.To)
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacencyList[e.To]; m != nil {
			delete(m, e.From)
		}
	}
}

// Package core provides the thread-safe in-memory Graph that every netresil
// routine operates on.
//
// The Graph G = (V,E) is a simple graph:
//
//   - Directed or undirected edges (WithDirected)
//   - Optional self-loops (WithLoops)
//   - At most one edge per endpoint pair (ErrMultiEdgeNotAllowed otherwise)
//   - Constant-time edge membership via adjacencyList[from][to] = edgeID
//   - Atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error           // O(1)
//	HasVertex(id string) bool            // O(1)
//	RemoveVertex(id string) error        // O(deg(v)) undirected
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)
//	RemoveEdge(edgeID string) error          // O(1)
//	HasEdge(from, to string) bool            // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error) // sorted successors
//	Vertices() []string                      // sorted
//	Edges() []*Edge                          // creation order
//	Degree(id string) (in, out, undirected int, err error)
//	Degrees() map[string]int                 // O(V+E), all vertices at once
//
//	// Copies
//	Clone() *Graph
//	CloneEmpty() *Graph
//	InducedSubgraph(g, keep) *Graph
//	WithoutVertices(ids) (*Graph, error)     // removal without mutating g
//
//	// Dense relabelling
//	NewDenseIndex(g) / DenseEdges(g)         // IDs ↔ 0..n-1
//
// Removal sweeps rely on WithoutVertices: every removal level starts from the
// same untouched graph and receives its own copy, so concurrent levels never
// observe each other's deletions.
package core

// File: dense.go
// Role: Relabel a graph onto the contiguous integer range 0..n-1.
// Determinism:
//   - Index i is the i-th ID of Vertices(); edges follow Edges() order.

package core

// DenseIndex maps vertex IDs onto 0..n-1 and back.
type DenseIndex struct {
	ids   []string
	index map[string]int
}

// NewDenseIndex relabels the vertices of g in sorted-ID order.
//
// Complexity: O(V log V).
func NewDenseIndex(g *Graph) *DenseIndex {
	ids := g.Vertices()
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &DenseIndex{ids: ids, index: index}
}

// Len returns the number of relabelled vertices.
func (d *DenseIndex) Len() int { return len(d.ids) }

// Index returns the dense label of id.
func (d *DenseIndex) Index(id string) (int, bool) {
	i, ok := d.index[id]
	return i, ok
}

// ID returns the vertex ID behind dense label i. It panics when i is out of range.
func (d *DenseIndex) ID(i int) string { return d.ids[i] }

// DenseEdges relabels g and returns its edge list as dense endpoint pairs.
// Undirected edges appear once; self-loops are kept as (i, i).
//
// Complexity: O(V log V + E log E).
func DenseEdges(g *Graph) (*DenseIndex, [][2]int) {
	idx := NewDenseIndex(g)
	edges := g.Edges()
	pairs := make([][2]int, 0, len(edges))
	for _, e := range edges {
		u, okU := idx.index[e.From]
		v, okV := idx.index[e.To]
		if !okU || !okV {
			continue
		}
		pairs = append(pairs, [2]int{u, v})
	}

	return idx, pairs
}

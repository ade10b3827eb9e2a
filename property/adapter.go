// File: adapter.go
// Role: core.Graph -> gonum graph conversion.
// Determinism:
//   - Node i of the gonum graph is the i-th vertex of g.Vertices().
//   - Self-loops are dropped; they never affect connectivity.

package property

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netresil/core"
)

// toGonum converts g into a gonum graph. With weak set, or when g is
// undirected, the result is a *simple.UndirectedGraph; otherwise a
// *simple.DirectedGraph.
func toGonum(g *core.Graph, weak bool) graph.Graph {
	idx, pairs := core.DenseEdges(g)

	if weak || !g.Directed() {
		ug := simple.NewUndirectedGraph()
		for i := 0; i < idx.Len(); i++ {
			ug.AddNode(simple.Node(int64(i)))
		}
		for _, p := range pairs {
			if p[0] == p[1] {
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(int64(p[0])), T: simple.Node(int64(p[1]))})
		}

		return ug
	}

	dg := simple.NewDirectedGraph()
	for i := 0; i < idx.Len(); i++ {
		dg.AddNode(simple.Node(int64(i)))
	}
	for _, p := range pairs {
		if p[0] == p[1] {
			continue
		}
		dg.SetEdge(simple.Edge{F: simple.Node(int64(p[0])), T: simple.Node(int64(p[1]))})
	}

	return dg
}

package core_test

import (
	"fmt"

	"github.com/katalvlaran/netresil/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B: [A C]
	// Edge A→B exists? false
}

// ExampleGraph_WithoutVertices shows removal that leaves the source graph intact.
func ExampleGraph_WithoutVertices() {
	g := core.NewGraph()
	_, _ = g.AddEdge("hub", "a")
	_, _ = g.AddEdge("hub", "b")
	_, _ = g.AddEdge("a", "b")

	h, _ := g.WithoutVertices([]string{"hub"})
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(h.VertexCount(), h.EdgeCount())

	// Output:
	// 3 3
	// 2 1
}

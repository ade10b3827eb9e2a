package removal_test

import (
	"fmt"

	"github.com/katalvlaran/netresil/builder"
	"github.com/katalvlaran/netresil/removal"
)

// ExampleAttack removes the hub of a star, leaving only isolated leaves.
func ExampleAttack() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(5))
	h, _ := removal.Attack(g, 1, nil)
	fmt.Println(h.VertexCount(), h.EdgeCount())
	// Output: 4 0
}

package tolerance_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netresil/builder"
	"github.com/katalvlaran/netresil/property"
	"github.com/katalvlaran/netresil/removal"
	"github.com/katalvlaran/netresil/schedule"
	"github.com/katalvlaran/netresil/tolerance"
)

// ExampleSimulation_PropertyVsRemovals tracks the giant component of a star
// as its hub is attacked.
func ExampleSimulation_PropertyVsRemovals() {
	g, _ := builder.BuildGraph(nil, nil, builder.Star(10))
	sched, _ := schedule.New(0.2, 3, g.VertexCount())
	sim, _ := tolerance.NewSimulation(g, sched, tolerance.WithSeed(1))

	s, _ := sim.PropertyVsRemovals(context.Background(), property.LargestComponentFraction, removal.Attack)
	for i := range s.Values {
		fmt.Printf("%.1f %d %.3f\n", s.Frequencies[i], s.Counts[i], s.Values[i])
	}
	// Output:
	// 0.0 0 1.000
	// 0.1 1 0.111
	// 0.2 2 0.125
}

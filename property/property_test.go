package property_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netresil/builder"
	"github.com/katalvlaran/netresil/core"
	"github.com/katalvlaran/netresil/property"
)

var ctx = context.Background()

// componentsGraph has components of sizes 4 (path), 3 (triangle) and 1.
func componentsGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"a1", "a2"}, {"a2", "a3"}, {"a3", "a4"}, {"b1", "b2"}, {"b2", "b3"}, {"b3", "b1"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("c1"))

	return g
}

func TestEmptyAndEdgeless(t *testing.T) {
	empty := core.NewGraph()
	edgeless := core.NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, edgeless.AddVertex(fmt.Sprintf("v%d", i)))
	}

	for _, name := range []string{property.NameDiameter, property.NameLargestComponent, property.NameAverageComponent} {
		f, err := property.Lookup(name)
		require.NoError(t, err)
		v, err := f(ctx, empty)
		require.NoError(t, err, name)
		require.Zero(t, v, name)
	}

	d, err := property.Diameter(ctx, edgeless)
	require.NoError(t, err)
	require.Zero(t, d)

	s, err := property.LargestComponentFraction(ctx, edgeless)
	require.NoError(t, err)
	require.InDelta(t, 0.2, s, 1e-12)

	avg, err := property.AverageSmallComponentSize(ctx, edgeless)
	require.NoError(t, err)
	require.InDelta(t, 1.0, avg, 1e-12)
}

func TestDiameterCycle(t *testing.T) {
	cases := []struct {
		k    int
		want float64
	}{
		{3, 1.0},
		{5, 1.5},
		{6, 1.8},
	}
	for _, tc := range cases {
		g, err := builder.BuildGraph(nil, nil, builder.Cycle(tc.k))
		require.NoError(t, err)
		d, err := property.Diameter(ctx, g)
		require.NoError(t, err)
		require.InDelta(t, tc.want, d, 1e-12, "C_%d", tc.k)
	}
}

func TestDiameterDisconnected(t *testing.T) {
	// path a1..a4: 2*(3*1 + 2*2 + 1*3) = 20 over 12 pairs;
	// triangle: 6 pairs at distance 1; c1 contributes nothing.
	d, err := property.Diameter(ctx, componentsGraph(t))
	require.NoError(t, err)
	require.InDelta(t, 26.0/18.0, d, 1e-12)
}

func TestDiameterDirected(t *testing.T) {
	chain := core.NewGraph(core.WithDirected(true))
	_, _ = chain.AddEdge("A", "B")
	_, _ = chain.AddEdge("B", "C")
	d, err := property.Diameter(ctx, chain)
	require.NoError(t, err)
	require.InDelta(t, 4.0/3.0, d, 1e-12)

	_, _ = chain.AddEdge("C", "A")
	d, err = property.Diameter(ctx, chain)
	require.NoError(t, err)
	require.InDelta(t, 1.5, d, 1e-12, "strongly connected 3-cycle")
}

func TestComponentMetrics(t *testing.T) {
	g := componentsGraph(t)

	sizes, err := property.Components(g)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4}, sizes)

	s, err := property.LargestComponentFraction(ctx, g)
	require.NoError(t, err)
	require.InDelta(t, 0.5, s, 1e-12)

	avg, err := property.AverageSmallComponentSize(ctx, g)
	require.NoError(t, err)
	require.InDelta(t, 2.0, avg, 1e-12)
}

func TestWeakComponentsDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("C", "B")
	require.NoError(t, g.AddVertex("D"))

	sizes, err := property.Components(g)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, sizes)
}

func TestSelfLoopIgnored(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A")
	_, _ = g.AddEdge("A", "B")

	d, err := property.Diameter(ctx, g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, 1e-12)

	sizes, err := property.Components(g)
	require.NoError(t, err)
	require.Equal(t, []int{2}, sizes)
}

func TestNilAndUnknown(t *testing.T) {
	_, err := property.Diameter(ctx, nil)
	require.ErrorIs(t, err, property.ErrGraphNil)
	_, err = property.LargestComponentFraction(ctx, nil)
	require.ErrorIs(t, err, property.ErrGraphNil)
	_, err = property.AverageSmallComponentSize(ctx, nil)
	require.ErrorIs(t, err, property.ErrGraphNil)
	_, err = property.Lookup("girth")
	require.ErrorIs(t, err, property.ErrUnknownProperty)
}

func TestDiameterHonoursCancellation(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(200))
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = property.Diameter(cancelled, g)
	require.ErrorIs(t, err, context.Canceled)

	d, err := property.Diameter(ctx, g)
	require.NoError(t, err)
	require.Greater(t, d, 0.0)
}

package degree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netresil/builder"
	"github.com/katalvlaran/netresil/core"
	"github.com/katalvlaran/netresil/degree"
)

func TestDistributionPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	ks, pdf, err := degree.Distribution(g)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ks)
	require.Equal(t, []float64{0.5, 0.5}, pdf)

	avg, err := degree.Average(g)
	require.NoError(t, err)
	require.InDelta(t, 1.5, avg, 1e-12)
}

func TestDistributionIsolated(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	require.NoError(t, g.AddVertex("c"))
	require.NoError(t, g.AddVertex("d"))

	ks, pdf, err := degree.Distribution(g)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, ks)
	require.Equal(t, []float64{0.5, 0.5}, pdf)
}

func TestEmptyAndNil(t *testing.T) {
	ks, pdf, err := degree.Distribution(core.NewGraph())
	require.NoError(t, err)
	require.Nil(t, ks)
	require.Nil(t, pdf)

	avg, err := degree.Average(core.NewGraph())
	require.NoError(t, err)
	require.Zero(t, avg)

	_, _, err = degree.Distribution(nil)
	require.ErrorIs(t, err, degree.ErrGraphNil)
	_, err = degree.Average(nil)
	require.ErrorIs(t, err, degree.ErrGraphNil)
}

func TestFitPowerLawExact(t *testing.T) {
	ks := []int{0, 1, 2, 3, 4, 5}
	pdf := make([]float64, len(ks))
	pdf[0] = 0.3 // dropped: k == 0
	for i := 1; i < len(ks); i++ {
		pdf[i] = 2 * math.Pow(float64(ks[i]), -1.5)
	}

	fit, err := degree.FitPowerLaw(ks, pdf)
	require.NoError(t, err)
	require.InDelta(t, 2.0, fit.Alpha, 1e-9)
	require.InDelta(t, -1.5, fit.Beta, 1e-9)
	require.InDelta(t, 1.0, fit.RSquared, 1e-9)
	require.InDelta(t, 2*math.Pow(10, -1.5), fit.Eval(10), 1e-9)
}

func TestFitPowerLawErrors(t *testing.T) {
	_, err := degree.FitPowerLaw([]int{1, 2}, []float64{0.5})
	require.ErrorIs(t, err, degree.ErrLengthMismatch)
	_, err = degree.FitPowerLaw([]int{0, 3}, []float64{0.5, 0.5})
	require.ErrorIs(t, err, degree.ErrTooFewPoints)
}

func TestScaleFreeTailDecreases(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(102)}, builder.BarabasiAlbert(2000, 2))
	require.NoError(t, err)
	ks, pdf, err := degree.Distribution(g)
	require.NoError(t, err)
	require.GreaterOrEqual(t, ks[0], 1, "BA graphs have no isolated vertices")

	fit, err := degree.FitPowerLaw(ks, pdf)
	require.NoError(t, err)
	require.Less(t, fit.Beta, -1.0)
}

// Package degree summarizes the degree sequence of a core.Graph: its
// empirical distribution, its mean and a power-law fit of the tail.
package degree

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/netresil/core"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("degree: graph is nil")

	// ErrLengthMismatch indicates degree and pdf slices of different length.
	ErrLengthMismatch = errors.New("degree: degree and pdf lengths differ")

	// ErrTooFewPoints indicates fewer than two positive (k, pdf) points to fit.
	ErrTooFewPoints = errors.New("degree: need at least two positive points to fit")
)

// Distribution returns the distinct degrees of g in ascending order and the
// fraction of vertices having each of them. The empty graph yields nil slices.
func Distribution(g *core.Graph) ([]int, []float64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("Distribution: %w", ErrGraphNil)
	}
	deg := g.Degrees()
	if len(deg) == 0 {
		return nil, nil, nil
	}

	counts := make(map[int]int)
	for _, d := range deg {
		counts[d]++
	}
	ks := make([]int, 0, len(counts))
	for k := range counts {
		ks = append(ks, k)
	}
	sort.Ints(ks)

	pdf := make([]float64, len(ks))
	for i, k := range ks {
		pdf[i] = float64(counts[k]) / float64(len(deg))
	}

	return ks, pdf, nil
}

// Average returns ⟨k⟩ = Σ k·P(k), 0 on the empty graph.
func Average(g *core.Graph) (float64, error) {
	ks, pdf, err := Distribution(g)
	if err != nil {
		return 0, fmt.Errorf("Average: %w", err)
	}
	var avg float64
	for i, k := range ks {
		avg += float64(k) * pdf[i]
	}

	return avg, nil
}

// PowerLaw is the model P(k) = Alpha · k^Beta.
type PowerLaw struct {
	Alpha    float64
	Beta     float64
	RSquared float64 // coefficient of determination in log-log space
}

// Eval returns Alpha · k^Beta.
func (p PowerLaw) Eval(k float64) float64 {
	return p.Alpha * math.Pow(k, p.Beta)
}

// FitPowerLaw fits P(k) = α·k^β by least squares on (log k, log P(k)).
// Points with k <= 0 or P(k) <= 0 are skipped, which drops isolated vertices.
func FitPowerLaw(ks []int, pdf []float64) (PowerLaw, error) {
	if len(ks) != len(pdf) {
		return PowerLaw{}, fmt.Errorf("FitPowerLaw: %d vs %d: %w", len(ks), len(pdf), ErrLengthMismatch)
	}
	xs := make([]float64, 0, len(ks))
	ys := make([]float64, 0, len(ks))
	for i, k := range ks {
		if k <= 0 || pdf[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(k)))
		ys = append(ys, math.Log(pdf[i]))
	}
	if len(xs) < 2 {
		return PowerLaw{}, fmt.Errorf("FitPowerLaw: %d points: %w", len(xs), ErrTooFewPoints)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	return PowerLaw{
		Alpha:    math.Exp(intercept),
		Beta:     slope,
		RSquared: stat.RSquared(xs, ys, nil, intercept, slope),
	}, nil
}

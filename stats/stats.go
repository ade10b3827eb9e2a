// Package stats reduces batches of epidemic trajectories to scalar features.
//
// Every entry point takes a gonum mat.Matrix whose rows are independent runs
// and whose columns are time steps. A statistic is computed per row and then
// averaged over the rows. A single run is just a batch of one, see Single.
//
//	Peak           mean of the row maxima
//	TPeak          mean of the first arg-max index per row
//	Duration       mean count of non-zero entries per row
//	TotalInfected  mean of last infected + last recovered fraction per row
//
// Statistics declare what they consume by their type: InfectionOnlyStat reads
// the infection batch, InfectionRecoveryStat reads both batches. Both satisfy
// Statistic, which is what the epidemic orchestrator accepts.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyBatch indicates a matrix with no rows or no columns.
	ErrEmptyBatch = errors.New("stats: empty batch")

	// ErrShapeMismatch indicates infection and recovery batches of different dims.
	ErrShapeMismatch = errors.New("stats: infection and recovery shapes differ")

	// ErrUnknownFeature is returned by Lookup for an unregistered name.
	ErrUnknownFeature = errors.New("stats: unknown feature")
)

// Statistic reduces an infection batch and its recovery batch to one value.
type Statistic interface {
	Evaluate(inf, rec mat.Matrix) (float64, error)
}

// InfectionOnlyStat is a statistic of the infection batch alone.
type InfectionOnlyStat func(inf mat.Matrix) float64

// Evaluate implements Statistic; rec is ignored.
func (f InfectionOnlyStat) Evaluate(inf, _ mat.Matrix) (float64, error) {
	if isEmpty(inf) {
		return 0, ErrEmptyBatch
	}

	return f(inf), nil
}

// InfectionRecoveryStat is a statistic of both batches.
type InfectionRecoveryStat func(inf, rec mat.Matrix) float64

// Evaluate implements Statistic; inf and rec must have equal dims.
func (f InfectionRecoveryStat) Evaluate(inf, rec mat.Matrix) (float64, error) {
	if isEmpty(inf) || rec == nil || isEmpty(rec) {
		return 0, ErrEmptyBatch
	}
	ri, ci := inf.Dims()
	rr, cr := rec.Dims()
	if ri != rr || ci != cr {
		return 0, fmt.Errorf("Evaluate: %dx%d vs %dx%d: %w", ri, ci, rr, cr, ErrShapeMismatch)
	}

	return f(inf, rec), nil
}

// Single wraps one series as a 1×T batch.
func Single(series []float64) *mat.Dense {
	if len(series) == 0 {
		return &mat.Dense{}
	}

	return mat.NewDense(1, len(series), append([]float64(nil), series...))
}

// Stack copies equal-length series into a len(rows)×T batch.
// It panics if the rows differ in length.
func Stack(rows [][]float64) *mat.Dense {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &mat.Dense{}
	}
	cols := len(rows[0])
	m := mat.NewDense(len(rows), cols, nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}

	return m
}

// Peak is the mean over runs of the maximum infected fraction.
func Peak(inf mat.Matrix) float64 {
	return perRow(inf, floats.Max)
}

// TPeak is the mean over runs of the step at which the infected fraction
// first reaches its maximum.
func TPeak(inf mat.Matrix) float64 {
	return perRow(inf, func(row []float64) float64 {
		return float64(floats.MaxIdx(row))
	})
}

// Duration is the mean over runs of the number of steps with a non-zero
// infected fraction; 0 when the epidemic never took hold.
func Duration(inf mat.Matrix) float64 {
	return perRow(inf, func(row []float64) float64 {
		n := 0
		for _, v := range row {
			if v != 0 {
				n++
			}
		}
		return float64(n)
	})
}

// TotalInfected is the mean over runs of the final infected plus final
// recovered fraction, the eventual attack rate. inf and rec must have equal
// dims.
func TotalInfected(inf, rec mat.Matrix) float64 {
	if isEmpty(inf) {
		return 0
	}
	r, c := inf.Dims()
	totals := make([]float64, r)
	for i := range totals {
		totals[i] = inf.At(i, c-1) + rec.At(i, c-1)
	}

	return stat.Mean(totals, nil)
}

// perRow applies f to every row and averages the results.
func perRow(m mat.Matrix, f func([]float64) float64) float64 {
	if isEmpty(m) {
		return 0
	}
	r, c := m.Dims()
	vals := make([]float64, r)
	row := make([]float64, c)
	for i := range vals {
		mat.Row(row, i, m)
		vals[i] = f(row)
	}

	return stat.Mean(vals, nil)
}

func isEmpty(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return true
	}
	r, c := m.Dims()

	return r == 0 || c == 0
}

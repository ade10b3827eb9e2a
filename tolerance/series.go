package tolerance

import (
	"errors"

	"github.com/katalvlaran/netresil/schedule"
)

var (
	// ErrGraphNil is returned when an orchestrator is built on a nil graph.
	ErrGraphNil = errors.New("tolerance: graph is nil")

	// ErrScheduleMismatch indicates a schedule built for another node count.
	ErrScheduleMismatch = errors.New("tolerance: schedule does not match graph size")

	// ErrNilFunc indicates a nil property, statistic or strategy.
	ErrNilFunc = errors.New("tolerance: nil function")

	// ErrInvalidSimulations indicates numSimulations < 1.
	ErrInvalidSimulations = errors.New("tolerance: number of simulations must be >= 1")
)

// Series is the outcome of a sweep: Values[i] was measured after removing
// Counts[i] vertices, a fraction Frequencies[i] of the original graph.
type Series struct {
	Frequencies []float64
	Counts      []int
	Values      []float64
}

// Len is the number of levels.
func (s Series) Len() int { return len(s.Values) }

func newSeries(sched schedule.Schedule, values []float64) Series {
	return Series{
		Frequencies: sched.Frequencies(),
		Counts:      sched.Counts(),
		Values:      values,
	}
}

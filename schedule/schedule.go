// Package schedule builds the removal-frequency schedule shared by the
// tolerance orchestrators.
//
// A Schedule maps a maximum removal rate and a point count onto a
// deduplicated, strictly increasing list of removal levels for a graph of N
// vertices:
//
//	f_i    = i * maxRate / (numPoints-1)   i = 0..numPoints-1
//	count  = int(f_i * N)                  truncation
//	dedup  counts (stable), then f = count / N
//
// The first level is always (0, 0). A Schedule is immutable once built and is
// safe to share between goroutines.
package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRate indicates a maximum removal rate outside (0, 1].
	ErrInvalidRate = errors.New("schedule: max removal rate must be in (0, 1]")

	// ErrInvalidPoints indicates a point count below 1.
	ErrInvalidPoints = errors.New("schedule: number of points must be >= 1")

	// ErrEmptyGraph indicates a node count below 1.
	ErrEmptyGraph = errors.New("schedule: graph has no nodes")
)

// Level is one removal point of a sweep.
type Level struct {
	Frequency float64 // Count / N
	Count     int     // number of vertices to remove
}

// Schedule is an immutable list of removal levels.
type Schedule struct {
	levels   []Level
	numNodes int
	maxRate  float64
	points   int
}

// New builds the schedule for maxRate, numPoints and a graph of numNodes.
func New(maxRate float64, numPoints, numNodes int) (Schedule, error) {
	if !(maxRate > 0 && maxRate <= 1) {
		return Schedule{}, fmt.Errorf("New: rate=%v: %w", maxRate, ErrInvalidRate)
	}
	if numPoints < 1 {
		return Schedule{}, fmt.Errorf("New: points=%d: %w", numPoints, ErrInvalidPoints)
	}
	if numNodes < 1 {
		return Schedule{}, fmt.Errorf("New: nodes=%d: %w", numNodes, ErrEmptyGraph)
	}

	levels := make([]Level, 0, numPoints)
	last := -1
	for _, f := range linspace(maxRate, numPoints) {
		c := int(f * float64(numNodes))
		if c == last {
			continue
		}
		last = c
		levels = append(levels, Level{Frequency: float64(c) / float64(numNodes), Count: c})
	}

	return Schedule{levels: levels, numNodes: numNodes, maxRate: maxRate, points: numPoints}, nil
}

// linspace returns num evenly spaced values over [0, stop]; the last value is
// exactly stop when num > 1.
func linspace(stop float64, num int) []float64 {
	out := make([]float64, num)
	if num == 1 {
		return out
	}
	step := stop / float64(num-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[num-1] = stop

	return out
}

// Levels returns a copy of the removal levels.
func (s Schedule) Levels() []Level {
	return append([]Level(nil), s.levels...)
}

// Frequencies returns the removal fractions, ascending.
func (s Schedule) Frequencies() []float64 {
	out := make([]float64, len(s.levels))
	for i, l := range s.levels {
		out[i] = l.Frequency
	}

	return out
}

// Counts returns the absolute removal counts, ascending.
func (s Schedule) Counts() []int {
	out := make([]int, len(s.levels))
	for i, l := range s.levels {
		out[i] = l.Count
	}

	return out
}

// Len is the number of distinct levels (<= the requested point count).
func (s Schedule) Len() int { return len(s.levels) }

// NumNodes is the vertex count of the original graph.
func (s Schedule) NumNodes() int { return s.numNodes }

// MaxRate is the requested maximum removal rate.
func (s Schedule) MaxRate() float64 { return s.maxRate }

// Points is the requested number of points before deduplication.
func (s Schedule) Points() int { return s.points }

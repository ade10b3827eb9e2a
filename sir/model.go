// SPDX-License-Identifier: MIT
// Package: netresil/sir
//
// model.go - parameters, validation, dense network preparation.

package sir

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/netresil/core"
)

var (
	// ErrInvalidParams indicates Mu or Nu outside [0,1], Duration < 1 or
	// InfectedT0 < 0.
	ErrInvalidParams = errors.New("sir: invalid parameters")

	// ErrGraphNil is returned by Prepare for a nil graph.
	ErrGraphNil = errors.New("sir: graph is nil")

	// ErrNeedRandSource is returned by Run when rng is nil.
	ErrNeedRandSource = errors.New("sir: rng is required")
)

// State is the epidemic state of one node.
type State int8

const (
	Recovered   State = -1
	Susceptible State = 0
	Infected    State = 1
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Susceptible:
		return "S"
	case Infected:
		return "I"
	case Recovered:
		return "R"
	}

	return fmt.Sprintf("State(%d)", int8(s))
}

// Params configures the SIR process.
type Params struct {
	Mu         float64 // transmission probability per discordant edge per step
	Nu         float64 // recovery probability per infected node per step
	Duration   int     // number of steps
	InfectedT0 int     // initially infected nodes, clamped to |V|
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	switch {
	case p.Mu < 0 || p.Mu > 1:
		return fmt.Errorf("Validate: mu=%v: %w", p.Mu, ErrInvalidParams)
	case p.Nu < 0 || p.Nu > 1:
		return fmt.Errorf("Validate: nu=%v: %w", p.Nu, ErrInvalidParams)
	case p.Duration < 1:
		return fmt.Errorf("Validate: duration=%d: %w", p.Duration, ErrInvalidParams)
	case p.InfectedT0 < 0:
		return fmt.Errorf("Validate: infected_t0=%d: %w", p.InfectedT0, ErrInvalidParams)
	}

	return nil
}

// Model is a validated, immutable set of Params.
type Model struct {
	params Params
}

// NewModel validates p and returns a Model.
func NewModel(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("NewModel: %w", err)
	}

	return &Model{params: p}, nil
}

// Params returns the model parameters.
func (m *Model) Params() Params { return m.params }

// Network is a graph relabelled onto 0..n-1, ready for repeated runs.
// It is read-only after Prepare and safe for concurrent Run calls.
type Network struct {
	params Params
	index  *core.DenseIndex
	edges  [][2]int
}

// Prepare relabels g densely so that state indices always match the node set
// of g, including graphs that have lost vertices to a removal strategy.
// Self-loops are dropped: they can never be discordant.
func (m *Model) Prepare(g *core.Graph) (*Network, error) {
	if g == nil {
		return nil, fmt.Errorf("Prepare: %w", ErrGraphNil)
	}
	idx, pairs := core.DenseEdges(g)
	edges := pairs[:0]
	for _, p := range pairs {
		if p[0] != p[1] {
			edges = append(edges, p)
		}
	}

	return &Network{params: m.params, index: idx, edges: edges}, nil
}

// Len is the number of nodes.
func (nw *Network) Len() int { return nw.index.Len() }

// EdgeCount is the number of edges taking part in transmission.
func (nw *Network) EdgeCount() int { return len(nw.edges) }

// InitialInfected is the number of nodes infected at step 0,
// min(InfectedT0, Len()).
func (nw *Network) InitialInfected() int {
	return min(nw.params.InfectedT0, nw.Len())
}

// Clamped reports whether InfectedT0 exceeds the node count.
func (nw *Network) Clamped() bool {
	return nw.params.InfectedT0 > nw.Len()
}

// NodeID returns the vertex ID behind state index i.
func (nw *Network) NodeID(i int) string { return nw.index.ID(i) }

// Evolve prepares g and runs one simulation on it.
func (m *Model) Evolve(g *core.Graph, rng *rand.Rand, opts ...RunOption) (Trajectory, error) {
	nw, err := m.Prepare(g)
	if err != nil {
		return Trajectory{}, fmt.Errorf("Evolve: %w", err)
	}

	return nw.Run(rng, opts...)
}

// File: run.go
// Role: one stochastic SIR simulation over a prepared Network.
// Determinism:
//   - Output depends only on (Network, Params, rng state).
//   - Draw order: initial infection, then per step the discordant edges in
//     edge order followed by the start-of-step infected nodes in index order.
// Concurrency:
//   - Run allocates its own state; a Network may be shared across goroutines
//     as long as each goroutine owns its rng.

package sir

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Trajectory holds the per-step fractions of one run, both of length Duration.
type Trajectory struct {
	Infected  []float64 // fraction of nodes Infected after step t+1
	Recovered []float64 // fraction of nodes Recovered after step t+1
}

// Observer receives the state vector at step 0 (after the first infection)
// and after every step 1..Duration. The slice is reused between calls and
// must not be retained.
type Observer func(step int, states []State)

// RunOption customizes a single Run.
type RunOption func(*runConfig)

type runConfig struct {
	observer Observer
}

// WithObserver registers fn to watch every step of a run.
func WithObserver(fn Observer) RunOption {
	return func(c *runConfig) {
		c.observer = fn
	}
}

// Run executes one simulation with randomness drawn from rng.
// An empty network yields an all-zero trajectory.
func (nw *Network) Run(rng *rand.Rand, opts ...RunOption) (Trajectory, error) {
	if rng == nil {
		return Trajectory{}, fmt.Errorf("Run: %w", ErrNeedRandSource)
	}
	var cfg runConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	n := nw.Len()
	steps := nw.params.Duration
	tr := Trajectory{
		Infected:  make([]float64, steps),
		Recovered: make([]float64, steps),
	}
	if n == 0 {
		return tr, nil
	}

	state := nw.firstInfection(rng)
	if cfg.observer != nil {
		cfg.observer(0, state)
	}

	transmit := distuv.Bernoulli{P: nw.params.Mu, Src: rng}
	heal := distuv.Bernoulli{P: nw.params.Nu, Src: rng}
	start := make([]State, n)
	discordant := make([][2]int, 0, len(nw.edges))

	for t := 0; t < steps; t++ {
		copy(start, state)

		discordant = discordant[:0]
		for _, e := range nw.edges {
			if start[e[0]]+start[e[1]] == Infected {
				discordant = append(discordant, e)
			}
		}
		for _, e := range discordant {
			if transmit.Rand() == 1 {
				state[e[0]] = Infected
				state[e[1]] = Infected
			}
		}

		for i, s := range start {
			if s == Infected && heal.Rand() == 1 {
				state[i] = Recovered
			}
		}

		var inf, rec int
		for _, s := range state {
			switch s {
			case Infected:
				inf++
			case Recovered:
				rec++
			}
		}
		tr.Infected[t] = float64(inf) / float64(n)
		tr.Recovered[t] = float64(rec) / float64(n)

		if cfg.observer != nil {
			cfg.observer(t+1, state)
		}
	}

	return tr, nil
}

// firstInfection infects InitialInfected distinct nodes chosen uniformly
// (partial Fisher-Yates over 0..n-1).
func (nw *Network) firstInfection(rng *rand.Rand) []State {
	n := nw.Len()
	state := make([]State, n)
	k := nw.InitialInfected()
	if k == 0 {
		return state
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
		state[perm[i]] = Infected
	}

	return state
}

// SPDX-License-Identifier: MIT
// Package: netresil/builder
//
// impl_barabasi_albert.go - implementation of BarabasiAlbert(n, m) constructor.
//
// Canonical model:
//   - Seed graph: star on vertices 0..m with hub 0.
//   - Vertex s = m+1 .. n-1 attaches to m distinct existing vertices chosen
//     with probability proportional to their current degree. Degree weighting
//     uses a "repeated vertices" pool where each vertex appears once per
//     incident edge end.
//
// Contract:
//   - Undirected graphs only (else ErrUnsupportedGraphMode).
//   - 1 ≤ m < n (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·m) expected; pool grows to 2·m·(n-m) entries.
//
// Determinism:
//   - Targets are attached in ascending index order; the rng is consumed only
//     by pool draws, so equal seeds yield identical graphs.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netresil/core"
)

const minBAEdges = 1

// BarabasiAlbert returns a Constructor that grows a scale-free graph of n
// vertices by preferential attachment with m edges per new vertex.
func BarabasiAlbert(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return fmt.Errorf("%s: only undirected graphs are supported: %w",
				MethodBarabasiAlbert, ErrUnsupportedGraphMode)
		}
		if m < minBAEdges || m >= n {
			return fmt.Errorf("%s: need 1 ≤ m < n, got m=%d n=%d: %w",
				MethodBarabasiAlbert, m, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodBarabasiAlbert, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodBarabasiAlbert, id, err)
			}
		}

		addEdge := func(u, v int) error {
			if _, err := g.AddEdge(cfg.idFn(u), cfg.idFn(v)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", MethodBarabasiAlbert, u, v, err)
			}
			return nil
		}

		// Seed star: hub 0 linked to 1..m.
		pool := make([]int, 0, 2*m*(n-m))
		for leaf := 1; leaf <= m; leaf++ {
			if err := addEdge(0, leaf); err != nil {
				return err
			}
			pool = append(pool, 0, leaf)
		}

		targets := make([]int, 0, m)
		chosen := make(map[int]struct{}, m)
		for source := m + 1; source < n; source++ {
			targets = targets[:0]
			clear(chosen)
			for len(chosen) < m {
				t := pool[cfg.rng.IntN(len(pool))]
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
				targets = append(targets, t)
			}
			sort.Ints(targets)

			for _, t := range targets {
				if err := addEdge(source, t); err != nil {
					return err
				}
				pool = append(pool, t, source)
			}
		}

		return nil
	}
}

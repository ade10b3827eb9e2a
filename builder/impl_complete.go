// SPDX-License-Identifier: MIT
// Package: netresil/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic index order;
//     directed graphs also receive j→i.
//
// Complexity:
//   • Time: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netresil/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", MethodComplete, ids[i], err)
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", MethodComplete, ids[i], ids[j], err)
				}
				if directed {
					if _, err := g.AddEdge(ids[j], ids[i]); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", MethodComplete, ids[j], ids[i], err)
					}
				}
			}
		}

		return nil
	}
}

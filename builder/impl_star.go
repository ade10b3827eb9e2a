// SPDX-License-Identifier: MIT
// Package: netresil/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub has the fixed ID CenterVertexID; leaves use cfg.idFn(1..n-1).
//   • Directed graphs receive both spokes (Center→leaf and leaf→Center).
//
// Complexity:
//   • Time: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netresil/core"
)

const minStarNodes = 2

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}

		directed := g.Directed()
		for i := 1; i < n; i++ {
			leafID := cfg.idFn(i)
			if _, err := g.AddEdge(CenterVertexID, leafID); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", MethodStar, CenterVertexID, leafID, err)
			}
			if directed {
				if _, err := g.AddEdge(leafID, CenterVertexID); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", MethodStar, leafID, CenterVertexID, err)
				}
			}
		}

		return nil
	}
}

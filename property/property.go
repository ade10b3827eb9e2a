// SPDX-License-Identifier: MIT
// Package: netresil/property
//
// property.go - diameter, S and ⟨s⟩.

package property

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/netresil/bfs"
	"github.com/katalvlaran/netresil/core"
)

var (
	// ErrGraphNil is returned when a metric receives a nil graph.
	ErrGraphNil = errors.New("property: graph is nil")

	// ErrUnknownProperty is returned by Lookup for an unregistered name.
	ErrUnknownProperty = errors.New("property: unknown property")
)

// Func evaluates one scalar metric of a graph snapshot. Long-running
// metrics stop with ctx.Err() once ctx is cancelled.
type Func func(ctx context.Context, g *core.Graph) (float64, error)

// Registry names accepted by Lookup.
const (
	NameDiameter         = "diameter"
	NameLargestComponent = "largest_component"
	NameAverageComponent = "average_component"
)

// Lookup returns the metric registered under name.
func Lookup(name string) (Func, error) {
	switch name {
	case NameDiameter:
		return Diameter, nil
	case NameLargestComponent:
		return LargestComponentFraction, nil
	case NameAverageComponent:
		return AverageSmallComponentSize, nil
	}

	return nil, fmt.Errorf("Lookup: %q: %w", name, ErrUnknownProperty)
}

// Diameter returns the average shortest-path length of g.
//
// On a connected (strongly connected, if directed) graph this is the mean
// over all n(n-1) ordered pairs. Otherwise the mean is taken over the ordered
// pairs (u,v) with v reachable from u at positive distance. A graph with no
// such pair, including the empty graph, has diameter 0.
//
// Complexity: O(V·(V+E)); ctx is checked before every source.
func Diameter(ctx context.Context, g *core.Graph) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("Diameter: %w", ErrGraphNil)
	}
	h, err := bfs.NewHops(g)
	if err != nil {
		return 0, fmt.Errorf("Diameter: %w", err)
	}
	n := h.Len()
	if n == 0 {
		return 0, nil
	}

	var sum, pairs int
	err = h.Sweep(ctx, func(_ int, dist []int) {
		for _, d := range dist {
			if d > 0 {
				sum += d
				pairs++
			}
		}
	})
	if err != nil {
		return 0, fmt.Errorf("Diameter: %w", err)
	}

	if isConnected(g) {
		if n == 1 {
			return 0, nil
		}
		return float64(sum) / float64(n*(n-1)), nil
	}
	if pairs == 0 {
		return 0, nil
	}

	return float64(sum) / float64(pairs), nil
}

// LargestComponentFraction returns S, the node count of the largest
// (weakly) connected component divided by |V|. The empty graph yields 0.
func LargestComponentFraction(_ context.Context, g *core.Graph) (float64, error) {
	sizes, err := Components(g)
	if err != nil {
		return 0, fmt.Errorf("LargestComponentFraction: %w", err)
	}
	if len(sizes) == 0 {
		return 0, nil
	}

	return float64(sizes[len(sizes)-1]) / float64(g.VertexCount()), nil
}

// AverageSmallComponentSize returns ⟨s⟩, the mean node count of all
// components except the single largest one, or 0 with fewer than two
// components.
func AverageSmallComponentSize(_ context.Context, g *core.Graph) (float64, error) {
	sizes, err := Components(g)
	if err != nil {
		return 0, fmt.Errorf("AverageSmallComponentSize: %w", err)
	}
	if len(sizes) < 2 {
		return 0, nil
	}

	rest := sizes[:len(sizes)-1]
	total := 0
	for _, s := range rest {
		total += s
	}

	return float64(total) / float64(len(rest)), nil
}

// Components returns the sizes of the connected components of g (weakly
// connected components on directed graphs), ascending.
func Components(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.VertexCount() == 0 {
		return nil, nil
	}

	cc := topo.ConnectedComponents(toGonum(g, true).(graph.Undirected))
	sizes := make([]int, len(cc))
	for i, c := range cc {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)

	return sizes, nil
}

// isConnected reports plain connectivity for undirected graphs and strong
// connectivity for directed ones.
func isConnected(g *core.Graph) bool {
	gg := toGonum(g, false)
	if dg, ok := gg.(graph.Directed); ok && g.Directed() {
		return len(topo.TarjanSCC(dg)) == 1
	}

	return len(topo.ConnectedComponents(gg.(graph.Undirected))) == 1
}

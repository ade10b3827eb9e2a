// SPDX-License-Identifier: MIT
// Package: netresil/bfs
//
// bfs.go - dense breadth-first hop counts.

package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netresil/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Unreachable is the distance of a vertex no path leads to.
const Unreachable = -1

// Hops is an immutable dense adjacency list of one graph snapshot.
// It is safe for concurrent use.
type Hops struct {
	index *core.DenseIndex
	adj   [][]int
}

// NewHops relabels g and builds its adjacency list.
//
// Complexity: O(V log V + E log E).
func NewHops(g *core.Graph) (*Hops, error) {
	if g == nil {
		return nil, fmt.Errorf("NewHops: %w", ErrGraphNil)
	}
	idx, pairs := core.DenseEdges(g)
	adj := make([][]int, idx.Len())
	for _, e := range pairs {
		u, v := e[0], e[1]
		if u == v {
			continue
		}
		adj[u] = append(adj[u], v)
		if !g.Directed() {
			adj[v] = append(adj[v], u)
		}
	}

	return &Hops{index: idx, adj: adj}, nil
}

// Len returns the number of vertices.
func (h *Hops) Len() int { return h.index.Len() }

// Index returns the relabelling behind the dense vertex numbers.
func (h *Hops) Index() *core.DenseIndex { return h.index }

// From writes the hop count from src to every vertex into dist and returns
// it. dist and queue are reused when they have capacity for Len() entries.
//
// Complexity: O(V + E).
func (h *Hops) From(src int, dist, queue []int) []int {
	n := h.Len()
	if cap(dist) < n {
		dist = make([]int, n)
	}
	dist = dist[:n]
	for i := range dist {
		dist[i] = Unreachable
	}
	if cap(queue) < n {
		queue = make([]int, 0, n)
	}
	queue = queue[:0]

	dist[src] = 0
	queue = append(queue, src)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		next := dist[u] + 1
		for _, v := range h.adj[u] {
			if dist[v] == Unreachable {
				dist[v] = next
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// Sweep runs From for every source in dense order and hands each result to
// fn. The slice passed to fn is reused; fn must not retain it.
// It returns ctx.Err() if ctx is cancelled between two sources.
func (h *Hops) Sweep(ctx context.Context, fn func(src int, dist []int)) error {
	n := h.Len()
	dist := make([]int, n)
	queue := make([]int, 0, n)
	for src := 0; src < n; src++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		dist = h.From(src, dist, queue)
		fn(src, dist)
	}

	return nil
}

// Distances returns the hop distance from startID to every vertex reachable
// from it, startID itself at 0.
func Distances(ctx context.Context, g *core.Graph, startID string) (map[string]int, error) {
	h, err := NewHops(g)
	if err != nil {
		return nil, fmt.Errorf("Distances: %w", err)
	}
	src, ok := h.index.Index(startID)
	if !ok {
		return nil, fmt.Errorf("Distances: %q: %w", startID, ErrStartVertexNotFound)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dist := h.From(src, nil, nil)
	out := make(map[string]int, len(dist))
	for v, d := range dist {
		if d != Unreachable {
			out[h.index.ID(v)] = d
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: netresil/removal
//
// removal.go - Error and Attack strategies.
//
// Determinism:
//   - Error: the sampled set depends only on (sorted vertex list, rng state).
//   - Attack: fully deterministic; degree descending, vertex ID ascending.
//
// Complexity: O(V log V + E) per call, dominated by the induced copy.

package removal

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/netresil/core"
)

// Strategy removes n vertices from a copy of g.
type Strategy func(g *core.Graph, n int, rng *rand.Rand) (*core.Graph, error)

const (
	// NameError is the registry name of Error.
	NameError = "error"
	// NameAttack is the registry name of Attack.
	NameAttack = "attack"
)

// Error returns a copy of g without n vertices chosen uniformly at random
// without replacement.
func Error(g *core.Graph, n int, rng *rand.Rand) (*core.Graph, error) {
	ids, err := checkCount("Error", g, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return g.WithoutVertices(nil)
	}
	if rng == nil {
		return nil, fmt.Errorf("Error: n=%d: %w", n, ErrNeedRandSource)
	}

	// Partial Fisher-Yates over the sorted IDs: the first n slots are the sample.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}

	return g.WithoutVertices(ids[:n])
}

// Attack returns a copy of g without its n highest-degree vertices.
// Degree is the total degree (in+out on directed graphs).
func Attack(g *core.Graph, n int, _ *rand.Rand) (*core.Graph, error) {
	ids, err := checkCount("Attack", g, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return g.WithoutVertices(nil)
	}

	return g.WithoutVertices(RankByDegree(g, ids)[:n])
}

// RankByDegree orders ids by degree in g, highest first, ties by ID.
// ids is sorted in place and returned.
func RankByDegree(g *core.Graph, ids []string) []string {
	deg := g.Degrees()
	sort.SliceStable(ids, func(i, j int) bool {
		di, dj := deg[ids[i]], deg[ids[j]]
		if di != dj {
			return di > dj
		}
		return ids[i] < ids[j]
	})

	return ids
}

// Lookup returns the strategy registered under name ("error" or "attack").
func Lookup(name string) (Strategy, error) {
	switch name {
	case NameError:
		return Error, nil
	case NameAttack:
		return Attack, nil
	}

	return nil, fmt.Errorf("Lookup: %q: %w", name, ErrUnknownStrategy)
}

// checkCount validates g and n and returns the sorted vertex list.
func checkCount(method string, g *core.Graph, n int) ([]string, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	ids := g.Vertices()
	if n < 0 || n > len(ids) {
		return nil, fmt.Errorf("%s: n=%d, |V|=%d: %w", method, n, len(ids), ErrRemovalOutOfRange)
	}

	return ids, nil
}

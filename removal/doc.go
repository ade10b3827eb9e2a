// Package removal implements the node-removal strategies used by tolerance
// sweeps.
//
// A Strategy takes a graph and a count n and returns a brand-new graph with n
// vertices removed. The input graph is never mutated:
//
//   - Error  removes n vertices sampled uniformly at random without replacement
//     (random failures).
//   - Attack removes the n vertices of highest total degree, ties broken by
//     ascending vertex ID (targeted attacks).
//
// Both strategies share the signature
//
//	func(g *core.Graph, n int, rng *rand.Rand) (*core.Graph, error)
//
// so any caller-defined removal rule can be plugged into the orchestrators in
// package tolerance. Randomness is explicit: Error draws only from rng, Attack
// ignores it.
package removal

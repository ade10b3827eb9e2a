// Package builder provides deterministic, functional-options graph
// constructors used to produce the networks that netresil stresses:
//
//   - Random models:
//     – RandomSparse(n, p):    Erdős–Rényi G(n,p) ("ER" networks).
//     – BarabasiAlbert(n, m):  preferential attachment ("SF" networks).
//   - Fixtures with known path lengths and degrees:
//     – Cycle, Path, Star, Complete.
//
// Every constructor is a Constructor closure applied by BuildGraph:
//
//	g, err := builder.BuildGraph(
//		nil,                                         // core.GraphOption
//		[]builder.BuilderOption{builder.WithSeed(102)}, // builder options
//		builder.BarabasiAlbert(100, 2),
//	)
//
// Configuration primitives:
//   - BuilderOption: a function that mutates builderConfig before use.
//   - WithSeed / WithRand: the *rand.Rand (math/rand/v2) behind every draw.
//   - WithIDScheme / WithSymbNumb / WithSymbolIDs: vertex-ID schemes.
//
// Errors (sentinels, wrapped with the constructor name):
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrUnsupportedGraphMode, ErrConstructFailed.
package builder

// Package network builds the graphs a robustness study runs on: synthetic
// Erdős–Rényi and scale-free (Barabási–Albert) graphs, and datasets loaded
// from an edge list.
package network

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netresil/builder"
	"github.com/katalvlaran/netresil/core"
	"github.com/katalvlaran/netresil/graphio"
)

// Kind names a network family.
type Kind string

const (
	KindER       Kind = "ER"       // Erdős–Rényi G(n, p)
	KindSF       Kind = "SF"       // Barabási–Albert with m = int(n·p/2)
	KindERSF     Kind = "ER_SF"    // both, for side-by-side comparison
	KindAirports Kind = "airports" // edge-list dataset
)

var (
	// ErrUnknownKind is returned for an unsupported Kind.
	ErrUnknownKind = errors.New("network: unknown network kind")

	// ErrMissingEdgeList is returned for KindAirports without a path.
	ErrMissingEdgeList = errors.New("network: edge list path is required")
)

// Kinds lists every supported kind.
func Kinds() []Kind { return []Kind{KindER, KindSF, KindERSF, KindAirports} }

// Spec describes which network(s) to build.
type Spec struct {
	Kind     Kind
	N        int
	P        float64
	Seed     uint64
	EdgeList string           // path for KindAirports
	ReadOpts []graphio.Option // reader options for KindAirports
}

// Named pairs a graph with the label it is reported under.
type Named struct {
	Name   string
	Graph  *core.Graph
	Report *graphio.Report // set for loaded datasets
}

// Generate builds one synthetic network of kind KindER or KindSF.
func Generate(kind Kind, n int, p float64, seed uint64) (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithSeed(seed)}
	switch kind {
	case KindER:
		g, err := builder.BuildGraph(nil, bopts, builder.RandomSparse(n, p))
		if err != nil {
			return nil, fmt.Errorf("Generate(%s): %w", kind, err)
		}
		return g, nil
	case KindSF:
		g, err := builder.BuildGraph(nil, bopts, builder.BarabasiAlbert(n, AttachmentEdges(n, p)))
		if err != nil {
			return nil, fmt.Errorf("Generate(%s): %w", kind, err)
		}
		return g, nil
	}

	return nil, fmt.Errorf("Generate: %q: %w", kind, ErrUnknownKind)
}

// AttachmentEdges is the BA parameter m matching an ER graph of mean degree
// n·p: int(n·p/2), at least 1.
func AttachmentEdges(n int, p float64) int {
	return max(1, int(float64(n)*p/2))
}

// Build resolves spec into one or two named graphs.
func Build(spec Spec) ([]Named, error) {
	switch spec.Kind {
	case KindER, KindSF:
		g, err := Generate(spec.Kind, spec.N, spec.P, spec.Seed)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		return []Named{{Name: string(spec.Kind), Graph: g}}, nil

	case KindERSF:
		out := make([]Named, 0, 2)
		for _, k := range []Kind{KindER, KindSF} {
			g, err := Generate(k, spec.N, spec.P, spec.Seed)
			if err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
			out = append(out, Named{Name: string(k), Graph: g})
		}
		return out, nil

	case KindAirports:
		if spec.EdgeList == "" {
			return nil, fmt.Errorf("Build: %w", ErrMissingEdgeList)
		}
		g, rep, err := graphio.Open(spec.EdgeList, spec.ReadOpts...)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		return []Named{{Name: string(KindAirports), Graph: g, Report: &rep}}, nil
	}

	return nil, fmt.Errorf("Build: %q: %w", spec.Kind, ErrUnknownKind)
}

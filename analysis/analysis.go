// Package analysis compares random failures with targeted attacks.
//
// Each function runs the same sweep twice, once under removal.Error and once
// under removal.Attack, and returns the curves side by side in a Result that
// the CLI renders as one table.
package analysis

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netresil/core"
	"github.com/katalvlaran/netresil/degree"
	"github.com/katalvlaran/netresil/property"
	"github.com/katalvlaran/netresil/removal"
	"github.com/katalvlaran/netresil/stats"
	"github.com/katalvlaran/netresil/tolerance"
)

// Curve is one metric measured along the schedule.
type Curve struct {
	Name   string // e.g. "diameter/error"
	Values []float64
}

// Result holds several curves sharing one schedule.
type Result struct {
	Title       string
	Frequencies []float64
	Counts      []int
	Curves      []Curve
}

// Curve returns the curve called name.
func (r Result) Curve(name string) (Curve, bool) {
	for _, c := range r.Curves {
		if c.Name == name {
			return c, true
		}
	}

	return Curve{}, false
}

var strategies = []string{removal.NameError, removal.NameAttack}

// Connectivity tracks the average shortest-path length (diameter).
func Connectivity(ctx context.Context, sim *tolerance.Simulation) (Result, error) {
	return structural(ctx, sim, "Diameter", property.NameDiameter)
}

// Fragmentation tracks S and ⟨s⟩.
func Fragmentation(ctx context.Context, sim *tolerance.Simulation) (Result, error) {
	return structural(ctx, sim, "S, <s>", property.NameLargestComponent, property.NameAverageComponent)
}

// AverageDegree tracks ⟨k⟩.
func AverageDegree(ctx context.Context, sim *tolerance.Simulation) (Result, error) {
	avg := func(_ context.Context, g *core.Graph) (float64, error) { return degree.Average(g) }
	return structuralFuncs(ctx, sim, "<k>", map[string]property.Func{"average_degree": avg}, []string{"average_degree"})
}

func structural(ctx context.Context, sim *tolerance.Simulation, title string, names ...string) (Result, error) {
	funcs := make(map[string]property.Func, len(names))
	for _, n := range names {
		f, err := property.Lookup(n)
		if err != nil {
			return Result{}, err
		}
		funcs[n] = f
	}

	return structuralFuncs(ctx, sim, title, funcs, names)
}

func structuralFuncs(ctx context.Context, sim *tolerance.Simulation, title string, funcs map[string]property.Func, order []string) (Result, error) {
	res := Result{Title: title}
	for _, name := range order {
		for _, sname := range strategies {
			strategy, err := removal.Lookup(sname)
			if err != nil {
				return Result{}, err
			}
			s, err := sim.PropertyVsRemovals(ctx, funcs[name], strategy)
			if err != nil {
				return Result{}, fmt.Errorf("%s under %s: %w", name, sname, err)
			}
			res.Frequencies, res.Counts = s.Frequencies, s.Counts
			res.Curves = append(res.Curves, Curve{Name: name + "/" + sname, Values: s.Values})
		}
	}

	return res, nil
}

// EpidemicFeature tracks one epidemic statistic.
func EpidemicFeature(ctx context.Context, sim *tolerance.EpidemicSimulation, feature stats.Feature, numSimulations int) (Result, error) {
	return EpidemicFeatures(ctx, sim, []stats.Feature{feature}, numSimulations)
}

// EpidemicFeatures tracks several statistics from a single pair of sweeps:
// each level's batches are simulated once and reduced by every feature.
func EpidemicFeatures(ctx context.Context, sim *tolerance.EpidemicSimulation, features []stats.Feature, numSimulations int) (Result, error) {
	res := Result{
		Title:       featureTitle(features),
		Frequencies: sim.Schedule().Frequencies(),
		Counts:      sim.Schedule().Counts(),
	}
	curves := make(map[string][]float64)

	for _, sname := range strategies {
		strategy, err := removal.Lookup(sname)
		if err != nil {
			return Result{}, err
		}
		batches, err := sim.Batches(ctx, strategy, numSimulations)
		if err != nil {
			return Result{}, fmt.Errorf("epidemic under %s: %w", sname, err)
		}
		for _, f := range features {
			vals := make([]float64, len(batches))
			for i, b := range batches {
				if vals[i], err = f.Stat.Evaluate(b.Infected, b.Recovered); err != nil {
					return Result{}, fmt.Errorf("%s under %s, level %d: %w", f.Name, sname, i, err)
				}
			}
			curves[f.Name+"/"+sname] = vals
		}
	}

	for _, f := range features {
		for _, sname := range strategies {
			name := f.Name + "/" + sname
			res.Curves = append(res.Curves, Curve{Name: name, Values: curves[name]})
		}
	}

	return res, nil
}

func featureTitle(features []stats.Feature) string {
	if len(features) == 1 {
		return features[0].Label
	}

	return "Epidemic features"
}

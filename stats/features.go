package stats

import "fmt"

// Feature is a named, labelled epidemic statistic.
type Feature struct {
	Name  string    // registry key, e.g. "peak"
	Label string    // human-readable axis label
	Stat  Statistic // reducer
}

// Feature names accepted by Lookup.
const (
	NamePeak          = "peak"
	NameTPeak         = "t_peak"
	NameDuration      = "duration"
	NameTotalInfected = "total_infected"
)

var features = []Feature{
	{Name: NamePeak, Label: "Infection peak", Stat: InfectionOnlyStat(Peak)},
	{Name: NameTPeak, Label: "t_peak", Stat: InfectionOnlyStat(TPeak)},
	{Name: NameDuration, Label: "Epidemic duration", Stat: InfectionOnlyStat(Duration)},
	{Name: NameTotalInfected, Label: "Fraction of total infected cases", Stat: InfectionRecoveryStat(TotalInfected)},
}

// Features returns every registered feature in a stable order.
func Features() []Feature {
	return append([]Feature(nil), features...)
}

// Lookup returns the feature registered under name.
func Lookup(name string) (Feature, error) {
	for _, f := range features {
		if f.Name == name {
			return f, nil
		}
	}

	return Feature{}, fmt.Errorf("Lookup: %q: %w", name, ErrUnknownFeature)
}

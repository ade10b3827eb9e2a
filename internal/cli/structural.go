package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netresil/analysis"
	"github.com/katalvlaran/netresil/tolerance"
)

// Structural features.
const (
	FeatureConnectivity  = "connectivity"
	FeatureFragmentation = "fragmentation"
	FeatureAverageDegree = "average_degree"
)

var structuralFeatures = map[string]func(context.Context, *tolerance.Simulation) (analysis.Result, error){
	FeatureConnectivity:  analysis.Connectivity,
	FeatureFragmentation: analysis.Fragmentation,
	FeatureAverageDegree: analysis.AverageDegree,
}

func newStructuralCmd(a *app) *cobra.Command {
	var feature string

	cmd := &cobra.Command{
		Use:   "structural",
		Short: "Track diameter or fragmentation under error and attack",
		Example: `  netresil structural --network ER_SF --feature connectivity
  netresil structural -n airports --edge-list routes.csv --feature fragmentation`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			analyse, ok := structuralFeatures[feature]
			if !ok {
				return fmt.Errorf("unknown structural feature %q (want %s, %s or %s)",
					feature, FeatureConnectivity, FeatureFragmentation, FeatureAverageDegree)
			}

			nets, err := a.networks()
			if err != nil {
				return err
			}
			sheets := make([]sheet, 0, len(nets))
			for _, n := range nets {
				sched, err := a.schedule(n)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				sim, err := tolerance.NewSimulation(n.Graph, sched, a.sweepOptions(n)...)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				res, err := analyse(cmd.Context(), sim)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				sheets = append(sheets, resultSheet(n.Name, res))
			}

			return a.emit(cmd, sheets)
		}),
	}
	cmd.Flags().StringVarP(&feature, "feature", "f", FeatureConnectivity, "connectivity, fragmentation or average_degree")

	return cmd
}

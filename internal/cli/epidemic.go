package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netresil/analysis"
	"github.com/katalvlaran/netresil/stats"
	"github.com/katalvlaran/netresil/tolerance"
)

func newEpidemicCmd(a *app) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "epidemic",
		Short: "Track SIR epidemic features under error and attack",
		Example: `  netresil epidemic --network SF --feature peak --num-sim 50
  netresil epidemic -n ER -f peak,total_infected --sim-seed 7`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("feature") {
				names = a.cfg.Epidemic.Features
			}
			features := make([]stats.Feature, 0, len(names))
			for _, name := range names {
				f, err := stats.Lookup(name)
				if err != nil {
					return err
				}
				features = append(features, f)
			}
			if len(features) == 0 {
				return errors.New("no epidemic feature selected")
			}

			params := a.cfg.SIRParams()
			a.logger.Info("epidemic parameters",
				"mu", params.Mu, "nu", params.Nu, "steps", params.Duration, "infected_t0", params.InfectedT0)

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
				esim, err := tolerance.NewEpidemicSimulation(n.Graph, sched, params, a.sweepOptions(n)...)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				res, err := analysis.EpidemicFeatures(cmd.Context(), esim, features, a.cfg.Epidemic.NumSimulations)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				sheets = append(sheets, resultSheet(n.Name, res))
			}

			return a.emit(cmd, sheets)
		}),
	}
	cmd.Flags().StringSliceVarP(&names, "feature", "f", nil, "peak, t_peak, duration and/or total_infected (default from config: all)")

	return cmd
}

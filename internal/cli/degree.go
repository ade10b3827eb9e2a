package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netresil/degree"
)

func newDegreeCmd(a *app) *cobra.Command {
	var skipFirst bool

	cmd := &cobra.Command{
		Use:   "degree",
		Short: "Print the degree distribution and its power-law fit",
		Args:  cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			nets, err := a.networks()
			if err != nil {
				return err
			}

			var sheets []sheet
			for _, n := range nets {
				ks, pdf, err := degree.Distribution(n.Graph)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				dist := sheet{
					Title:   n.Name + " network: degree distribution",
					Columns: []string{"k", "pdf"},
				}
				for i, k := range ks {
					dist.Rows = append(dist.Rows, []float64{float64(k), pdf[i]})
				}
				sheets = append(sheets, dist)

				avg, err := degree.Average(n.Graph)
				if err != nil {
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				fitK, fitPDF := ks, pdf
				if skipFirst && len(ks) > 0 {
					fitK, fitPDF = ks[1:], pdf[1:]
				}
				fit, err := degree.FitPowerLaw(fitK, fitPDF)
				switch {
				case errors.Is(err, degree.ErrTooFewPoints):
					a.logger.Warn("power-law fit skipped", "network", n.Name, "error", err)
					sheets = append(sheets, sheet{
						Title:   n.Name + " network: summary",
						Columns: []string{"average_degree"},
						Rows:    [][]float64{{avg}},
					})
					continue
				case err != nil:
					return fmt.Errorf("%s: %w", n.Name, err)
				}
				sheets = append(sheets, sheet{
					Title:   n.Name + " network: summary",
					Columns: []string{"average_degree", "alpha", "beta", "r_squared"},
					Rows:    [][]float64{{avg, fit.Alpha, fit.Beta, fit.RSquared}},
				})
			}

			return a.emit(cmd, sheets)
		}),
	}
	cmd.Flags().BoolVar(&skipFirst, "skip-first", false, "exclude the smallest degree from the fit")

	return cmd
}

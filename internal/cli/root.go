// Package cli provides the command-line interface for netresil.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netresil/internal/config"
	"github.com/katalvlaran/netresil/internal/metrics"
	"github.com/katalvlaran/netresil/network"
	"github.com/katalvlaran/netresil/schedule"
	"github.com/katalvlaran/netresil/tolerance"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	flags   overrides

	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Registry
	cleanup func() error
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "netresil",
		Short: "Error and attack tolerance of complex networks",
		Long: `netresil removes vertices from a network, at random (error) or by
descending degree (attack), and reports how its structure and an SIR epidemic
spreading on it respond to the growing removal fraction.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	a.flags.register(root)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML configuration file")

	root.AddCommand(newStructuralCmd(a))
	root.AddCommand(newEpidemicCmd(a))
	root.AddCommand(newDegreeCmd(a))

	return root
}

// Execute runs the command tree until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		var err error
		if cfg, err = config.Load(a.cfgFile); err != nil {
			return err
		}
	}
	a.flags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, cleanup := config.SetupLogger(cmd.ErrOrStderr(), cfg.Logging.File, config.ParseLogLevel(cfg.Logging.Level))
	a.logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	a.cleanup = cleanup
	a.metrics = metrics.NewRegistry()

	return nil
}

// runE wraps a subcommand so that teardown runs whether fn fails or not.
func (a *app) runE(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if terr := a.teardown(); terr != nil {
			return errors.Join(err, terr)
		}
		return err
	}
}

// teardown writes the metrics file and closes the log file. The log file is
// closed even when writing metrics fails.
func (a *app) teardown() error {
	var errs []error
	if a.cfg != nil && a.cfg.Metrics.Textfile != "" {
		if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
			errs = append(errs, fmt.Errorf("write metrics: %w", err))
		} else {
			a.logger.Debug("metrics written", "path", a.cfg.Metrics.Textfile)
		}
	}
	if a.cleanup != nil {
		if err := a.cleanup(); err != nil {
			errs = append(errs, fmt.Errorf("close log file: %w", err))
		}
		a.cleanup = nil
	}

	return errors.Join(errs...)
}

// networks builds the configured graphs and records their sizes.
func (a *app) networks() ([]network.Named, error) {
	nets, err := network.Build(a.cfg.NetworkSpec())
	if err != nil {
		return nil, err
	}
	for _, n := range nets {
		a.metrics.SetGraph(n.Name, n.Graph.VertexCount(), n.Graph.EdgeCount())
		attrs := []any{"network", n.Name, "nodes", n.Graph.VertexCount(), "edges", n.Graph.EdgeCount()}
		if n.Report != nil {
			attrs = append(attrs, "records", n.Report.Records, "missing", n.Report.Missing,
				"self_loops", n.Report.SelfLoops, "duplicates", n.Report.Duplicates)
		}
		a.logger.Info("network ready", attrs...)
	}

	return nets, nil
}

func (a *app) schedule(n network.Named) (schedule.Schedule, error) {
	return schedule.New(a.cfg.Sweep.MaxRemovalRate, a.cfg.Sweep.NumPoints, n.Graph.VertexCount())
}

// sweepOptions translates the configuration into tolerance options.
func (a *app) sweepOptions(n network.Named) []tolerance.Option {
	opts := []tolerance.Option{
		tolerance.WithLogger(a.logger.With("network", n.Name)),
		tolerance.WithRecorder(a.metrics),
	}
	if a.cfg.Random.SimulationSeed != nil {
		opts = append(opts, tolerance.WithSeed(*a.cfg.Random.SimulationSeed))
	}
	if a.cfg.Sweep.Workers > 0 {
		opts = append(opts, tolerance.WithWorkers(a.cfg.Sweep.Workers))
	}

	return opts
}

// emit renders sheets to the configured output path or to the command's stdout.
func (a *app) emit(cmd *cobra.Command, sheets []sheet) error {
	path := a.cfg.Output.Path
	if path == "" {
		return render(cmd.OutOrStdout(), a.cfg.Output.Format, sheets)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := render(f, a.cfg.Output.Format, sheets); err != nil {
		_ = f.Close()
		return err
	}
	a.logger.Info("results written", "path", path)

	return f.Close()
}

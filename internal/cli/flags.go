package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netresil/internal/config"
)

// overrides holds the global flags. Only flags set on the command line
// replace configuration values.
type overrides struct {
	network    string
	nodes      int
	prob       float64
	seed       uint64
	simSeed    uint64
	edgeList   string
	directed   bool
	comma      string
	fromColumn string
	toColumn   string

	maxRate   float64
	numPoints int
	workers   int

	mu       float64
	nu       float64
	steps    int
	infected int
	numSim   int

	format      string
	output      string
	logLevel    string
	logFile     string
	metricsFile string
}

func (o *overrides) register(cmd *cobra.Command) {
	d := config.Default()
	f := cmd.PersistentFlags()

	f.StringVarP(&o.network, "network", "n", d.Network.Kind, "network type: ER, SF, ER_SF or airports")
	f.IntVarP(&o.nodes, "nodes", "N", d.Network.N, "number of nodes of a synthetic network")
	f.Float64VarP(&o.prob, "prob", "p", d.Network.P, "ER connection probability, also sets the SF attachment count n*p/2")
	f.Uint64Var(&o.seed, "seed", d.Random.NetworkSeed, "seed of the network generator")
	f.Uint64Var(&o.simSeed, "sim-seed", 0, "seed of the removal and epidemic streams (random when unset)")
	f.StringVar(&o.edgeList, "edge-list", d.Network.EdgeList, "edge list file for the airports network")
	f.BoolVar(&o.directed, "directed", d.Network.Directed, "read the edge list as directed")
	f.StringVar(&o.comma, "comma", d.Network.Comma, "edge list field delimiter")
	f.StringVar(&o.fromColumn, "from-column", d.Network.FromColumn, "edge list header of the source column")
	f.StringVar(&o.toColumn, "to-column", d.Network.ToColumn, "edge list header of the target column")

	f.Float64Var(&o.maxRate, "max-rate", d.Sweep.MaxRemovalRate, "maximum fraction of removed nodes")
	f.IntVar(&o.numPoints, "num-points", d.Sweep.NumPoints, "number of removal levels")
	f.IntVar(&o.workers, "workers", d.Sweep.Workers, "parallel workers (0 = GOMAXPROCS)")

	f.Float64Var(&o.mu, "mu", d.Epidemic.Mu, "probability of disease transmission")
	f.Float64Var(&o.nu, "nu", d.Epidemic.Nu, "probability of recovery")
	f.IntVar(&o.steps, "steps", d.Epidemic.Duration, "number of epidemic steps")
	f.IntVar(&o.infected, "infected", d.Epidemic.InfectedT0, "initially infected nodes")
	f.IntVar(&o.numSim, "num-sim", d.Epidemic.NumSimulations, "epidemic runs per removal level")

	f.StringVar(&o.format, "format", d.Output.Format, "output format: auto, table, csv or json")
	f.StringVarP(&o.output, "output", "o", d.Output.Path, "write results to a file instead of stdout")
	f.StringVar(&o.logLevel, "log-level", d.Logging.Level, "log level: debug, info, warn or error")
	f.StringVar(&o.logFile, "log-file", d.Logging.File, "also write JSON logs to this file")
	f.StringVar(&o.metricsFile, "metrics-file", d.Metrics.Textfile, "write Prometheus metrics to this file on exit")
}

func (o *overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("network") {
		cfg.Network.Kind = o.network
	}
	if changed("nodes") {
		cfg.Network.N = o.nodes
	}
	if changed("prob") {
		cfg.Network.P = o.prob
	}
	if changed("seed") {
		cfg.Random.NetworkSeed = o.seed
	}
	if changed("sim-seed") {
		seed := o.simSeed
		cfg.Random.SimulationSeed = &seed
	}
	if changed("edge-list") {
		cfg.Network.EdgeList = o.edgeList
	}
	if changed("directed") {
		cfg.Network.Directed = o.directed
	}
	if changed("comma") {
		cfg.Network.Comma = o.comma
	}
	if changed("from-column") {
		cfg.Network.FromColumn = o.fromColumn
	}
	if changed("to-column") {
		cfg.Network.ToColumn = o.toColumn
	}

	if changed("max-rate") {
		cfg.Sweep.MaxRemovalRate = o.maxRate
	}
	if changed("num-points") {
		cfg.Sweep.NumPoints = o.numPoints
	}
	if changed("workers") {
		cfg.Sweep.Workers = o.workers
	}

	if changed("mu") {
		cfg.Epidemic.Mu = o.mu
	}
	if changed("nu") {
		cfg.Epidemic.Nu = o.nu
	}
	if changed("steps") {
		cfg.Epidemic.Duration = o.steps
	}
	if changed("infected") {
		cfg.Epidemic.InfectedT0 = o.infected
	}
	if changed("num-sim") {
		cfg.Epidemic.NumSimulations = o.numSim
	}

	if changed("format") {
		cfg.Output.Format = o.format
	}
	if changed("output") {
		cfg.Output.Path = o.output
	}
	if changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if changed("log-file") {
		cfg.Logging.File = o.logFile
	}
	if changed("metrics-file") {
		cfg.Metrics.Textfile = o.metricsFile
	}
}

// Package config loads and validates the netresil run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netresil/graphio"
	"github.com/katalvlaran/netresil/network"
	"github.com/katalvlaran/netresil/sir"
)

// validate is the shared validator instance.
var validate = validator.New()

// Column names of the OpenFlights routes dataset.
const (
	AirportsFromColumn = "Source airport ID"
	AirportsToColumn   = "Destination airport ID"
)

// Config is the full run configuration.
type Config struct {
	Network  NetworkConfig  `yaml:"network"`
	Random   RandomConfig   `yaml:"random"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Epidemic EpidemicConfig `yaml:"epidemic"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// NetworkConfig selects the graph under study.
type NetworkConfig struct {
	Kind       string  `yaml:"kind" validate:"oneof=ER SF ER_SF airports"`
	N          int     `yaml:"n" validate:"min=1"`
	P          float64 `yaml:"p" validate:"gte=0,lte=1"`
	EdgeList   string  `yaml:"edge_list" validate:"required_if=Kind airports"`
	Directed   bool    `yaml:"directed"`
	Comma      string  `yaml:"comma" validate:"omitempty,len=1"`
	FromColumn string  `yaml:"from_column"`
	ToColumn   string  `yaml:"to_column"`
	NAValue    string  `yaml:"na_value"`
	Snappy     bool    `yaml:"snappy"`
}

// RandomConfig holds the seeds. A nil SimulationSeed draws a fresh seed per
// sweep.
type RandomConfig struct {
	NetworkSeed    uint64  `yaml:"network_seed"`
	SimulationSeed *uint64 `yaml:"simulation_seed"`
}

// SweepConfig shapes the removal schedule.
type SweepConfig struct {
	MaxRemovalRate float64 `yaml:"max_removal_rate" validate:"gt=0,lte=1"`
	NumPoints      int     `yaml:"num_points" validate:"min=1"`
	Workers        int     `yaml:"workers" validate:"min=0"` // 0 = GOMAXPROCS
}

type EpidemicConfig struct {
	Mu             float64  `yaml:"mu" validate:"gte=0,lte=1"`
	Nu             float64  `yaml:"nu" validate:"gte=0,lte=1"`
	Duration       int      `yaml:"duration" validate:"min=1"`
	InfectedT0     int      `yaml:"infected_t0" validate:"min=0"`
	NumSimulations int      `yaml:"num_simulations" validate:"min=1"`
	Features       []string `yaml:"features" validate:"dive,oneof=peak t_peak duration total_infected"`
}

type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=auto table csv json"`
	Path   string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	File  string `yaml:"file"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Network: NetworkConfig{
			Kind: string(network.KindER),
			N:    100,
			P:    0.04,
		},
		Random: RandomConfig{NetworkSeed: 102},
		Sweep: SweepConfig{
			MaxRemovalRate: 0.5,
			NumPoints:      15,
		},
		Epidemic: EpidemicConfig{
			Mu:             0.2,
			Nu:             0.05,
			Duration:       50,
			InfectedT0:     1,
			NumSimulations: 100,
			Features:       []string{"peak", "t_peak", "duration", "total_infected"},
		},
		Output:  OutputConfig{Format: "auto"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// NetworkSpec converts the network section into a network.Spec.
func (c *Config) NetworkSpec() network.Spec {
	return network.Spec{
		Kind:     network.Kind(c.Network.Kind),
		N:        c.Network.N,
		P:        c.Network.P,
		Seed:     c.Random.NetworkSeed,
		EdgeList: c.Network.EdgeList,
		ReadOpts: c.ReadOptions(),
	}
}

// ReadOptions returns the edge-list reader options. The airports kind
// defaults to the OpenFlights routes layout.
func (c *Config) ReadOptions() []graphio.Option {
	n := c.Network
	comma, from, to := n.Comma, n.FromColumn, n.ToColumn
	if n.Kind == string(network.KindAirports) {
		if comma == "" {
			comma = ","
		}
		if from == "" && to == "" {
			from, to = AirportsFromColumn, AirportsToColumn
		}
	}

	opts := []graphio.Option{graphio.WithDirected(n.Directed)}
	if comma != "" {
		r, _ := utf8.DecodeRuneInString(comma)
		opts = append(opts, graphio.WithComma(r))
	}
	if from != "" || to != "" {
		opts = append(opts, graphio.WithHeaderColumns(from, to))
	}
	if n.NAValue != "" {
		opts = append(opts, graphio.WithNAValue(n.NAValue))
	}
	if n.Snappy {
		opts = append(opts, graphio.WithSnappy())
	}

	return opts
}

// SIRParams converts the epidemic section into sir.Params.
func (c *Config) SIRParams() sir.Params {
	return sir.Params{
		Mu:         c.Epidemic.Mu,
		Nu:         c.Epidemic.Nu,
		Duration:   c.Epidemic.Duration,
		InfectedT0: c.Epidemic.InfectedT0,
	}
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	e := validationErrs[0]
	field, param := e.Namespace(), e.Param()
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s: field is required", field)
	case "min", "gte":
		return fmt.Errorf("%s: must be at least %s", field, param)
	case "lte":
		return fmt.Errorf("%s: must not exceed %s", field, param)
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", field, param)
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s]", field, param)
	case "len":
		return fmt.Errorf("%s: must have length %s", field, param)
	default:
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}

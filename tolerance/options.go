package tolerance

import (
	"log/slog"
	"math/rand/v2"
	"runtime"
	"time"
)

// Recorder receives sweep telemetry. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// LevelEvaluated is called once per removal level.
	LevelEvaluated(kind string, elapsed time.Duration)
	// RunCompleted is called once per SIR run.
	RunCompleted(elapsed time.Duration)
	// SweepCompleted is called after a sweep returns successfully.
	SweepCompleted(kind string, levels int)
}

// Sweep kinds reported to Recorder and logs.
const (
	KindStructural = "structural"
	KindEpidemic   = "epidemic"
)

type nopRecorder struct{}

func (nopRecorder) LevelEvaluated(string, time.Duration) {}
func (nopRecorder) RunCompleted(time.Duration)           {}
func (nopRecorder) SweepCompleted(string, int)           {}

// Option customizes an orchestrator.
type Option func(*config)

type config struct {
	seed     uint64
	seeded   bool
	workers  int
	logger   *slog.Logger
	recorder Recorder
}

func newConfig(opts ...Option) config {
	c := config{
		workers:  runtime.GOMAXPROCS(0),
		logger:   slog.New(slog.DiscardHandler),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// sweepSeed returns the configured seed, or a fresh one per sweep.
func (c config) sweepSeed() uint64 {
	if c.seeded {
		return c.seed
	}

	return rand.Uint64()
}

// WithSeed fixes the seed all per-level and per-run streams derive from.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWorkers bounds the number of concurrently evaluated tasks.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("tolerance: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tolerance: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRecorder sets the telemetry sink. Panics on nil.
func WithRecorder(r Recorder) Option {
	if r == nil {
		panic("tolerance: WithRecorder(nil)")
	}
	return func(c *config) {
		c.recorder = r
	}
}

// streamRand returns the PCG stream for (level, run). The removal at a level
// uses run = -1.
func streamRand(seed uint64, level, run int) *rand.Rand {
	stream := uint64(level)<<32 | uint64(uint32(run+1))
	return rand.New(rand.NewPCG(seed, stream))
}

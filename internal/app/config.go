package app

import (
	"flag"
	"fmt"
	"time"

	"torlife/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rule        string
	Rows        int
	Cols        int
	Interval    int // milliseconds
	Likelihood  float64
	Fluctuation float64
	Seed        int64
	Scale       int
	Generations int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rule:        core.DefaultRule,
		Rows:        40,
		Cols:        40,
		Interval:    250,
		Likelihood:  0.25,
		Fluctuation: 0,
		Seed:        42,
		Scale:       8,
		Generations: 200,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "step rule to run")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Interval, "interval", c.Interval, "tick interval in milliseconds")
	fs.Float64Var(&c.Likelihood, "likelihood", c.Likelihood, "initial alive probability per cell")
	fs.Float64Var(&c.Fluctuation, "fluctuation", c.Fluctuation, "per-cell probability of inverting a computed outcome")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial generation")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to run in the headless build")
}

// Controller builds a stopped simulation controller from the configuration.
func (c *Config) Controller(observer core.Observer) (*core.Controller, error) {
	step, ok := core.Rules()[c.Rule]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", c.Rule)
	}
	if c.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %d", c.Interval)
	}
	initial, err := core.RandomGeneration(c.Rows, c.Cols, c.Likelihood, core.NewRNG(c.Seed).Source())
	if err != nil {
		return nil, err
	}
	return core.NewController(core.Options{
		Initial:     initial,
		Interval:    time.Duration(c.Interval) * time.Millisecond,
		Rule:        step,
		Fluctuation: c.Fluctuation,
		Likelihood:  c.Likelihood,
		Seed:        c.Seed,
		Observer:    observer,
	})
}

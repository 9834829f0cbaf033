package app

import (
	"flag"
	"strconv"

	"conway/pkg/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Workers int
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "conway",
		Scale:   20,
		TPS:     10,
		Seed:    0,
		Width:   30,
		Height:  15,
		Workers: life.DefaultWorkers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 uses the clock)")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row slices computed in parallel")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a centred preset instead of a random board")
}

// SimConfig returns the factory map handed to the sim registry.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"workers": strconv.Itoa(c.Workers),
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}

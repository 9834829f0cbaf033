package driver

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"conway/pkg/life"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the headless runner.
type Config struct {
	Width   int
	Height  int
	Workers int
	// Steps is the number of generations to run; zero runs until the
	// context is cancelled.
	Steps int
	// Seed makes the initial random board reproducible; zero seeds from
	// the clock.
	Seed int64
	// Pattern replaces the random board with a named preset stamped at
	// (Row, Col).
	Pattern  string
	Row      int
	Col      int
	Interval time.Duration
	Print    bool
	Listen   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   30,
		Height:  15,
		Workers: life.DefaultWorkers,
		Steps:   100,
		Print:   true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row slices computed in parallel")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run (0 runs until interrupted)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board (0 uses the clock)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "start from a preset: "+strings.Join(life.Patterns(), ", "))
	fs.IntVar(&c.Row, "row", c.Row, "row offset of the preset")
	fs.IntVar(&c.Col, "col", c.Col, "column offset of the preset")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.BoolVar(&c.Print, "print", c.Print, "print every generation")
	fs.StringVar(&c.Listen, "listen", c.Listen, "serve /ws frames and /stats on this address")
}

// Validate reports the first unusable field.
func (c *Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Workers < 1:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	case c.Steps < 0:
		return fmt.Errorf("%w: %d steps", ErrInvalidConfig, c.Steps)
	case c.Row < 0 || c.Col < 0:
		return fmt.Errorf("%w: offset (%d,%d)", ErrInvalidConfig, c.Row, c.Col)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval %v", ErrInvalidConfig, c.Interval)
	}
	if c.Pattern != "" {
		if _, ok := life.LookupPattern(c.Pattern); !ok {
			return fmt.Errorf("%w: %q", life.ErrUnknownPattern, c.Pattern)
		}
		if c.Row >= c.Height || c.Col >= c.Width {
			return fmt.Errorf("%w: offset (%d,%d) outside %dx%d board", ErrInvalidConfig, c.Row, c.Col, c.Width, c.Height)
		}
	}
	return nil
}

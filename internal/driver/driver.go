// Package driver runs a board headlessly: seed it, step it, and report each
// generation.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"conway/internal/logger"
	"conway/internal/metrics"
	"conway/pkg/life"
)

// Observer is told about every generation, including the initial board as
// generation zero. The grid must not be retained or modified.
type Observer interface {
	Observe(gen int, g *life.Grid)
}

// RunOption configures Run.
type RunOption func(*runner)

// WithObserver adds an observer.
func WithObserver(o Observer) RunOption {
	return func(r *runner) { r.observers = append(r.observers, o) }
}

// WithMetrics records step timings into c.
func WithMetrics(c *metrics.Collector) RunOption {
	return func(r *runner) { r.metrics = c }
}

// WithLogger logs each generation to l.
func WithLogger(l *logger.Logger) RunOption {
	return func(r *runner) { r.logger = l }
}

type runner struct {
	cfg       Config
	out       io.Writer
	observers []Observer
	metrics   *metrics.Collector
	logger    *logger.Logger
}

// Run builds the board described by cfg and advances it cfg.Steps
// generations. Cancellation is checked between generations; a cancelled
// run returns the context's error.
func Run(ctx context.Context, cfg Config, out io.Writer, opts ...RunOption) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := &runner{cfg: cfg, out: out}
	for _, opt := range opts {
		opt(r)
	}

	g := Seed(cfg)
	engine := life.NewEngine(life.WithWorkers(cfg.Workers))
	if err := r.emit(0, g); err != nil {
		return err
	}

	var tick <-chan time.Time
	if cfg.Interval > 0 {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for gen := 1; cfg.Steps == 0 || gen <= cfg.Steps; gen++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		engine.Step(g)
		if r.metrics != nil {
			r.metrics.RecordStep(time.Since(start), g.Population())
		}
		if err := r.emit(gen, g); err != nil {
			return err
		}
	}
	return nil
}

// Seed returns the initial board for cfg: the preset stamped at its
// offset when one is named, otherwise a random board.
func Seed(cfg Config) *life.Grid {
	g := life.New(cfg.Width, cfg.Height)
	if p, ok := life.LookupPattern(cfg.Pattern); ok {
		g.Stamp(p, cfg.Row, cfg.Col)
		return g
	}
	if cfg.Seed != 0 {
		g.RandomizeSeeded(cfg.Seed)
	} else {
		g.Randomize()
	}
	return g
}

func (r *runner) emit(gen int, g *life.Grid) error {
	if r.cfg.Print {
		if _, err := fmt.Fprintf(r.out, "generation %d population %d\n%s", gen, g.Population(), g); err != nil {
			return fmt.Errorf("write generation %d: %w", gen, err)
		}
	}
	if r.logger != nil {
		r.logger.Generation(gen, g.Population())
	}
	for _, o := range r.observers {
		o.Observe(gen, g)
	}
	return nil
}

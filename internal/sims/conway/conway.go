// Package conway adapts the bounded Life engine to the core.Sim contract
// used by the front-ends.
package conway

import (
	"fmt"
	"strconv"

	"conway/internal/core"
	"conway/pkg/life"
)

// Sim drives a life.Grid with a life.Engine and mirrors it into a flat
// display buffer.
type Sim struct {
	cfg        Config
	grid       *life.Grid
	engine     *life.Engine
	display    []uint8
	generation int
}

// New returns a Sim with the provided dimensions using defaults.
func New(w, h int) *Sim {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Sim configured from cfg. The board starts dead.
func NewWithConfig(cfg Config) *Sim {
	s := &Sim{
		cfg:    cfg,
		grid:   life.New(cfg.Width, cfg.Height),
		engine: life.NewEngine(life.WithWorkers(cfg.Workers)),
	}
	s.display = make([]uint8, s.grid.Width()*s.grid.Height())
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "conway" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.Width(), H: s.grid.Height()} }

// Cells exposes the display buffer, one byte per cell, 1 for alive.
func (s *Sim) Cells() []uint8 { return s.display }

// Grid exposes the live board.
func (s *Sim) Grid() *life.Grid { return s.grid }

// Generation returns the number of steps since the last Reset.
func (s *Sim) Generation() int { return s.generation }

// Reset rebuilds the board. With a configured pattern the pattern is
// centred on an empty board; otherwise the board is randomized, from the
// seed when it is non-zero and from the clock when it is zero.
func (s *Sim) Reset(seed int64) {
	s.generation = 0
	if p, ok := life.LookupPattern(s.cfg.Pattern); ok {
		s.grid.Clear()
		row := max((s.grid.Height()-p.Height())/2, 0)
		col := max((s.grid.Width()-p.Width())/2, 0)
		s.grid.Stamp(p, row, col)
	} else if seed != 0 {
		s.grid.RandomizeSeeded(seed)
	} else {
		s.grid.Randomize()
	}
	s.refresh()
}

// Step advances the board one generation.
func (s *Sim) Step() {
	s.engine.Step(s.grid)
	s.generation++
	s.refresh()
}

// Clear kills every cell.
func (s *Sim) Clear() {
	s.grid.Clear()
	s.refresh()
}

// Stamp overlays the named pattern with its top-left corner at (row, col).
func (s *Sim) Stamp(name string, row, col int) error {
	p, ok := life.LookupPattern(name)
	if !ok {
		return fmt.Errorf("%w: %q", life.ErrUnknownPattern, name)
	}
	s.grid.Stamp(p, row, col)
	s.refresh()
	return nil
}

// Toggle flips a single cell. Coordinates off the board are ignored since
// they come straight from the pointer.
func (s *Sim) Toggle(row, col int) {
	if !s.grid.InBounds(row, col) {
		return
	}
	s.grid.SetCell(row, col, !s.grid.Cell(row, col))
	s.refresh()
}

func (s *Sim) refresh() {
	w := s.grid.Width()
	for r := 0; r < s.grid.Height(); r++ {
		for c := 0; c < w; c++ {
			var v uint8
			if s.grid.Cell(r, c) {
				v = 1
			}
			s.display[r*w+c] = v
		}
	}
}

// Parameters describes the current board for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	pattern := s.cfg.Pattern
	if pattern == "" {
		pattern = "random"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.Width()),
				intParam("h", "Height", s.grid.Height()),
				intParam("workers", "Workers", s.engine.Workers()),
				{Key: "pattern", Label: "Seed", Type: core.ParamTypeString, Value: pattern},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.grid.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func init() {
	core.Register("conway", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

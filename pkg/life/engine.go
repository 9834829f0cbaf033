package life

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the worker count used when none is configured.
const DefaultWorkers = 6

// Engine advances grids one generation at a time, splitting the rows
// across a fixed number of goroutines.
type Engine struct {
	workers int
	locked  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of row slices computed in parallel. Values
// below one are raised to one.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = max(n, 1) }
}

// WithLockedBuffer makes workers write into one mutex-guarded buffer instead
// of owning disjoint rows. It exists for comparison and is slower.
func WithLockedBuffer() Option {
	return func(e *Engine) { e.locked = true }
}

// NewEngine returns an Engine with DefaultWorkers unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the configured worker count.
func (e *Engine) Workers() int { return e.workers }

var defaultEngine = NewEngine()

// Step advances the grid one generation using the default engine.
func (g *Grid) Step() { defaultEngine.Step(g) }

// Step replaces g with its next generation. The new state is computed from
// an unchanged snapshot and installed in a single assignment once every
// worker has finished. Grids with no rows or no columns are left alone.
func (e *Engine) Step(g *Grid) {
	height, width := g.Height(), g.Width()
	if height == 0 || width == 0 {
		return
	}
	workers := min(e.workers, height)
	next := makeCells(width, height)

	if e.locked {
		e.stepLocked(g, next, workers)
	} else {
		var eg errgroup.Group
		for i := 0; i < workers; i++ {
			start, end := sliceBounds(i, workers, height)
			out := next[start:end]
			eg.Go(func() error {
				computeRows(g, out, start)
				return nil
			})
		}
		// Workers never fail; Wait is only the join point.
		_ = eg.Wait()
	}

	g.cells = next
}

// StepN advances the grid n generations.
func (e *Engine) StepN(g *Grid, n int) {
	for i := 0; i < n; i++ {
		e.Step(g)
	}
}

// sliceBounds returns the half-open row range owned by worker i. For
// workers <= height every range is non-empty and the ranges tile
// [0, height) in ascending order.
func sliceBounds(i, workers, height int) (int, int) {
	return i * height / workers, (i + 1) * height / workers
}

// computeRows fills out, whose first row is grid row start.
func computeRows(g *Grid, out [][]bool, start int) {
	for i, row := range out {
		r := start + i
		for c := range row {
			row[c] = NextState(g.cells[r][c], CountAliveNeighbors(g, r, c))
		}
	}
}

func (e *Engine) stepLocked(g *Grid, next [][]bool, workers int) {
	var (
		mu sync.Mutex
		eg errgroup.Group
	)
	height, width := g.Height(), g.Width()
	for i := 0; i < workers; i++ {
		start, end := sliceBounds(i, workers, height)
		eg.Go(func() error {
			for r := start; r < end; r++ {
				for c := 0; c < width; c++ {
					alive := NextState(g.cells[r][c], CountAliveNeighbors(g, r, c))
					mu.Lock()
					next[r][c] = alive
					mu.Unlock()
				}
			}
			return nil
		})
	}
	// Workers never fail; Wait is only the join point.
	_ = eg.Wait()
}

// CountAliveNeighbors counts the live cells around (row, col) without
// wrapping at the edges.
func CountAliveNeighbors(g *Grid, row, col int) int {
	g.mustInBounds(row, col)
	rowEnd := min(row+1, g.Height()-1)
	colEnd := min(col+1, g.Width()-1)
	n := 0
	for r := max(row-1, 0); r <= rowEnd; r++ {
		for c := max(col-1, 0); c <= colEnd; c++ {
			if g.cells[r][c] {
				n++
			}
		}
	}
	if g.cells[row][col] {
		n--
	}
	return n
}

// NextState applies Conway's rule to a cell with n live neighbors.
func NextState(alive bool, n int) bool {
	if alive {
		return n == 2 || n == 3
	}
	return n == 3
}

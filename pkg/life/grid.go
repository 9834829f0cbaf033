// Package life implements Conway's Game of Life on a bounded grid. Cells on
// the border see only the neighbors that exist; edges never wrap.
package life

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"conway/pkg/core"
)

// ErrOutOfBounds is matched by every *OutOfBoundsError.
var ErrOutOfBounds = errors.New("cell out of bounds")

// OutOfBoundsError describes an access outside the grid.
type OutOfBoundsError struct {
	Row, Col      int
	Height, Width int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of bounds for %dx%d grid", e.Row, e.Col, e.Height, e.Width)
}

// Is reports whether target is ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// Grid stores one generation of cells in row-major order.
type Grid struct {
	cells [][]bool
}

// New returns a width x height grid with every cell dead. Negative
// dimensions are treated as zero.
func New(width, height int) *Grid {
	return &Grid{cells: makeCells(max(width, 0), max(height, 0))}
}

// FromRows builds a grid from a literal matrix. The rows are copied. It
// panics if the rows have different lengths.
func FromRows(rows [][]bool) *Grid {
	if len(rows) == 0 {
		return &Grid{}
	}
	width := len(rows[0])
	cells := makeCells(width, len(rows))
	for r, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("life: row %d has %d cells, want %d", r, len(row), width))
		}
		copy(cells[r], row)
	}
	return &Grid{cells: cells}
}

func makeCells(width, height int) [][]bool {
	// One backing array keeps rows contiguous.
	backing := make([]bool, width*height)
	cells := make([][]bool, height)
	for r := range cells {
		cells[r] = backing[r*width : (r+1)*width : (r+1)*width]
	}
	return cells
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.cells) }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height() && col >= 0 && col < g.Width()
}

func (g *Grid) mustInBounds(row, col int) {
	if !g.InBounds(row, col) {
		panic(&OutOfBoundsError{Row: row, Col: col, Height: g.Height(), Width: g.Width()})
	}
}

// Cell reports whether the cell at (row, col) is alive. It panics with an
// *OutOfBoundsError when the coordinates fall outside the grid.
func (g *Grid) Cell(row, col int) bool {
	g.mustInBounds(row, col)
	return g.cells[row][col]
}

// Lookup is the checked form of Cell.
func (g *Grid) Lookup(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, &OutOfBoundsError{Row: row, Col: col, Height: g.Height(), Width: g.Width()}
	}
	return g.cells[row][col], nil
}

// SetCell overwrites the cell at (row, col). Out of range coordinates panic
// like Cell.
func (g *Grid) SetCell(row, col int, alive bool) {
	g.mustInBounds(row, col)
	g.cells[row][col] = alive
}

// Randomize sets each cell alive with probability one half using a
// time-seeded source.
func (g *Grid) Randomize() {
	g.RandomizeWith(core.NewTimeRNG().Source())
}

// RandomizeWith is Randomize driven by the provided source, so seeded
// sources give reproducible boards.
func (g *Grid) RandomizeWith(r *rand.Rand) {
	core.FillBool(r, g.cells)
}

// RandomizeSeeded is RandomizeWith a PCG source seeded with seed.
func (g *Grid) RandomizeSeeded(seed int64) {
	g.RandomizeWith(core.NewRNG(seed).Source())
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for _, row := range g.cells {
		clear(row)
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// WithOffset returns a new grid, rowOffset rows taller and colOffset columns
// wider, holding the receiver's cells shifted to start at
// (rowOffset, colOffset). Every other cell is dead.
func (g *Grid) WithOffset(rowOffset, colOffset int) *Grid {
	rowOffset, colOffset = max(rowOffset, 0), max(colOffset, 0)
	out := New(g.Width()+colOffset, g.Height()+rowOffset)
	for r, row := range g.cells {
		copy(out.cells[r+rowOffset][colOffset:], row)
	}
	return out
}

// Merge ORs other onto the receiver over the region both grids cover.
// Cells outside that overlap keep their state.
func (g *Grid) Merge(other *Grid) {
	if other == nil {
		return
	}
	h := min(g.Height(), other.Height())
	w := min(g.Width(), other.Width())
	for r := 0; r < h; r++ {
		dst, src := g.cells[r], other.cells[r]
		for c := 0; c < w; c++ {
			dst[c] = dst[c] || src[c]
		}
	}
}

// Stamp overlays p with its top-left corner at (row, col). Parts of the
// pattern that fall past the grid edge are dropped before the pattern is
// offset, so the overlay never exceeds the grid's own size.
func (g *Grid) Stamp(p Pattern, row, col int) {
	row, col = max(row, 0), max(col, 0)
	if row >= g.Height() || col >= g.Width() {
		return
	}
	h := min(p.Height(), g.Height()-row)
	w := min(p.Width(), g.Width()-col)
	clipped := make([][]bool, h)
	for r := range clipped {
		clipped[r] = p.rows[r][:w]
	}
	g.Merge(FromRows(clipped).WithOffset(row, col))
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	return FromRows(g.cells)
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil {
		return false
	}
	if g.Height() != o.Height() || g.Width() != o.Width() {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != o.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the cell matrix.
func (g *Grid) Rows() [][]bool {
	return g.Clone().cells
}

// String renders live cells as 'O' and dead cells as ' ', one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Height() * (g.Width() + 1))
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				b.WriteByte('O')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

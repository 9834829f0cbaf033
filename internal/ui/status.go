// Package ui draws the status band and the pattern placement preview on
// top of the board.
package ui

import (
	"fmt"
	"strings"

	"conway/internal/core"
	"conway/pkg/life"
)

// HUDHeight is the height in pixels of the status band under the board.
const HUDHeight = 20

// StatusLine summarises the sim for the status band.
func StatusLine(sim core.Sim, pattern string, paused bool) string {
	var parts []string
	if p, ok := sim.(core.ParameterProvider); ok {
		for _, group := range p.Parameters().Groups {
			for _, param := range group.Params {
				if param.Key == "generation" || param.Key == "population" {
					parts = append(parts, fmt.Sprintf("%s %s", strings.ToLower(param.Label), param.Value))
				}
			}
		}
	}
	parts = append(parts, "stamp "+pattern)
	if paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, " | ")
}

// PreviewCells returns the board cells the named pattern would set if its
// top-left corner were placed at (row, col) on a w x h board. It uses the
// same offset-then-overlap rule as stamping.
func PreviewCells(name string, row, col, w, h int) [][2]int {
	p, ok := life.LookupPattern(name)
	if !ok {
		return nil
	}
	placed := p.Grid().WithOffset(row, col)
	var cells [][2]int
	for r := row; r < min(placed.Height(), h); r++ {
		for c := col; c < min(placed.Width(), w); c++ {
			if placed.Cell(r, c) {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

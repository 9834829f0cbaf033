package life

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownPattern is returned when a preset name is not registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is an immutable named seed shape.
type Pattern struct {
	Name string
	rows [][]bool
}

// Grid returns a fresh grid holding the pattern.
func (p Pattern) Grid() *Grid { return FromRows(p.rows) }

// Width returns the pattern's column count.
func (p Pattern) Width() int {
	if len(p.rows) == 0 {
		return 0
	}
	return len(p.rows[0])
}

// Height returns the pattern's row count.
func (p Pattern) Height() int { return len(p.rows) }

// parsePattern reads a picture where 'O' marks a live cell and '.' a dead one.
func parsePattern(name string, picture ...string) Pattern {
	rows := make([][]bool, len(picture))
	for r, line := range picture {
		rows[r] = make([]bool, len(line))
		for c, ch := range line {
			rows[r][c] = ch == 'O'
		}
	}
	return Pattern{Name: name, rows: rows}
}

var (
	gliderSouthEast = parsePattern("glider",
		".O.",
		"..O",
		"OOO",
	)
	acorn = parsePattern("acorn",
		".O.....",
		"...O...",
		"OO..OOO",
	)
)

var patterns = map[string]Pattern{
	"glider": gliderSouthEast,
	"acorn":  acorn,
	"blinker": parsePattern("blinker",
		"OOO",
	),
	"block": parsePattern("block",
		"OO",
		"OO",
	),
	"beehive": parsePattern("beehive",
		".OO.",
		"O..O",
		".OO.",
	),
	"toad": parsePattern("toad",
		".OOO",
		"OOO.",
	),
	"lwss": parsePattern("lwss",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	),
}

// GliderSouthEast returns the 3x3 glider travelling towards the bottom right.
func GliderSouthEast() Pattern { return gliderSouthEast }

// Acorn returns the 3x7 acorn methuselah.
func Acorn() Pattern { return acorn }

// LookupPattern returns the preset registered under name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[strings.ToLower(name)]
	return p, ok
}

// Patterns lists the registered preset names in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FromPattern returns a grid sized to the named preset.
func FromPattern(name string) (*Grid, error) {
	p, ok := LookupPattern(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p.Grid(), nil
}

package life

import (
	"errors"
	"slices"
	"testing"
)

func matrix(rows ...[]int) *Grid {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		cells[r] = make([]bool, len(row))
		for c, v := range row {
			cells[r][c] = v == 1
		}
	}
	return FromRows(cells)
}

func TestGliderLiteral(t *testing.T) {
	want := matrix(
		[]int{0, 1, 0},
		[]int{0, 0, 1},
		[]int{1, 1, 1},
	)
	if got := GliderSouthEast().Grid(); !got.Equal(want) {
		t.Fatalf("glider =\n%q", got.String())
	}
}

func TestAcornLiteral(t *testing.T) {
	want := matrix(
		[]int{0, 1, 0, 0, 0, 0, 0},
		[]int{0, 0, 0, 1, 0, 0, 0},
		[]int{1, 1, 0, 0, 1, 1, 1},
	)
	got := Acorn().Grid()
	if got.Width() != 7 || got.Height() != 3 || !got.Equal(want) {
		t.Fatalf("acorn =\n%q", got.String())
	}
}

func TestPatternGridIsACopy(t *testing.T) {
	g := GliderSouthEast().Grid()
	g.Clear()
	if GliderSouthEast().Grid().Population() != 5 {
		t.Fatal("mutating a pattern grid changed the preset")
	}
}

func TestFromPattern(t *testing.T) {
	g, err := FromPattern("Acorn")
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 7 {
		t.Fatalf("acorn population = %d, want 7", g.Population())
	}

	_, err = FromPattern("gosper")
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("FromPattern(gosper) err = %v, want ErrUnknownPattern", err)
	}
}

func TestPatternsSorted(t *testing.T) {
	names := Patterns()
	if !slices.IsSorted(names) {
		t.Fatalf("Patterns() not sorted: %v", names)
	}
	for _, want := range []string{"acorn", "glider"} {
		if !slices.Contains(names, want) {
			t.Fatalf("Patterns() missing %q", want)
		}
	}
	for _, name := range names {
		p, ok := LookupPattern(name)
		if !ok || p.Name != name {
			t.Fatalf("LookupPattern(%q) = %v, %v", name, p.Name, ok)
		}
	}
}

func TestStillLifesAreStable(t *testing.T) {
	for _, name := range []string{"block", "beehive"} {
		p, _ := LookupPattern(name)
		g := New(p.Width()+2, p.Height()+2)
		g.Stamp(p, 1, 1)
		before := g.Clone()
		g.Step()
		if !g.Equal(before) {
			t.Fatalf("%s changed after one step:\n%q", name, g.String())
		}
	}
}

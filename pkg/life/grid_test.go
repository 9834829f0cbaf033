package life

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestNewIsDead(t *testing.T) {
	g := New(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.Width(), g.Height())
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if g.Cell(r, c) {
				t.Fatalf("cell (%d,%d) alive in new grid", r, c)
			}
		}
	}
}

func TestEmptyGrid(t *testing.T) {
	g := New(0, 0)
	if g.Width() != 0 || g.Height() != 0 {
		t.Fatalf("size = %dx%d, want 0x0", g.Width(), g.Height())
	}
	g.Clear()
	g.Randomize()
	g.Step()
	if got := g.String(); got != "" {
		t.Fatalf("String() = %q, want empty", got)
	}
}

func TestCellOutOfBoundsPanics(t *testing.T) {
	g := New(3, 2)
	cases := []struct {
		name     string
		row, col int
	}{
		{"row past end", 2, 0},
		{"col past end", 0, 3},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				v := recover()
				err, ok := v.(error)
				if !ok || !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("recovered %v, want ErrOutOfBounds", v)
				}
			}()
			g.Cell(tc.row, tc.col)
		})
	}
}

func TestSetCellOutOfBoundsPanics(t *testing.T) {
	g := New(1, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("SetCell past the edge did not panic")
		}
	}()
	g.SetCell(1, 0, true)
}

func TestLookup(t *testing.T) {
	g := New(2, 2)
	g.SetCell(1, 1, true)
	if alive, err := g.Lookup(1, 1); err != nil || !alive {
		t.Fatalf("Lookup(1,1) = %v, %v", alive, err)
	}
	_, err := g.Lookup(2, 0)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) || oob.Row != 2 || oob.Height != 2 {
		t.Fatalf("Lookup(2,0) err = %v", err)
	}
}

func TestClearIdempotent(t *testing.T) {
	g := New(10, 7)
	g.RandomizeWith(rand.New(rand.NewPCG(1, 2)))
	g.Clear()
	once := g.Clone()
	g.Clear()
	if !g.Equal(once) {
		t.Fatal("second Clear changed the grid")
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.Cell(r, c) {
				t.Fatalf("cell (%d,%d) alive after Clear", r, c)
			}
		}
	}
}

func TestRandomizeDistribution(t *testing.T) {
	const trials = 20
	g := New(100, 100)
	total := 0
	for i := 0; i < trials; i++ {
		g.Randomize()
		total += g.Population()
	}
	frac := float64(total) / float64(trials*100*100)
	if math.Abs(frac-0.5) > 0.02 {
		t.Fatalf("alive fraction %.4f not within 0.02 of 0.5", frac)
	}
}

func TestRandomizeWithSeedIsDeterministic(t *testing.T) {
	a, b := New(16, 9), New(16, 9)
	a.RandomizeWith(rand.New(rand.NewPCG(42, 0)))
	b.RandomizeWith(rand.New(rand.NewPCG(42, 0)))
	if !a.Equal(b) {
		t.Fatal("same seed produced different grids")
	}
	b.RandomizeWith(rand.New(rand.NewPCG(43, 0)))
	if a.Equal(b) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestWithOffset(t *testing.T) {
	p := New(2, 1)
	p.SetCell(0, 0, true)

	got := p.WithOffset(1, 1)
	want := FromRows([][]bool{
		{false, false, false},
		{false, true, false},
	})
	if !got.Equal(want) {
		t.Fatalf("WithOffset(1,1) =\n%q\nwant\n%q", got.String(), want.String())
	}
	if p.Width() != 2 || p.Height() != 1 || !p.Cell(0, 0) {
		t.Fatal("WithOffset modified the receiver")
	}
}

func TestMergeORsOverlap(t *testing.T) {
	live := New(4, 4)
	live.SetCell(0, 0, true)
	live.SetCell(3, 3, true)
	before := live.Clone()

	p := New(2, 1)
	p.SetCell(0, 0, true)
	live.Merge(p.WithOffset(1, 1))

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := before.Cell(r, c) || (r == 1 && c == 1)
			if live.Cell(r, c) != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", r, c, live.Cell(r, c), want)
			}
		}
	}
	if live.Population() != before.Population()+1 {
		t.Fatalf("population %d, want %d", live.Population(), before.Population()+1)
	}
}

func TestMergeIgnoresCellsOutsideOverlap(t *testing.T) {
	small := New(2, 2)
	big := New(5, 5)
	big.SetCell(4, 4, true)
	big.SetCell(0, 1, true)
	small.Merge(big)
	if !small.Cell(0, 1) || small.Population() != 1 {
		t.Fatalf("merge result\n%q", small.String())
	}
	if small.Width() != 2 || small.Height() != 2 {
		t.Fatal("merge resized the receiver")
	}
}

func TestStampClipsAtEdge(t *testing.T) {
	g := New(4, 4)
	g.Stamp(GliderSouthEast(), 2, 2)
	// Only the top-left 2x2 of the glider lands on the board.
	want := FromRows([][]bool{
		{false, false, false, false},
		{false, false, false, false},
		{false, false, false, true},
		{false, false, false, false},
	})
	if !g.Equal(want) {
		t.Fatalf("stamped grid\n%q", g.String())
	}
}

func TestStampPastEdgeIsNoop(t *testing.T) {
	g := New(10, 10)
	allocs := testing.AllocsPerRun(10, func() {
		g.Stamp(GliderSouthEast(), 5000, 5000)
		g.Stamp(GliderSouthEast(), 0, 10)
		g.Stamp(GliderSouthEast(), 10, 0)
	})
	if g.Population() != 0 {
		t.Fatalf("population = %d, want 0", g.Population())
	}
	if allocs != 0 {
		t.Fatalf("Stamp past the edge allocated %v times per run", allocs)
	}
}

func TestEqualNil(t *testing.T) {
	if New(1, 1).Equal(nil) {
		t.Fatal("Equal(nil) = true")
	}
	if New(0, 0).Equal(nil) {
		t.Fatal("empty Equal(nil) = true")
	}
}

func TestString(t *testing.T) {
	g := FromRows([][]bool{
		{true, false},
		{false, true},
	})
	if got, want := g.String(), "O \n O\n"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFromRowsCopies(t *testing.T) {
	rows := [][]bool{{true, false}}
	g := FromRows(rows)
	rows[0][0] = false
	if !g.Cell(0, 0) {
		t.Fatal("FromRows aliases its input")
	}
	out := g.Rows()
	out[0][1] = true
	if g.Cell(0, 1) {
		t.Fatal("Rows aliases the grid")
	}
	if !slices.Equal(g.Rows()[0], []bool{true, false}) {
		t.Fatalf("Rows() = %v", g.Rows())
	}
}

func TestFromRowsRaggedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ragged rows did not panic")
		}
	}()
	FromRows([][]bool{{true}, {true, false}})
}

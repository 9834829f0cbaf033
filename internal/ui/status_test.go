package ui

import (
	"slices"
	"testing"

	"conway/internal/sims/conway"
)

func TestPreviewCellsClipsToBoard(t *testing.T) {
	got := PreviewCells("glider", 2, 2, 4, 4)
	if want := [][2]int{{2, 3}}; !slices.Equal(got, want) {
		t.Fatalf("PreviewCells = %v, want %v", got, want)
	}
	if n := len(PreviewCells("glider", 0, 0, 10, 10)); n != 5 {
		t.Fatalf("full glider preview has %d cells", n)
	}
	if PreviewCells("unknown", 0, 0, 10, 10) != nil {
		t.Fatal("unknown pattern produced a preview")
	}
}

func TestStatusLine(t *testing.T) {
	sim := conway.New(5, 5)
	sim.Clear()
	sim.Toggle(1, 1)
	got := StatusLine(sim, "acorn", true)
	if want := "generation 0 | population 1 | stamp acorn | paused"; got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

var previewColor = color.RGBA{R: 64, G: 164, B: 223, A: 128}

// Overlay shows where the selected pattern would land under the cursor.
type Overlay struct {
	scale   int
	pixel   *ebiten.Image
	cells   [][2]int
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update recomputes the preview for the pattern anchored at (row, col).
func (o *Overlay) Update(pattern string, row, col int, board core.Size, onBoard bool) {
	o.visible = onBoard
	if !onBoard {
		return
	}
	o.cells = PreviewCells(pattern, row, col, board.W, board.H)
}

// Draw renders the preview onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	for _, cell := range o.cells {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		op.GeoM.Translate(float64(cell[1]*o.scale), float64(cell[0]*o.scale))
		op.ColorScale.ScaleWithColor(previewColor)
		screen.DrawImage(o.pixel, op)
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"conway/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudPadding = 6

// HUD renders the status band below the board.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and band width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 1)}
	h.panel = ebiten.NewImage(h.width, HUDHeight)
	return h
}

// Draw paints the band with its top edge at y.
func (h *HUD) Draw(screen *ebiten.Image, y int, pattern string, paused bool) {
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, StatusLine(h.sim, pattern, paused), face, hudPadding, HUDHeight-hudPadding, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(h.panel, op)
}

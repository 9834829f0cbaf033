//go:build ebiten

package app

import (
	"image/color"
	"time"

	"conway/internal/core"
	"conway/internal/render"
	"conway/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type stamper interface {
	Stamp(name string, row, col int) error
}

type editor interface {
	Toggle(row, col int)
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	pattern  string
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(sim, size.W*scale),
		onColor:  color.Black,
		offColor: color.White,
		scale:    scale,
		seed:     seed,
		pattern:  "glider",
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// cellAt maps the cursor to a board cell.
func (g *Game) cellAt() (row, col int, ok bool) {
	x, y := ebiten.CursorPosition()
	size := g.sim.Size()
	row, col = y/g.scale, x/g.scale
	if x < 0 || y < 0 || row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.pattern = "glider"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.pattern = "acorn"
	}

	if ed, ok := g.sim.(editor); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			ed.Clear()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			if row, col, ok := g.cellAt(); ok {
				ed.Toggle(row, col)
			}
		}
	}
	row, col, onBoard := g.cellAt()
	if st, ok := g.sim.(stamper); ok && onBoard && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		// Unknown names are impossible here; the selection is fixed above.
		_ = st.Stamp(g.pattern, row, col)
	}
	g.overlay.Update(g.pattern, row, col, g.sim.Size(), onBoard)

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.H*g.scale, g.pattern, g.paused)
}

// Layout returns the logical screen size: the board plus the status band.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.HUDHeight
}

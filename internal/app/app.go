//go:build ebiten

package app

import (
	"image/color"
	"sync/atomic"
	"time"

	"torlife/internal/core"
	"torlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a simulation controller to the ebiten.Game interface. It holds
// no simulation logic: the controller's own timer advances the grid, and the
// view pulls cell values whenever the controller reports a changed region.
type Game struct {
	ctrl    *core.Controller
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale int
	seed  int64

	dirty atomic.Bool
	cells []core.Cell
}

// New constructs a Game view over the provided controller.
func New(ctrl *core.Controller, scale int, seed int64) *Game {
	g := &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(ctrl.Rows(), ctrl.Cols()),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	g.dirty.Store(true)
	return g
}

// CellsChanged is the controller's observer hook. It only marks the view
// dirty; cell values are pulled on the next frame.
func (g *Game) CellsChanged(core.CellsChanged) {
	g.dirty.Store(true)
}

// Update handles keyboard input and refreshes the cached cell snapshot.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.Running() {
			g.ctrl.Stop()
		} else {
			g.ctrl.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.ctrl.StepOnce(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset(g.seed)
		g.dirty.Store(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctrl.Reset(time.Now().UnixNano())
		g.dirty.Store(true)
	}

	if g.dirty.Swap(false) || g.cells == nil {
		g.cells = g.ctrl.Snapshot()
	}
	return nil
}

// Draw renders the cached generation snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctrl.Cols() * g.scale, g.ctrl.Rows() * g.scale
}

// Package game hosts the wave field in an ebiten window: it owns the clock,
// follows window resizes, draws every frame and routes input to exports and
// the palette.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/grid-wave/internal/export"
	"github.com/iburimskiy/grid-wave/internal/logger"
	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

const pausedHint = "Paused - Space to resume"

// Options are the host-level switches.
type Options struct {
	ShowControls bool
	ShowFPS      bool
}

// Exporter writes the frame at a tick somewhere.
type Exporter interface {
	Export(tick int) (export.Result, error)
}

// Game implements ebiten.Game.
type Game struct {
	engine   *wave.Engine
	palette  *palette.Palette
	picker   palette.Picker
	raster   *RasterRenderer
	vector   Exporter
	snapshot Exporter
	controls *controls
	opts     Options

	clock Clock

	// window size last reported through Layout
	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	paused  bool
	status  string
	lastErr error
}

// New wires a game around engine. The palette is shared with the exporters
// and read on every pass.
func New(engine *wave.Engine, pal *palette.Palette, swatches []palette.Color, vector, snapshot Exporter, opts Options) *Game {
	g := &Game{
		engine:   engine,
		palette:  pal,
		picker:   pal,
		raster:   NewRasterRenderer(engine, pal),
		vector:   vector,
		snapshot: snapshot,
		controls: newControls(swatches),
		opts:     opts,
		clock:    &FrameClock{},
		prevKey:  map[ebiten.Key]bool{},
	}
	grid := engine.Grid()
	g.width, g.height = int(grid.Viewport.Width), int(grid.Viewport.Height)
	return g
}

// Tick returns the current animation tick.
func (g *Game) Tick() int { return g.clock.CurrentTick() }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.opts.ShowControls {
		mouseX, mouseY := ebiten.CursorPosition()
		ev := g.controls.update(pointer{
			X:            mouseX,
			Y:            mouseY,
			JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
			JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		})
		switch ev.action {
		case actionExportSVG:
			g.runExport("svg", g.vector)
		case actionSelectColor:
			g.selectColor(ev.kind, ev.color)
		}
	}

	if justPressed(ebiten.KeyE) {
		g.runExport("svg", g.vector)
	}
	if justPressed(ebiten.KeyP) {
		g.runExport("png", g.snapshot)
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Exports above used the tick of the frame on screen; only now move on.
	if !g.paused {
		g.clock.Advance()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.raster.Draw(screen, g.clock.CurrentTick())

	if g.opts.ShowControls {
		g.controls.draw(screen, g.palette)
	}

	status := g.statusLine()
	if g.opts.ShowFPS {
		grid := g.engine.Grid()
		status = fmt.Sprintf("FPS: %.1f  TPS: %.1f\nTick: %d  Grid: %dx%d  Preset: %s\n%s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.clock.CurrentTick(),
			grid.Cols, grid.Rows, g.engine.Config().Name, status)
	}
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, 12, g.height-16*countLines(status)-8)
	}
}

// statusLine joins the pause hint with the last export outcome.
func (g *Game) statusLine() string {
	msg := g.status
	if g.lastErr != nil {
		msg = "Error: " + g.lastErr.Error()
	}
	if !g.paused {
		return msg
	}
	if msg == "" {
		return pausedHint
	}
	return pausedHint + "\n" + msg
}

// Layout follows the window size and recomputes the grid when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	changed, err := g.engine.Resize(wave.Viewport{Width: float64(width), Height: float64(height)})
	if err != nil {
		g.lastErr = err
		logger.Warn("grid resize rejected, keeping previous layout",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Error(err))
		return
	}
	if changed {
		grid := g.engine.Grid()
		logger.Debug("grid recomputed",
			zap.Int("width", width),
			zap.Int("height", height),
			zap.Int("cols", grid.Cols),
			zap.Int("rows", grid.Rows),
			zap.Float64("spacing", grid.Spacing))
	}
}

func (g *Game) selectColor(kind palette.Kind, c palette.Color) {
	g.picker.OnColorSelected(kind, c)
	logger.Info("palette changed", zap.Stringer("kind", kind), zap.String("color", c.Hex()))
}

// runExport exports the frame currently on screen. Failures are shown in the
// status line and never stop the animation.
func (g *Game) runExport(format string, x Exporter) {
	if x == nil {
		return
	}
	tick := g.clock.CurrentTick()
	res, err := x.Export(tick)
	if err != nil {
		g.lastErr = err
		logger.Error("export failed", zap.String("format", format), zap.Error(err))
		return
	}
	g.lastErr = nil
	if res.Path == "" {
		logger.Info("export cancelled", zap.String("format", format))
		return
	}
	g.status = "Saved " + res.Path
	logger.Info("exported",
		zap.String("format", format),
		zap.String("path", res.Path),
		zap.Int("glyphs", res.Glyphs),
		zap.Int("tick", tick))
}

func countLines(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

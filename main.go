// Package main is the entry point for grid-wave, an animated grid of plus
// glyphs driven by a wave field.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/grid-wave/internal/config"
	"github.com/iburimskiy/grid-wave/internal/export"
	"github.com/iburimskiy/grid-wave/internal/game"
	"github.com/iburimskiy/grid-wave/internal/logger"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote config to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Grid Wave ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := newGame(cfg)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("game closed normally", zap.Int("tick", g.Tick()))
}

func newGame(cfg *config.Config) (*game.Game, error) {
	waveCfg, err := cfg.WaveConfig()
	if err != nil {
		return nil, err
	}
	pal, swatches, err := cfg.BuildPalette()
	if err != nil {
		return nil, err
	}

	vp := wave.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	engine, err := wave.NewEngine(waveCfg, cfg.Grid.Spacing, vp)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	grid := engine.Grid()
	logger.Info("wave field ready",
		zap.String("preset", waveCfg.Name),
		zap.Int("cols", grid.Cols),
		zap.Int("rows", grid.Rows),
		zap.Float64("spacing", grid.Spacing))

	saver := export.NewSaver(cfg.Export.Dir, cfg.Export.Dialog)
	vector := export.NewVectorExporter(engine, pal, saver, cfg.Export.SVGName)
	snapshot := export.NewSnapshotExporter(engine, pal, saver, cfg.Export.PNGName)

	return game.New(engine, pal, swatches, vector, snapshot, game.Options{
		ShowControls: cfg.UI.ShowControls,
		ShowFPS:      cfg.UI.ShowFPS,
	}), nil
}

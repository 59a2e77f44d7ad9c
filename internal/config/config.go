// Package config handles loading and validating grid-wave settings.
package config

import (
	"fmt"

	"github.com/iburimskiy/grid-wave/internal/export"
	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Grid Wave - E: export SVG, P: export PNG, Space: pause, Esc/Q: quit"
	DefaultTPS   = 60

	DefaultSpacing = 30
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Grid    GridConfig    `yaml:"grid"`
	Wave    WaveConfig    `yaml:"wave"`
	Palette PaletteConfig `yaml:"palette"`
	Export  ExportConfig  `yaml:"export"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	TPS       int    `yaml:"tps"`
}

// GridConfig holds grid layout settings.
type GridConfig struct {
	Spacing float64 `yaml:"spacing"`
}

// WaveConfig selects a preset and optionally overrides single fields of it.
type WaveConfig struct {
	Preset    string `yaml:"preset"`
	Overrides `yaml:",inline"`
}

// Overrides replace preset fields when set.
type Overrides struct {
	PhaseModel      *string  `yaml:"phase_model,omitempty"`
	Addressing      *string  `yaml:"addressing,omitempty"`
	Reference       *string  `yaml:"reference,omitempty"`
	FitSpacing      *bool    `yaml:"fit_spacing,omitempty"`
	CrestSizeFactor *bool    `yaml:"crest_size_factor,omitempty"`
	Amplitude       *float64 `yaml:"amplitude,omitempty"`
	RippleDensity   *float64 `yaml:"ripple_density,omitempty"`
	Frequency       *float64 `yaml:"frequency,omitempty"`
	Speed           *float64 `yaml:"speed,omitempty"`
	CenterSpeed     *float64 `yaml:"center_speed,omitempty"`
	CenterSwing     *float64 `yaml:"center_swing,omitempty"`
	NoiseAmount     *float64 `yaml:"noise_amount,omitempty"`
	NoiseSeed       *int64   `yaml:"noise_seed,omitempty"`
	ShimmerSpeed    *float64 `yaml:"shimmer_speed,omitempty"`
	MinSize         *float64 `yaml:"min_size,omitempty"`
	MaxSize         *float64 `yaml:"max_size,omitempty"`
	MinOpacity      *float64 `yaml:"min_opacity,omitempty"`
	MaxOpacity      *float64 `yaml:"max_opacity,omitempty"`
	DistanceRange   *float64 `yaml:"distance_range,omitempty"`
}

// PaletteConfig holds the starting colors and the swatch menu entries.
type PaletteConfig struct {
	Background string   `yaml:"background"`
	Glyph      string   `yaml:"glyph"`
	Swatches   []string `yaml:"swatches"`
}

// ExportConfig holds export destinations.
type ExportConfig struct {
	Dir     string `yaml:"dir"`
	Dialog  bool   `yaml:"dialog"`
	SVGName string `yaml:"svg_name"`
	PNGName string `yaml:"png_name"`
}

// UIConfig holds on-screen chrome settings.
type UIConfig struct {
	ShowControls bool `yaml:"show_controls"`
	ShowFPS      bool `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     WindowWidth,
			Height:    WindowHeight,
			Title:     WindowTitle,
			Resizable: true,
			TPS:       DefaultTPS,
		},
		Grid: GridConfig{
			Spacing: DefaultSpacing,
		},
		Wave: WaveConfig{
			Preset: wave.DefaultPreset,
		},
		Palette: PaletteConfig{
			Background: palette.DefaultBackground,
			Glyph:      palette.DefaultGlyph,
			Swatches:   append([]string(nil), palette.DefaultSwatches...),
		},
		Export: ExportConfig{
			Dir:     ".",
			Dialog:  true,
			SVGName: export.SVGName,
			PNGName: export.PNGName,
		},
		UI: UIConfig{
			ShowControls: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// WaveConfig resolves the preset and applies the overrides.
func (c *Config) WaveConfig() (wave.Config, error) {
	wc, err := wave.PresetByName(c.Wave.Preset)
	if err != nil {
		return wave.Config{}, err
	}
	c.Wave.Overrides.apply(&wc)
	if err := wc.Validate(); err != nil {
		return wave.Config{}, err
	}
	return wc, nil
}

func (o Overrides) apply(wc *wave.Config) {
	if o.PhaseModel != nil {
		wc.PhaseModel = wave.PhaseModel(*o.PhaseModel)
	}
	if o.Addressing != nil {
		wc.Addressing = wave.Addressing(*o.Addressing)
	}
	if o.Reference != nil {
		wc.Reference = wave.Reference(*o.Reference)
	}
	setBool(&wc.FitSpacing, o.FitSpacing)
	setBool(&wc.CrestSizeFactor, o.CrestSizeFactor)
	setFloat(&wc.Amplitude, o.Amplitude)
	setFloat(&wc.RippleDensity, o.RippleDensity)
	setFloat(&wc.Frequency, o.Frequency)
	setFloat(&wc.Speed, o.Speed)
	setFloat(&wc.CenterSpeed, o.CenterSpeed)
	setFloat(&wc.CenterSwing, o.CenterSwing)
	setFloat(&wc.NoiseAmount, o.NoiseAmount)
	if o.NoiseSeed != nil {
		wc.NoiseSeed = *o.NoiseSeed
	}
	setFloat(&wc.ShimmerSpeed, o.ShimmerSpeed)
	setFloat(&wc.MinSize, o.MinSize)
	setFloat(&wc.MaxSize, o.MaxSize)
	setFloat(&wc.MinOpacity, o.MinOpacity)
	setFloat(&wc.MaxOpacity, o.MaxOpacity)
	setFloat(&wc.DistanceRange, o.DistanceRange)
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// BuildPalette parses the configured colors.
func (c *Config) BuildPalette() (*palette.Palette, []palette.Color, error) {
	bg, err := palette.ParseHex(c.Palette.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("palette background: %w", err)
	}
	glyph, err := palette.ParseHex(c.Palette.Glyph)
	if err != nil {
		return nil, nil, fmt.Errorf("palette glyph: %w", err)
	}
	swatches, err := palette.ParseSwatches(c.Palette.Swatches)
	if err != nil {
		return nil, nil, fmt.Errorf("palette: %w", err)
	}
	return palette.New(bg, glyph), swatches, nil
}

// Validate rejects settings that cannot be rendered.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps %d must be positive", c.Window.TPS)
	}
	wc, err := c.WaveConfig()
	if err != nil {
		return fmt.Errorf("wave: %w", err)
	}
	vp := wave.Viewport{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
	if _, err := wave.ComputeGrid(vp, c.Grid.Spacing, wc.FitSpacing, wc.Addressing); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	if _, _, err := c.BuildPalette(); err != nil {
		return err
	}
	return nil
}

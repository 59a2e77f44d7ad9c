package wave

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidSpacing is returned for a grid spacing that is not a positive
	// finite number.
	ErrInvalidSpacing = errors.New("grid spacing must be positive")
	// ErrUnknownPreset is returned by PresetByName for names not in Presets.
	ErrUnknownPreset = errors.New("unknown wave preset")
	// ErrInvalidConfig wraps every other rejected Config value.
	ErrInvalidConfig = errors.New("invalid wave config")
)

// PhaseModel selects how the wave phase of a cell is derived.
type PhaseModel string

const (
	// MultiDirectional derives a phase from both axes plus a slow positional
	// warp, displaces glyphs vertically and scales them with the crest.
	MultiDirectional PhaseModel = "multi-directional"
	// CenterLineOnly has no spatial phase; shimmer runs off tick and cell.
	CenterLineOnly PhaseModel = "centerline"
)

// Reference selects the line glyph size peaks around.
type Reference string

const (
	// ReferenceCenterLine uses the perturbed center-line sample.
	ReferenceCenterLine Reference = "centerline"
	// ReferenceMidline uses the fixed vertical middle of the viewport.
	ReferenceMidline Reference = "midline"
)

// MaxOpacity is the top of the opacity scale (8-bit alpha).
const MaxOpacity = 255

// Config holds every tunable of the wave engine. Presets are value sets of
// this type; nothing here changes while a preset is in use.
type Config struct {
	Name string `yaml:"name"`

	PhaseModel      PhaseModel `yaml:"phase_model"`
	Addressing      Addressing `yaml:"addressing"`
	Reference       Reference  `yaml:"reference"`
	FitSpacing      bool       `yaml:"fit_spacing"`
	CrestSizeFactor bool       `yaml:"crest_size_factor"`

	// Multi-directional wave.
	Amplitude     float64 `yaml:"amplitude"`
	RippleDensity float64 `yaml:"ripple_density"`
	Frequency     float64 `yaml:"frequency"`
	Speed         float64 `yaml:"speed"`

	// Center line.
	CenterSpeed float64 `yaml:"center_speed"`
	CenterSwing float64 `yaml:"center_swing"`
	NoiseAmount float64 `yaml:"noise_amount"`
	NoiseSeed   int64   `yaml:"noise_seed"`

	ShimmerSpeed float64 `yaml:"shimmer_speed"`

	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	MinOpacity float64 `yaml:"min_opacity"`
	MaxOpacity float64 `yaml:"max_opacity"`

	// DistanceRange is the fraction of the viewport height over which size
	// falls from MaxSize to MinSize.
	DistanceRange float64 `yaml:"distance_range"`
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch c.PhaseModel {
	case MultiDirectional, CenterLineOnly:
	default:
		return fmt.Errorf("%w: phase model %q", ErrInvalidConfig, c.PhaseModel)
	}
	switch c.Addressing {
	case Centered, Cornered:
	default:
		return fmt.Errorf("%w: addressing %q", ErrInvalidConfig, c.Addressing)
	}
	switch c.Reference {
	case ReferenceCenterLine, ReferenceMidline:
	default:
		return fmt.Errorf("%w: reference %q", ErrInvalidConfig, c.Reference)
	}

	for _, f := range []struct {
		name string
		v    float64
	}{
		{"amplitude", c.Amplitude},
		{"ripple_density", c.RippleDensity},
		{"frequency", c.Frequency},
		{"speed", c.Speed},
		{"center_speed", c.CenterSpeed},
		{"center_swing", c.CenterSwing},
		{"noise_amount", c.NoiseAmount},
		{"shimmer_speed", c.ShimmerSpeed},
		{"min_size", c.MinSize},
		{"max_size", c.MaxSize},
		{"min_opacity", c.MinOpacity},
		{"max_opacity", c.MaxOpacity},
		{"distance_range", c.DistanceRange},
	} {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, f.name)
		}
	}

	if c.MinSize < 0 || c.MinSize > c.MaxSize {
		return fmt.Errorf("%w: size range [%v, %v]", ErrInvalidConfig, c.MinSize, c.MaxSize)
	}
	if c.MinOpacity < 0 || c.MinOpacity > c.MaxOpacity || c.MaxOpacity > MaxOpacity {
		return fmt.Errorf("%w: opacity range [%v, %v]", ErrInvalidConfig, c.MinOpacity, c.MaxOpacity)
	}
	if c.DistanceRange <= 0 {
		return fmt.Errorf("%w: distance_range must be positive", ErrInvalidConfig)
	}
	return nil
}

// Presets are the three historical parameter sets. They share one
// algorithm and differ only in values and feature switches.
var Presets = map[string]Config{
	"drift": {
		Name:          "drift",
		PhaseModel:    CenterLineOnly,
		Addressing:    Cornered,
		Reference:     ReferenceCenterLine,
		CenterSpeed:   0.5,
		CenterSwing:   250,
		NoiseAmount:   60,
		NoiseSeed:     1,
		MinSize:       7,
		MaxSize:       29,
		MinOpacity:    255,
		MaxOpacity:    255,
		DistanceRange: 1,
	},
	"shimmer": {
		Name:          "shimmer",
		PhaseModel:    CenterLineOnly,
		Addressing:    Centered,
		Reference:     ReferenceCenterLine,
		CenterSpeed:   0.3,
		CenterSwing:   250,
		NoiseAmount:   5,
		NoiseSeed:     1,
		ShimmerSpeed:  0.05,
		MinSize:       7,
		MaxSize:       29,
		MinOpacity:    200,
		MaxOpacity:    255,
		DistanceRange: 1,
	},
	"ripple": {
		Name:            "ripple",
		PhaseModel:      MultiDirectional,
		Addressing:      Centered,
		Reference:       ReferenceCenterLine,
		FitSpacing:      true,
		CrestSizeFactor: true,
		Amplitude:       4,
		RippleDensity:   0.000015,
		Frequency:       500,
		Speed:           0.03,
		CenterSpeed:     0,
		CenterSwing:     250,
		NoiseAmount:     5,
		NoiseSeed:       1,
		MinSize:         7,
		MaxSize:         29,
		MinOpacity:      200,
		MaxOpacity:      255,
		DistanceRange:   1,
	},
}

// DefaultPreset names the preset used when none is configured.
const DefaultPreset = "ripple"

// PresetByName returns a copy of the named preset.
func PresetByName(name string) (Config, error) {
	c, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	return c, nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

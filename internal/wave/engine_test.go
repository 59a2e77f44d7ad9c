package wave

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range PresetNames() {
		cfg, err := PresetByName(name)
		if err != nil {
			t.Fatalf("PresetByName(%q): %v", name, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q: %v", name, err)
		}
		if cfg.Name != name {
			t.Errorf("preset %q carries name %q", name, cfg.Name)
		}
	}

	if _, err := PresetByName("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"phase model", func(c *Config) { c.PhaseModel = "spiral" }},
		{"addressing", func(c *Config) { c.Addressing = "" }},
		{"reference", func(c *Config) { c.Reference = "baseline" }},
		{"size order", func(c *Config) { c.MinSize, c.MaxSize = 30, 7 }},
		{"negative size", func(c *Config) { c.MinSize = -1 }},
		{"opacity above scale", func(c *Config) { c.MaxOpacity = 300 }},
		{"opacity order", func(c *Config) { c.MinOpacity = 250; c.MaxOpacity = 100 }},
		{"distance range", func(c *Config) { c.DistanceRange = 0 }},
		{"non-finite speed", func(c *Config) { c.Speed = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := PresetByName("ripple")
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateReportsFirstNonFiniteField(t *testing.T) {
	cfg, _ := PresetByName("ripple")
	cfg.Amplitude = math.NaN()
	cfg.Speed = math.Inf(1)
	cfg.DistanceRange = math.Inf(-1)

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "amplitude") {
			t.Fatalf("run %d: expected the amplitude error, got %v", i, err)
		}
	}
}

func TestNewEngineRejectsBadSpacing(t *testing.T) {
	cfg, _ := PresetByName("ripple")
	for _, spacing := range []float64{0, 1e-300} {
		e, err := NewEngine(cfg, spacing, Viewport{900, 600})
		if !errors.Is(err, ErrInvalidSpacing) {
			t.Errorf("spacing %v: expected ErrInvalidSpacing, got %v", spacing, err)
		}
		if e != nil {
			t.Errorf("spacing %v: got an engine with a %dx%d grid", spacing, e.Grid().Cols, e.Grid().Rows)
		}
	}
}

func TestResizeRejectsOversizedGridAndKeepsLayout(t *testing.T) {
	cfg, _ := PresetByName("ripple")
	e, err := NewEngine(cfg, 30, Viewport{900, 600})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	before := e.Grid()

	changed, err := e.Resize(Viewport{Width: 30 * (MaxAxisCells + 1), Height: 600})
	if !errors.Is(err, ErrInvalidSpacing) || changed {
		t.Fatalf("Resize = (%v, %v), want ErrInvalidSpacing", changed, err)
	}
	if e.Grid() != before {
		t.Errorf("grid changed to %+v", e.Grid())
	}
}

func TestAttributesUseSample(t *testing.T) {
	cfg, _ := PresetByName("ripple")
	e, _ := NewEngine(cfg, 30, Viewport{900, 600})
	c := Cell{Col: 3, Row: 2}

	s := e.Sample(c, 5)
	base := e.Grid().BasePosition(c)
	want := NewMapper(cfg).Map(base, s, e.Grid().Viewport)
	if got := e.Attributes(c, 5); got != want {
		t.Errorf("Attributes = %+v, want %+v", got, want)
	}
}

func TestEngineIsDeterministic(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			cfg, _ := PresetByName(name)
			a, _ := NewEngine(cfg, 30, Viewport{900, 600})
			b, _ := NewEngine(cfg, 30, Viewport{900, 600})

			ga := a.Glyphs(42, nil)
			gb := b.Glyphs(42, nil)
			if len(ga) != len(gb) {
				t.Fatalf("glyph counts differ: %d vs %d", len(ga), len(gb))
			}
			for i := range ga {
				if ga[i] != gb[i] {
					t.Fatalf("glyph %d differs: %+v vs %+v", i, ga[i], gb[i])
				}
			}
		})
	}
}

func TestGlyphsMatchOutlineGeometry(t *testing.T) {
	cfg, _ := PresetByName("ripple")
	e, _ := NewEngine(cfg, 30, Viewport{900, 600})

	glyphs := e.Glyphs(5, nil)
	if len(glyphs) != 31*21 {
		t.Fatalf("got %d glyphs, want %d", len(glyphs), 31*21)
	}
	for _, g := range glyphs {
		a := e.Attributes(g.Cell, 5)
		want := PlusOutline(Point{X: a.X, Y: a.Y}, a.Size)
		for i := range want {
			if math.Abs(g.Outline[i].X-want[i].X) > 1e-6 || math.Abs(g.Outline[i].Y-want[i].Y) > 1e-6 {
				t.Fatalf("cell %v vertex %d = %v, want %v", g.Cell, i, g.Outline[i], want[i])
			}
		}
	}
}

func TestGlyphsAppendToBuffer(t *testing.T) {
	cfg, _ := PresetByName("drift")
	e, _ := NewEngine(cfg, 30, Viewport{90, 60})

	buf := make([]Glyph, 0, 64)
	buf = e.Glyphs(0, buf)
	n := len(buf)
	buf = e.Glyphs(0, buf[:0])
	if len(buf) != n || n != 4*3 {
		t.Errorf("reused buffer holds %d glyphs, first pass %d, want 12", len(buf), n)
	}
}

func TestResize(t *testing.T) {
	cfg, _ := PresetByName("ripple")
	e, _ := NewEngine(cfg, 30, Viewport{900, 600})

	changed, err := e.Resize(Viewport{900, 600})
	if err != nil || changed {
		t.Errorf("same viewport: changed=%v err=%v", changed, err)
	}

	changed, err = e.Resize(Viewport{0, 600})
	if err != nil || !changed {
		t.Fatalf("zero width: changed=%v err=%v", changed, err)
	}
	if got := e.Glyphs(0, nil); len(got) != 0 {
		t.Errorf("empty grid produced %d glyphs", len(got))
	}

	if _, err := e.Resize(Viewport{1200, 300}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if g := e.Grid(); g.Cols != 40 || g.Rows != 10 {
		t.Errorf("grid %dx%d after resize, want 40x10", g.Cols, g.Rows)
	}
}

func TestPresetGoldens(t *testing.T) {
	vp := Viewport{900, 600}

	t.Run("drift", func(t *testing.T) {
		cfg, _ := PresetByName("drift")
		e, _ := NewEngine(cfg, 30, vp)
		if p := e.Grid().BasePosition(Cell{}); p != (Point{}) {
			t.Errorf("cornered origin %v, want {0 0}", p)
		}
		for _, g := range e.Glyphs(90, nil) {
			if g.Opacity != 255 {
				t.Fatalf("cell %v opacity %v, want constant 255", g.Cell, g.Opacity)
			}
		}
	})

	t.Run("shimmer", func(t *testing.T) {
		cfg, _ := PresetByName("shimmer")
		e, _ := NewEngine(cfg, 30, vp)
		a := e.Attributes(Cell{}, 0)
		if math.Abs(a.Opacity-227.5) > 1e-9 {
			t.Errorf("opacity %v, want 227.5", a.Opacity)
		}
		if a.X != 15 || a.Y != 15 {
			t.Errorf("position (%v, %v), want (15, 15)", a.X, a.Y)
		}
	})

	t.Run("ripple", func(t *testing.T) {
		cfg, _ := PresetByName("ripple")
		e, _ := NewEngine(cfg, 30, vp)
		a := e.Attributes(Cell{}, 0)
		if math.Abs(a.Y-16.066821677843876) > 1e-9 {
			t.Errorf("y %v, want 16.0668...", a.Y)
		}
		if math.Abs(a.Opacity-241.6374662817084) > 1e-9 {
			t.Errorf("opacity %v, want 241.637...", a.Opacity)
		}
		// The noise term only moves the center line by +-2.5px.
		if a.Size < 19.23 || a.Size > 19.43 {
			t.Errorf("size %v outside [19.23, 19.43]", a.Size)
		}
	})
}

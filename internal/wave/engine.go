package wave

import "fmt"

// Glyph is everything a renderer needs for one cell.
type Glyph struct {
	Cell Cell
	Attributes
	Outline Outline
}

// Engine ties grid, field and mapper together for one preset. It caches the
// grid and must be told about viewport changes through Resize.
type Engine struct {
	cfg     Config
	spacing float64
	field   *Field
	mapper  Mapper
	grid    Grid
}

// NewEngine validates cfg and spacing and lays out the grid for vp.
func NewEngine(cfg Config, spacing float64, vp Viewport) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := ComputeGrid(vp, spacing, cfg.FitSpacing, cfg.Addressing)
	if err != nil {
		return nil, fmt.Errorf("computing grid: %w", err)
	}
	return &Engine{
		cfg:     cfg,
		spacing: spacing,
		field:   NewField(cfg),
		mapper:  NewMapper(cfg),
		grid:    grid,
	}, nil
}

// Config returns the engine's wave configuration.
func (e *Engine) Config() Config { return e.cfg }

// Grid returns the current grid.
func (e *Engine) Grid() Grid { return e.grid }

// Resize recomputes the grid for vp. It reports whether the viewport changed.
func (e *Engine) Resize(vp Viewport) (bool, error) {
	if vp == e.grid.Viewport {
		return false, nil
	}
	grid, err := ComputeGrid(vp, e.spacing, e.cfg.FitSpacing, e.cfg.Addressing)
	if err != nil {
		return false, err
	}
	e.grid = grid
	return true, nil
}

// Sample returns the raw wave sample of c at tick.
func (e *Engine) Sample(c Cell, tick int) Sample {
	return e.field.Sample(c, e.grid.BasePosition(c), e.grid, tick)
}

// Attributes returns the render attributes of c at tick.
func (e *Engine) Attributes(c Cell, tick int) Attributes {
	return e.mapper.Map(e.grid.BasePosition(c), e.Sample(c, tick), e.grid.Viewport)
}

// Glyphs appends every glyph of the frame at tick to dst in row-major order
// and returns the extended slice.
func (e *Engine) Glyphs(tick int, dst []Glyph) []Glyph {
	e.grid.Each(func(c Cell) {
		a := e.Attributes(c, tick)
		dst = append(dst, Glyph{
			Cell:       c,
			Attributes: a,
			Outline:    PlusOutline(Point{X: a.X, Y: a.Y}, a.Size),
		})
	})
	return dst
}

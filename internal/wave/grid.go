package wave

import (
	"fmt"
	"math"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// Point is a position in viewport pixels.
type Point struct {
	X, Y float64
}

// Cell addresses one glyph slot of the grid.
type Cell struct {
	Col, Row int
}

// Addressing selects where a glyph sits inside its grid cell.
type Addressing string

const (
	// Centered puts the glyph in the middle of its cell.
	Centered Addressing = "centered"
	// Cornered anchors the glyph on the cell's top-left corner.
	Cornered Addressing = "cornered"
)

// Grid size limits. A spacing that would exceed them is rejected.
const (
	MaxAxisCells = 1 << 16
	MaxCells     = 1 << 20
)

// Grid is the derived column/row layout for one viewport.
type Grid struct {
	Cols       int
	Rows       int
	Spacing    float64 // effective spacing after fitting
	Viewport   Viewport
	Addressing Addressing
}

// ComputeGrid derives the grid for vp. Viewports smaller than spacing give a
// degenerate grid, not an error. Spacing small enough to exceed the cell
// limits is. With fit set, the effective spacing is
// stretched so the columns and rows fill the viewport evenly.
func ComputeGrid(vp Viewport, spacing float64, fit bool, addressing Addressing) (Grid, error) {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return Grid{}, fmt.Errorf("%w: %v", ErrInvalidSpacing, spacing)
	}
	vp.Width = nonNegative(vp.Width)
	vp.Height = nonNegative(vp.Height)

	cols, rows := math.Floor(vp.Width/spacing), math.Floor(vp.Height/spacing)
	if cols > MaxAxisCells || rows > MaxAxisCells || (cols+1)*(rows+1) > MaxCells {
		return Grid{}, fmt.Errorf("%w: %v gives a %vx%v grid", ErrInvalidSpacing, spacing, cols, rows)
	}

	g := Grid{
		Cols:       int(cols),
		Rows:       int(rows),
		Spacing:    spacing,
		Viewport:   vp,
		Addressing: addressing,
	}
	if fit && !g.Empty() {
		g.Spacing = math.Min(vp.Width/float64(g.Cols), vp.Height/float64(g.Rows))
	}
	return g, nil
}

func nonNegative(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

// Empty reports whether the grid has no cells. A zero count on either axis
// empties the whole grid.
func (g Grid) Empty() bool {
	return g.Cols <= 0 || g.Rows <= 0
}

// CellCount returns the number of glyphs drawn per frame. Both axes are
// walked inclusively, so a non-empty grid has (cols+1)*(rows+1) cells.
func (g Grid) CellCount() int {
	if g.Empty() {
		return 0
	}
	return (g.Cols + 1) * (g.Rows + 1)
}

// BasePosition returns the un-displaced glyph center for c.
func (g Grid) BasePosition(c Cell) Point {
	x := float64(c.Col) * g.Spacing
	y := float64(c.Row) * g.Spacing
	if g.Addressing != Cornered {
		x += g.Spacing / 2
		y += g.Spacing / 2
	}
	return Point{X: x, Y: y}
}

// Each visits every cell in row-major order.
func (g Grid) Each(fn func(Cell)) {
	if g.Empty() {
		return
	}
	for row := 0; row <= g.Rows; row++ {
		for col := 0; col <= g.Cols; col++ {
			fn(Cell{Col: col, Row: row})
		}
	}
}

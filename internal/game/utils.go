package game

import "github.com/iburimskiy/grid-wave/internal/palette"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// colorScale returns c as float32 channel scales in [0, 1].
func colorScale(c palette.Color) (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

// within reports whether (x, y) lies in the rectangle at (rx, ry).
func within(x, y int, rx, ry, rw, rh float32) bool {
	fx, fy := float32(x), float32(y)
	return fx >= rx && fx <= rx+rw && fy >= ry && fy <= ry+rh
}

package wave

// GlyphVertices is the vertex count of the plus outline.
const GlyphVertices = 12

// Outline is the closed plus polygon of one glyph, in drawing order.
type Outline [GlyphVertices]Point

// plusPattern is the outline in units of size/5: arms half a unit wide and
// two and a half units long, starting at the left arm's top edge.
var plusPattern = [GlyphVertices][2]float64{
	{-2.5, -0.5}, {-0.5, -0.5}, {-0.5, -2.5}, {0.5, -2.5},
	{0.5, -0.5}, {2.5, -0.5}, {2.5, 0.5}, {0.5, 0.5},
	{0.5, 2.5}, {-0.5, 2.5}, {-0.5, 0.5}, {-2.5, 0.5},
}

// PlusOutline returns the plus outline centered at center. Raster and
// vector output both draw exactly these vertices.
func PlusOutline(center Point, size float64) Outline {
	unit := size / 5
	var o Outline
	for i, p := range plusPattern {
		o[i] = Point{X: center.X + p[0]*unit, Y: center.Y + p[1]*unit}
	}
	return o
}

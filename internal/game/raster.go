package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/grid-wave/internal/export"
	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

// maxBatchVertices keeps a DrawTriangles batch well inside uint16 indices.
const maxBatchVertices = 1 << 15

// RasterRenderer draws every glyph of a frame onto the live canvas.
type RasterRenderer struct {
	source  export.Source
	palette *palette.Palette

	glyphs   []wave.Glyph
	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

// NewRasterRenderer returns a renderer reading frames from source and colors
// from pal on every pass.
func NewRasterRenderer(source export.Source, pal *palette.Palette) *RasterRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &RasterRenderer{
		source:  source,
		palette: pal,
		white:   img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Draw clears screen to the background color and fills each glyph outline
// with the glyph color at its opacity.
func (r *RasterRenderer) Draw(screen *ebiten.Image, tick int) {
	screen.Fill(r.palette.Background().NRGBA(255))

	r.glyphs = r.source.Glyphs(tick, r.glyphs[:0])
	cr, cg, cb := colorScale(r.palette.Glyph())

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for i := range r.glyphs {
		g := &r.glyphs[i]
		if len(r.vertices)+2*wave.GlyphVertices > maxBatchVertices {
			r.flush(screen)
		}

		var path vector.Path
		for j, p := range g.Outline {
			if j == 0 {
				path.MoveTo(float32(p.X), float32(p.Y))
				continue
			}
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()

		start := len(r.vertices)
		r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices, r.indices)

		alpha := float32(clamp01(g.Opacity / wave.MaxOpacity))
		for k := start; k < len(r.vertices); k++ {
			v := &r.vertices[k]
			v.SrcX, v.SrcY = 1, 1
			v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, alpha
		}
	}
	r.flush(screen)
}

func (r *RasterRenderer) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.NonZero,
		AntiAlias: true,
	})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

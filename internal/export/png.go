package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

const (
	// PNGName is the default file name of a raster snapshot.
	PNGName = "grid_wave_export.png"
	// PNGMIMEType is the media type of a raster snapshot.
	PNGMIMEType = "image/png"
)

// SnapshotExporter rasterizes the current frame off-screen and writes a PNG.
type SnapshotExporter struct {
	exporter
}

// NewSnapshotExporter returns a PNG exporter. An empty name selects PNGName.
func NewSnapshotExporter(source Source, pal *palette.Palette, saver *Saver, name string) *SnapshotExporter {
	if name == "" {
		name = PNGName
	}
	return &SnapshotExporter{exporter{source: source, palette: pal, saver: saver, name: name}}
}

// Render rasterizes the frame at tick without saving it.
func (e *SnapshotExporter) Render(tick int) (Document, error) {
	vp, glyphs := e.frame(tick)

	dc := Rasterize(vp, glyphs, e.palette)
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return Document{}, fmt.Errorf("encoding PNG: %w", err)
	}
	return Document{Name: e.name, MIMEType: PNGMIMEType, Data: buf.Bytes(), Glyphs: len(glyphs)}, nil
}

// Export rasterizes the frame at tick and hands it to the saver.
func (e *SnapshotExporter) Export(tick int) (Result, error) {
	doc, err := e.Render(tick)
	if err != nil {
		return Result{}, err
	}
	return e.save(doc)
}

// Rasterize draws the glyphs onto a new context the size of vp. Empty
// viewports still get a 1x1 canvas so the result can be encoded.
func Rasterize(vp wave.Viewport, glyphs []wave.Glyph, pal *palette.Palette) *gg.Context {
	w := int(math.Max(1, math.Ceil(vp.Width)))
	h := int(math.Max(1, math.Ceil(vp.Height)))

	dc := gg.NewContext(w, h)
	dc.SetColor(pal.Background().NRGBA(255))
	dc.Clear()

	fill := pal.Glyph()
	for _, g := range glyphs {
		dc.NewSubPath()
		for i, p := range g.Outline {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
				continue
			}
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.SetColor(fill.NRGBA(alpha8(g.Opacity)))
		dc.Fill()
	}
	return dc
}

func alpha8(opacity float64) uint8 {
	if !(opacity > 0) {
		return 0
	}
	if opacity >= wave.MaxOpacity {
		return wave.MaxOpacity
	}
	return uint8(math.Round(opacity))
}

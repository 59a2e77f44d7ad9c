package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

const (
	// SVGName is the default file name of a vector export.
	SVGName = "grid_wave_export.svg"
	// SVGMIMEType is the media type of a vector export.
	SVGMIMEType = "image/svg+xml"
)

// VectorExporter writes the current frame as SVG.
type VectorExporter struct {
	exporter
}

// NewVectorExporter returns an exporter reading frames from source and colors
// from pal. An empty name selects SVGName.
func NewVectorExporter(source Source, pal *palette.Palette, saver *Saver, name string) *VectorExporter {
	if name == "" {
		name = SVGName
	}
	return &VectorExporter{exporter{source: source, palette: pal, saver: saver, name: name}}
}

// Render encodes the frame at tick without saving it.
func (e *VectorExporter) Render(tick int) (Document, error) {
	vp, glyphs := e.frame(tick)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, vp, glyphs, e.palette); err != nil {
		return Document{}, err
	}
	return Document{Name: e.name, MIMEType: SVGMIMEType, Data: buf.Bytes(), Glyphs: len(glyphs)}, nil
}

// Export renders the frame at tick and hands it to the saver.
func (e *VectorExporter) Export(tick int) (Result, error) {
	doc, err := e.Render(tick)
	if err != nil {
		return Result{}, fmt.Errorf("rendering svg: %w", err)
	}
	return e.save(doc)
}

// WriteSVG writes a standalone SVG document: a background rect covering the
// viewport, then one closed path per glyph in the given order.
func WriteSVG(w io.Writer, vp wave.Viewport, glyphs []wave.Glyph, pal *palette.Palette) error {
	bg := pal.Background().Hex()
	fill := pal.Glyph().Hex()

	ew := &errWriter{w: w}
	ew.printf("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	ew.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\">\n",
		formatNumber(vp.Width), formatNumber(vp.Height))
	ew.printf("<rect width=\"100%%\" height=\"100%%\" fill=\"%s\" />\n", bg)

	for _, g := range glyphs {
		ew.printf("<path d=\"%s\" fill=\"%s\" fill-opacity=\"%s\" />\n",
			pathData(g.Outline), fill, fillOpacity(g.Opacity))
	}
	ew.printf("</svg>")
	return ew.err
}

// pathData renders an outline as "M x y L x y ... Z".
func pathData(o wave.Outline) string {
	b := make([]byte, 0, 24*len(o))
	for i, p := range o {
		if i == 0 {
			b = append(b, "M "...)
		} else {
			b = append(b, " L "...)
		}
		b = strconv.AppendFloat(b, p.X, 'f', -1, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, p.Y, 'f', -1, 64)
	}
	b = append(b, " Z"...)
	return string(b)
}

// fillOpacity scales a 0-255 opacity to [0, 1] with three decimals.
func fillOpacity(opacity float64) string {
	v := opacity / wave.MaxOpacity
	if !(v >= 0) {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

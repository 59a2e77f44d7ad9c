package export

import (
	"bytes"
	"encoding/xml"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

type svgPath struct {
	D           string
	Fill        string
	FillOpacity string
}

type svgDoc struct {
	Width, Height string
	RectFill      string
	Paths         []svgPath
}

// parseSVG walks the document with encoding/xml, failing on malformed input.
func parseSVG(t *testing.T, data []byte) svgDoc {
	t.Helper()

	var doc svgDoc
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("malformed svg: %v", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		attrs := map[string]string{}
		for _, a := range el.Attr {
			attrs[a.Name.Local] = a.Value
		}
		switch el.Name.Local {
		case "svg":
			doc.Width, doc.Height = attrs["width"], attrs["height"]
		case "rect":
			doc.RectFill = attrs["fill"]
		case "path":
			doc.Paths = append(doc.Paths, svgPath{D: attrs["d"], Fill: attrs["fill"], FillOpacity: attrs["fill-opacity"]})
		}
	}
	return doc
}

func parsePathData(t *testing.T, d string) []wave.Point {
	t.Helper()

	fields := strings.Fields(d)
	var pts []wave.Point
	for i := 0; i < len(fields); {
		switch fields[i] {
		case "M", "L":
			x, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				t.Fatalf("bad x in %q: %v", d, err)
			}
			y, err := strconv.ParseFloat(fields[i+2], 64)
			if err != nil {
				t.Fatalf("bad y in %q: %v", d, err)
			}
			pts = append(pts, wave.Point{X: x, Y: y})
			i += 3
		case "Z":
			i++
		default:
			t.Fatalf("unexpected token %q in %q", fields[i], d)
		}
	}
	return pts
}

func newEngine(t *testing.T, preset string, vp wave.Viewport) *wave.Engine {
	t.Helper()
	cfg, err := wave.PresetByName(preset)
	if err != nil {
		t.Fatalf("PresetByName: %v", err)
	}
	e, err := wave.NewEngine(cfg, 30, vp)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func defaultPalette() *palette.Palette {
	return palette.New(palette.MustParseHex(palette.DefaultBackground), palette.MustParseHex(palette.DefaultGlyph))
}

func TestVectorExportStructure(t *testing.T) {
	e := newEngine(t, "ripple", wave.Viewport{Width: 900, Height: 600})
	x := NewVectorExporter(e, defaultPalette(), NewSaver(t.TempDir(), false), "")

	doc, err := x.Render(12)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.Name != SVGName || doc.MIMEType != SVGMIMEType {
		t.Errorf("document %q (%s), want %q (%s)", doc.Name, doc.MIMEType, SVGName, SVGMIMEType)
	}
	if !bytes.HasPrefix(doc.Data, []byte(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)) {
		t.Error("missing XML declaration")
	}

	svg := parseSVG(t, doc.Data)
	if svg.Width != "900" || svg.Height != "600" {
		t.Errorf("size %sx%s, want 900x600", svg.Width, svg.Height)
	}
	if svg.RectFill != "#0000FF" {
		t.Errorf("background %q, want #0000FF", svg.RectFill)
	}

	g := e.Grid()
	if want := (g.Cols + 1) * (g.Rows + 1); len(svg.Paths) != want || doc.Glyphs != want {
		t.Fatalf("got %d paths (%d glyphs), want %d", len(svg.Paths), doc.Glyphs, want)
	}

	for i, p := range svg.Paths {
		if p.Fill != "#FFFFFF" {
			t.Fatalf("path %d fill %q", i, p.Fill)
		}
		dot := strings.IndexByte(p.FillOpacity, '.')
		if dot < 0 || len(p.FillOpacity)-dot-1 != 3 {
			t.Fatalf("path %d fill-opacity %q lacks three decimals", i, p.FillOpacity)
		}
		v, err := strconv.ParseFloat(p.FillOpacity, 64)
		if err != nil || v < 0 || v > 1 {
			t.Fatalf("path %d fill-opacity %q out of [0,1]", i, p.FillOpacity)
		}
	}
}

func TestVectorExportMatchesRasterGeometry(t *testing.T) {
	e := newEngine(t, "ripple", wave.Viewport{Width: 640, Height: 480})
	x := NewVectorExporter(e, defaultPalette(), NewSaver(t.TempDir(), false), "")

	const tick = 77
	doc, err := x.Render(tick)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	svg := parseSVG(t, doc.Data)

	// The live renderer consumes exactly these glyphs for the same tick.
	glyphs := e.Glyphs(tick, nil)
	if len(glyphs) != len(svg.Paths) {
		t.Fatalf("%d glyphs vs %d paths", len(glyphs), len(svg.Paths))
	}
	for i, g := range glyphs {
		pts := parsePathData(t, svg.Paths[i].D)
		if len(pts) != wave.GlyphVertices {
			t.Fatalf("path %d has %d vertices", i, len(pts))
		}
		for j, p := range pts {
			if math.Abs(p.X-g.Outline[j].X) > 1e-6 || math.Abs(p.Y-g.Outline[j].Y) > 1e-6 {
				t.Fatalf("glyph %v vertex %d: svg %v, raster %v", g.Cell, j, p, g.Outline[j])
			}
		}
		if want := fillOpacity(g.Opacity); svg.Paths[i].FillOpacity != want {
			t.Fatalf("glyph %v fill-opacity %q, want %q", g.Cell, svg.Paths[i].FillOpacity, want)
		}
	}
}

func TestVectorExportEmptyGrid(t *testing.T) {
	e := newEngine(t, "shimmer", wave.Viewport{Width: 0, Height: 600})
	x := NewVectorExporter(e, defaultPalette(), NewSaver(t.TempDir(), false), "")

	doc, err := x.Render(0)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	svg := parseSVG(t, doc.Data)
	if len(svg.Paths) != 0 {
		t.Errorf("empty grid exported %d paths", len(svg.Paths))
	}
	if svg.RectFill == "" {
		t.Error("background rect missing")
	}
}

func TestPaletteChangeKeepsGeometry(t *testing.T) {
	e := newEngine(t, "ripple", wave.Viewport{Width: 300, Height: 300})
	pal := defaultPalette()
	x := NewVectorExporter(e, pal, NewSaver(t.TempDir(), false), "")

	before, _ := x.Render(3)
	pal.OnColorSelected(palette.Glyph, palette.MustParseHex("#FF872A"))
	after, _ := x.Render(3)

	a, b := parseSVG(t, before.Data), parseSVG(t, after.Data)
	for i := range a.Paths {
		if a.Paths[i].D != b.Paths[i].D || a.Paths[i].FillOpacity != b.Paths[i].FillOpacity {
			t.Fatalf("path %d changed shape or opacity after a color change", i)
		}
		if b.Paths[i].Fill != "#FF872A" {
			t.Fatalf("path %d fill %q, want #FF872A", i, b.Paths[i].Fill)
		}
	}
}

func TestFillOpacity(t *testing.T) {
	tests := map[float64]string{
		255:        "1.000",
		200:        "0.784",
		0:          "0.000",
		300:        "1.000",
		math.NaN(): "0.000",
	}
	for in, want := range tests {
		if got := fillOpacity(in); got != want {
			t.Errorf("fillOpacity(%v) = %q, want %q", in, got, want)
		}
	}
}

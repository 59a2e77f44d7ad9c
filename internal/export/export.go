// Package export turns the frame at a given tick into files: an SVG document
// with one path per glyph and a PNG snapshot rasterized off-screen.
//
// Exporters recompute the frame from the engine instead of reading pixels
// back, so an export only matches what is on screen when the tick has not
// advanced since the last drawn frame.
package export

import (
	"github.com/iburimskiy/grid-wave/internal/palette"
	"github.com/iburimskiy/grid-wave/internal/wave"
)

// Source supplies the grid and glyphs of a frame. *wave.Engine implements it.
type Source interface {
	Grid() wave.Grid
	Glyphs(tick int, dst []wave.Glyph) []wave.Glyph
}

// Document is an encoded export ready to be saved.
type Document struct {
	Name     string
	MIMEType string
	Data     []byte
	Glyphs   int
}

// Result describes a finished export. Path is empty when the user cancelled
// the save dialog.
type Result struct {
	Path   string
	Glyphs int
}

type exporter struct {
	source  Source
	palette *palette.Palette
	saver   *Saver
	name    string
	glyphs  []wave.Glyph
}

func (e *exporter) frame(tick int) (wave.Viewport, []wave.Glyph) {
	e.glyphs = e.source.Glyphs(tick, e.glyphs[:0])
	return e.source.Grid().Viewport, e.glyphs
}

func (e *exporter) save(doc Document) (Result, error) {
	path, err := e.saver.Save(doc)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Glyphs: doc.Glyphs}, nil
}

// Package palette holds the background and glyph colors shared by every
// render pass, and the swatch list users pick them from.
package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for strings that are not hex colors.
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB" or "#RGB".
func ParseHex(s string) (Color, error) {
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as upper-case "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NRGBA returns c with the given straight alpha.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// Luminance is the perceived lightness of c in [0, 1].
func (c Color) Luminance() float64 {
	l, _, _ := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Lab()
	return l
}

// Kind names which of the two palette entries a selection targets.
type Kind int

const (
	Background Kind = iota
	Glyph
)

func (k Kind) String() string {
	switch k {
	case Background:
		return "background"
	case Glyph:
		return "glyph"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Picker receives color selections from whatever UI offers the swatches.
type Picker interface {
	OnColorSelected(kind Kind, c Color)
}

// Palette is the current pair of colors. The host owns it; renderers read it
// on every pass and never keep a copy.
type Palette struct {
	background Color
	glyph      Color
}

// New returns a palette with the given colors.
func New(background, glyph Color) *Palette {
	return &Palette{background: background, glyph: glyph}
}

// Background returns the canvas color.
func (p *Palette) Background() Color { return p.background }

// SetBackground replaces the canvas color.
func (p *Palette) SetBackground(c Color) { p.background = c }

// Glyph returns the glyph fill color.
func (p *Palette) Glyph() Color { return p.glyph }

// SetGlyph replaces the glyph fill color.
func (p *Palette) SetGlyph(c Color) { p.glyph = c }

// Get returns the color of kind.
func (p *Palette) Get(kind Kind) Color {
	if kind == Background {
		return p.background
	}
	return p.glyph
}

// OnColorSelected implements Picker.
func (p *Palette) OnColorSelected(kind Kind, c Color) {
	switch kind {
	case Background:
		p.SetBackground(c)
	case Glyph:
		p.SetGlyph(c)
	}
}

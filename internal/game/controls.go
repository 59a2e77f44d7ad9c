package game

import (
	"math"

	"github.com/iburimskiy/grid-wave/internal/palette"
)

// Control geometry, in screen pixels.
const (
	swatchButtonSize = 30
	controlsY        = 20
	bgSwatchX        = 20
	glyphSwatchX     = 70

	svgButtonX      = 120
	svgButtonWidth  = 56
	svgButtonHeight = 30

	menuOffsetY = 40
	menuPadding = 8
	menuColumns = 4
	menuCell    = 30
	menuGap     = 8
)

type action int

const (
	actionNone action = iota
	actionExportSVG
	actionSelectColor
)

// event is what a pointer update asks the game to do.
type event struct {
	action action
	kind   palette.Kind
	color  palette.Color
}

// pointer is the mouse state for one update.
type pointer struct {
	X, Y         int
	JustPressed  bool
	JustReleased bool
}

// swatchButton opens the swatch menu for one palette entry.
type swatchButton struct {
	kind    palette.Kind
	x, y    float32
	hovered bool
	open    bool
	hoverAt int // swatch under the pointer, -1 for none
}

// controls is the on-screen chrome: two swatch buttons with their menus and
// the SVG button.
type controls struct {
	swatches []palette.Color
	buttons  [2]*swatchButton

	svgHovered bool
	svgPressed bool
}

func newControls(swatches []palette.Color) *controls {
	return &controls{
		swatches: swatches,
		buttons: [2]*swatchButton{
			{kind: palette.Background, x: bgSwatchX, y: controlsY, hoverAt: -1},
			{kind: palette.Glyph, x: glyphSwatchX, y: controlsY, hoverAt: -1},
		},
	}
}

func (c *controls) menuRows() int {
	return max(1, int(math.Ceil(float64(len(c.swatches))/menuColumns)))
}

// menuRect returns the menu panel of b.
func (c *controls) menuRect(b *swatchButton) (x, y, w, h float32) {
	w = 2*menuPadding + menuColumns*menuCell + (menuColumns-1)*menuGap
	rows := float32(c.menuRows())
	h = 2*menuPadding + rows*menuCell + (rows-1)*menuGap
	return b.x, b.y + menuOffsetY, w, h
}

// swatchRect returns the cell of swatch i in b's menu.
func (c *controls) swatchRect(b *swatchButton, i int) (x, y, size float32) {
	mx, my, _, _ := c.menuRect(b)
	col, row := float32(i%menuColumns), float32(i/menuColumns)
	return mx + menuPadding + col*(menuCell+menuGap), my + menuPadding + row*(menuCell+menuGap), menuCell
}

// update applies one pointer sample and returns the resulting event.
func (c *controls) update(p pointer) event {
	var ev event

	for _, b := range c.buttons {
		b.hovered = within(p.X, p.Y, b.x, b.y, swatchButtonSize, swatchButtonSize)
		b.hoverAt = -1
		if !b.open {
			continue
		}
		for i := range c.swatches {
			x, y, size := c.swatchRect(b, i)
			if within(p.X, p.Y, x, y, size, size) {
				b.hoverAt = i
			}
		}
		if p.JustPressed && b.hoverAt >= 0 {
			ev = event{action: actionSelectColor, kind: b.kind, color: c.swatches[b.hoverAt]}
		}
	}

	if p.JustPressed {
		for i, b := range c.buttons {
			if !b.hovered {
				continue
			}
			// Menus are exclusive: opening one closes the other.
			b.open = !b.open
			c.buttons[1-i].open = false
		}
	}

	// The SVG button fires on release, like a native button.
	c.svgHovered = within(p.X, p.Y, svgButtonX, controlsY, svgButtonWidth, svgButtonHeight)
	if c.svgHovered && p.JustPressed {
		c.svgPressed = true
	}
	if p.JustReleased {
		if c.svgPressed && c.svgHovered {
			ev = event{action: actionExportSVG}
		}
		c.svgPressed = false
	}
	return ev
}

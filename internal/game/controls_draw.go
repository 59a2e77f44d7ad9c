package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/grid-wave/internal/palette"
)

// Chips darker than this get a light outline.
const darkChipLuminance = 0.35

var (
	borderColor      = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	highlightColor   = color.RGBA{R: 255, A: 255}
	menuColor        = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 255}
	menuShadowColor  = color.RGBA{A: 50}
	lightRingColor   = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}
	buttonFillColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 230}
	buttonPressColor = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 230}
)

func (c *controls) draw(screen *ebiten.Image, pal *palette.Palette) {
	for _, b := range c.buttons {
		current := pal.Get(b.kind)
		drawSwatch(screen, b.x, b.y, swatchButtonSize, current, b.hovered)
		if b.open {
			c.drawMenu(screen, b, current)
		}
	}
	c.drawSVGButton(screen)
}

func (c *controls) drawMenu(screen *ebiten.Image, b *swatchButton, current palette.Color) {
	x, y, w, h := c.menuRect(b)
	vector.DrawFilledRect(screen, x+2, y+2, w, h, menuShadowColor, false)
	vector.DrawFilledRect(screen, x, y, w, h, menuColor, false)

	selected := palette.IndexOf(c.swatches, current)
	for i, sw := range c.swatches {
		sx, sy, size := c.swatchRect(b, i)
		drawSwatch(screen, sx, sy, size, sw, i == selected || i == b.hoverAt)
	}
}

func (c *controls) drawSVGButton(screen *ebiten.Image) {
	fill := buttonFillColor
	if c.svgPressed {
		fill = buttonPressColor
	}
	border := color.Color(menuColor)
	if c.svgHovered {
		border = highlightColor
	}
	vector.DrawFilledRect(screen, svgButtonX, controlsY, svgButtonWidth, svgButtonHeight, fill, false)
	vector.StrokeRect(screen, svgButtonX, controlsY, svgButtonWidth, svgButtonHeight, 2, border, false)

	// DebugPrint text is white and 6x16 per glyph.
	const label = "SVG"
	ebitenutil.DebugPrintAt(screen, label,
		svgButtonX+(svgButtonWidth-len(label)*6)/2,
		controlsY+(svgButtonHeight-16)/2)
}

// drawSwatch draws a round color chip with a red ring when highlighted.
func drawSwatch(screen *ebiten.Image, x, y, size float32, c palette.Color, highlighted bool) {
	r := size / 2
	ring := ringColor(c, highlighted)
	vector.DrawFilledCircle(screen, x+r, y+r, r, c.NRGBA(255), true)
	vector.StrokeCircle(screen, x+r, y+r, r, 2, ring, true)
}

// ringColor picks the chip outline: red when highlighted, otherwise a gray
// that contrasts with the chip.
func ringColor(c palette.Color, highlighted bool) color.Color {
	if highlighted {
		return highlightColor
	}
	if c.Luminance() < darkChipLuminance {
		return lightRingColor
	}
	return borderColor
}

package palette

import "fmt"

// Default colors.
const (
	DefaultBackground = "#0000FF"
	DefaultGlyph      = "#FFFFFF"
)

// DefaultSwatches is the stock swatch list, in menu order.
var DefaultSwatches = []string{
	"#040066", "#0000FF", "#00D4FF", "#00C167",
	"#D3BEEC", "#FFD81D", "#FF872A", "#FFFFFF",
}

// ParseSwatches parses every entry of hexes.
func ParseSwatches(hexes []string) ([]Color, error) {
	out := make([]Color, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// IndexOf returns the position of c in swatches, or -1.
func IndexOf(swatches []Color, c Color) int {
	for i, s := range swatches {
		if s == c {
			return i
		}
	}
	return -1
}

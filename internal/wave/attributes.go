package wave

import "math"

// Crest scaling bounds for glyph size in the multi-directional model.
const (
	crestSizeLow  = 0.85
	crestSizeHigh = 1.15
)

// Attributes are the final render inputs of one glyph.
type Attributes struct {
	X, Y    float64
	Size    float64 // in [MinSize, MaxSize]
	Opacity float64 // in [MinOpacity, MaxOpacity], 0-255 scale
}

// Mapper turns wave samples into glyph attributes.
type Mapper struct {
	cfg Config
}

// NewMapper returns a Mapper for cfg.
func NewMapper(cfg Config) Mapper {
	return Mapper{cfg: cfg}
}

// Map derives the attributes of a glyph at base from its sample.
func (m Mapper) Map(base Point, s Sample, vp Viewport) Attributes {
	multi := m.cfg.PhaseModel == MultiDirectional

	y := base.Y
	if multi {
		y = finiteOr(y+s.Offset, base.Y)
	}

	ref := s.CenterLine
	if m.cfg.Reference == ReferenceMidline {
		ref = vp.Height / 2
	}
	dist := math.Abs(y - ref)

	size := remap(dist, 0, vp.Height*m.cfg.DistanceRange, m.cfg.MaxSize, m.cfg.MinSize)
	if multi && m.cfg.CrestSizeFactor {
		size *= remap(s.Crest, -1, 1, crestSizeLow, crestSizeHigh)
	}
	size = clamp(size, m.cfg.MinSize, m.cfg.MaxSize)

	return Attributes{
		X:       base.X,
		Y:       y,
		Size:    size,
		Opacity: remap(s.Shimmer, 0, 1, m.cfg.MinOpacity, m.cfg.MaxOpacity),
	}
}

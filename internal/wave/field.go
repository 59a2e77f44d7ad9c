package wave

import "math"

// Fixed shape constants of the wave. The tunable ones live in Config.
const (
	phaseWeightX = 0.8
	phaseWeightY = 1.2
	warpScale    = 0.002
	warpAmount   = 100

	centerScale    = 0.05
	noiseScale     = 0.1
	noiseTimeScale = 0.01

	shimmerCellScale = 0.05
	shimmerOffset    = math.Pi / 4
)

// Sample is the wave state at one cell for one tick.
type Sample struct {
	Phase      float64
	Crest      float64 // sin(Phase), in [-1, 1]
	Offset     float64 // vertical displacement, multi-directional only
	CenterLine float64
	Shimmer    float64 // in [0, 1]
}

// Field evaluates the traveling wave. It holds no per-frame state, so one
// Field can serve any number of passes.
type Field struct {
	cfg   Config
	noise *Noise
}

// NewField builds a Field for cfg.
func NewField(cfg Config) *Field {
	return &Field{cfg: cfg, noise: NewNoise(cfg.NoiseSeed)}
}

// Sample computes the wave at cell c, whose undisplaced position is base.
func (f *Field) Sample(c Cell, base Point, g Grid, tick int) Sample {
	t := float64(tick)
	col, row := float64(c.Col), float64(c.Row)

	var s Sample
	var shimmerPhase float64
	if f.cfg.PhaseModel == MultiDirectional {
		warp := math.Sin(base.X*warpScale+base.Y*warpScale) * warpAmount
		s.Phase = (base.X*phaseWeightX+base.Y*phaseWeightY+warp)*f.cfg.Frequency*f.cfg.RippleDensity +
			t*f.cfg.Speed
		s.Phase = finiteOr(s.Phase, 0)
		s.Crest = math.Sin(s.Phase)
		s.Offset = s.Crest * f.cfg.Amplitude
		shimmerPhase = s.Phase
	} else {
		shimmerPhase = t*f.cfg.ShimmerSpeed + row*shimmerCellScale + col*shimmerCellScale
	}

	s.CenterLine = g.Viewport.Height/2 +
		math.Sin((col+t*f.cfg.CenterSpeed)*centerScale)*f.cfg.CenterSwing +
		f.noise.At(col*noiseScale, row*noiseScale, t*noiseTimeScale)*f.cfg.NoiseAmount -
		f.cfg.NoiseAmount/2
	s.CenterLine = finiteOr(s.CenterLine, g.Viewport.Height/2)

	s.Shimmer = shimmerValue(shimmerPhase)
	return s
}

// shimmerValue keeps only the positive half of the phase-shifted sine and
// squares it, so opacity sits at its minimum for most of a cycle.
func shimmerValue(phase float64) float64 {
	v := math.Sin(phase + shimmerOffset)
	if !finite(v) || v < 0 {
		return 0
	}
	return v * v
}

package wave

import (
	"math"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Noise is a seeded coherent noise source with output in [0, 1].
// It is read-only after construction.
type Noise struct {
	p *perlin.Perlin
}

// NewNoise returns the noise source for seed. Equal seeds give equal values.
func NewNoise(seed int64) *Noise {
	return &Noise{p: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)}
}

// At samples the noise volume. Neighboring inputs give neighboring outputs.
func (n *Noise) At(x, y, z float64) float64 {
	if !finite(x) || !finite(y) || !finite(z) {
		return 0.5
	}
	v := n.p.Noise3D(x, y, math.Max(z, 0))
	return clamp(finiteOr((v+1)/2, 0.5), 0, 1)
}

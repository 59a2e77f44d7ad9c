package wave

import "math"

// remap maps v linearly from [inLo, inHi] onto [outLo, outHi] and saturates
// at the output bounds. The input domain must be increasing.
//
// Non-finite input never escapes: +Inf lands on outHi, -Inf on outLo and NaN
// on the smaller of the two output bounds.
func remap(v, inLo, inHi, outLo, outHi float64) float64 {
	switch {
	case math.IsNaN(v):
		return math.Min(outLo, outHi)
	case math.IsInf(v, 1):
		return outHi
	case math.IsInf(v, -1):
		return outLo
	}
	span := inHi - inLo
	if !(span > 0) || math.IsInf(span, 0) {
		return outLo
	}
	t := (v - inLo) / span
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return outLo + t*(outHi-outLo)
}

// clamp constrains v to [lo, hi]. NaN collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteOr returns v, or fallback when v is NaN or infinite.
func finiteOr(v, fallback float64) float64 {
	if finite(v) {
		return v
	}
	return fallback
}

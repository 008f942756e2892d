package core

import (
	"math"
	"math/cmplx"
	"strconv"
)

const defaultEpsilon = 1e-12

// Number is the element type of a sampled dependent array.
type Number interface {
	float64 | complex128
}

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
// Large magnitudes fall back to a relative comparison.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Sign returns -1, 0 or +1 following the sign of x. NaN is returned as is.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// SignedPow raises |base| to exp and restores the sign of base, so negative
// bases with fractional exponents stay real.
func SignedPow(base, exp float64) float64 {
	return Sign(base) * math.Pow(math.Abs(base), exp)
}

// SignedPowComplex is the complex counterpart of SignedPow: the magnitude is
// raised to the real part of exp and the phase of base is kept.
func SignedPowComplex(base, exp complex128) complex128 {
	r := cmplx.Abs(base)
	if r == 0 {
		return 0
	}

	return complex(math.Pow(r, real(exp))/r, 0) * base
}

// RoundSignificant rounds x to the given number of significant decimal
// digits. Non-finite values and digits < 1 return x unchanged.
func RoundSignificant(x float64, digits int) float64 {
	if digits < 1 || x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', digits, 64), 64)
	if err != nil {
		return x
	}

	return v
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

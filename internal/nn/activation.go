package nn

import (
	"math"

	"github.com/handnet-ml/handnet/internal/tensor"
)

// Sigmoid applies σ(s) = 1 / (1 + exp(-s)) elementwise.
//
// Sigmoid squashes finite values to the open interval (0, 1), which is
// what makes it usable as a binary-classification output.
//
// There is no overflow guard: for very large |s| the exponential
// saturates and the result rounds to exactly 0 or 1 in float64. This
// is a known numerical edge case of the plain formula, kept as is;
// use SigmoidStable for the guarded variant.
func Sigmoid(s *tensor.Matrix) *tensor.Matrix {
	return s.Apply(func(v float64) float64 {
		return 1.0 / (1.0 + math.Exp(-v))
	})
}

// SigmoidStable is an opt-in numerically guarded sigmoid.
//
// It evaluates the branch that never exponentiates a positive
// argument, so exp can underflow but not overflow. Within the range
// where the plain formula is well behaved the two variants agree to
// machine precision. The default training path does not use it.
func SigmoidStable(s *tensor.Matrix) *tensor.Matrix {
	return s.Apply(func(v float64) float64 {
		if v >= 0 {
			return 1.0 / (1.0 + math.Exp(-v))
		}
		e := math.Exp(v)
		return e / (1.0 + e)
	})
}

// SigmoidPrime computes the sigmoid derivative from the sigmoid
// OUTPUT: σ'(z) = y ⊙ (1 − y) where y = σ(z).
//
// Taking the derivative from the activation rather than the
// pre-activation avoids recomputing the exponential during the
// backward pass.
func SigmoidPrime(y *tensor.Matrix) *tensor.Matrix {
	return y.Apply(func(v float64) float64 {
		return v * (1.0 - v)
	})
}

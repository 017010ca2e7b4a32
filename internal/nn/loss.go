package nn

import (
	"fmt"
	"math"

	"github.com/handnet-ml/handnet/internal/tensor"
)

// BCE computes the mean binary cross-entropy between predictions and
// binary targets:
//
//	loss = -mean(y·ln(ŷ) + (1−y)·ln(1−ŷ))
//
// This is the MONITORING loss: it is reported per epoch but is not the
// objective the manual gradients descend (that one is squared-error
// style; see FNN.Backward).
//
// Predictions of exactly 0 or 1 produce ±Inf/NaN through the
// logarithm. There is no clamping; the edge case is documented rather
// than guarded.
func BCE(pred, target *tensor.Matrix) float64 {
	mustSameShape("BCE", pred, target)

	p := pred.Data()
	y := target.Data()
	var sum float64
	for i := range p {
		sum += y[i]*math.Log(p[i]) + (1.0-y[i])*math.Log(1.0-p[i])
	}
	return -sum / float64(len(p))
}

// MSE computes the mean squared error mean((ŷ − y)²).
//
// This is the scale-normalized form of the objective the backward
// pass descends, used by the gradient-descent sanity checks.
func MSE(pred, target *tensor.Matrix) float64 {
	mustSameShape("MSE", pred, target)

	p := pred.Data()
	y := target.Data()
	var sum float64
	for i := range p {
		d := p[i] - y[i]
		sum += d * d
	}
	return sum / float64(len(p))
}

// SumSquaredError computes ½ Σ (ŷ − y)², the exact objective whose
// gradient the backward pass produces (dC/dŷ = ŷ − y).
func SumSquaredError(pred, target *tensor.Matrix) float64 {
	mustSameShape("SumSquaredError", pred, target)

	p := pred.Data()
	y := target.Data()
	var sum float64
	for i := range p {
		d := p[i] - y[i]
		sum += d * d
	}
	return 0.5 * sum
}

func mustSameShape(op string, a, b *tensor.Matrix) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("nn.%s: predictions and targets must have the same shape: %v vs %v",
			op, a.Shape(), b.Shape()))
	}
}

// Package nn implements a fixed-topology two-layer feedforward
// network with manually derived backpropagation.
//
// There is no autodiff engine: the backward pass writes out the
// chain-rule expressions for each weight matrix explicitly. The
// network is linear → sigmoid → linear → sigmoid with no bias terms.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/handnet-ml/handnet/internal/tensor"
)

// Config holds the construction parameters of an FNN.
type Config struct {
	InputDim  int     // number of input features (default: 2)
	HiddenDim int     // hidden layer width (default: 32)
	OutputDim int     // number of outputs (default: 1)
	LR        float64 // learning rate (default: 0.001)
}

// FNN is a two-layer feedforward network for binary classification.
//
// Architecture:
//   - Z1 = X @ W1, A1 = σ(Z1)
//   - Z2 = A1 @ W2, A2 = σ(Z2)
//
// W1 has shape [in, hidden], W2 has shape [hidden, out]; there are no
// biases. Weights are drawn uniformly from [-1, 1) using the generator
// passed at construction, so a fixed seed gives a bit-identical
// weight trajectory.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewFNN(nn.Config{}, rng)
//
//	acts, err := model.Forward(x)
//	model.Backward(acts, labels)
type FNN struct {
	inDim     int
	hiddenDim int
	outDim    int
	lr        float64
	w1        *Parameter // [in, hidden]
	w2        *Parameter // [hidden, out]
}

// Activations bundles everything one forward pass produced.
//
// Backward consumes the record for the same batch, which makes the
// forward→backward data dependency an explicit argument instead of
// hidden model state.
type Activations struct {
	X  *tensor.Matrix // input batch           [n, in]
	Z1 *tensor.Matrix // hidden pre-activation [n, hidden]
	A1 *tensor.Matrix // hidden activation     [n, hidden]
	Z2 *tensor.Matrix // output pre-activation [n, out]
	A2 *tensor.Matrix // prediction            [n, out]
}

// NewFNN creates a network with weights initialized from rng.
//
// Zero fields in cfg take the defaults (2, 32, 1, 0.001).
func NewFNN(cfg Config, rng *rand.Rand) *FNN {
	if cfg.InputDim == 0 {
		cfg.InputDim = 2
	}
	if cfg.HiddenDim == 0 {
		cfg.HiddenDim = 32
	}
	if cfg.OutputDim == 0 {
		cfg.OutputDim = 1
	}
	if cfg.LR == 0 {
		cfg.LR = 0.001
	}

	return &FNN{
		inDim:     cfg.InputDim,
		hiddenDim: cfg.HiddenDim,
		outDim:    cfg.OutputDim,
		lr:        cfg.LR,
		w1:        NewParameter("w1", Uniform(rng, cfg.InputDim, cfg.HiddenDim)),
		w2:        NewParameter("w2", Uniform(rng, cfg.HiddenDim, cfg.OutputDim)),
	}
}

// Forward computes predictions for a batch.
//
// Input shape: [n, in]. The returned record holds the prediction in
// A2 along with every intermediate the backward pass needs.
func (n *FNN) Forward(x *tensor.Matrix) (*Activations, error) {
	if x.Cols() != n.inDim {
		return nil, fmt.Errorf("forward: expected input with %d features, got %d", n.inDim, x.Cols())
	}

	z1 := x.MatMul(n.w1.Value())
	a1 := Sigmoid(z1)
	z2 := a1.MatMul(n.w2.Value())
	a2 := Sigmoid(z2)

	return &Activations{X: x, Z1: z1, A1: a1, Z2: z2, A2: a2}, nil
}

// Backward computes the weight gradients for the batch in acts and
// stores them on the parameters.
//
// The gradient descends the squared-error-style objective
// C = ½ Σ (ŷ − y)², taken directly at the output as dC/dŷ = ŷ − y.
// This is NOT the cross-entropy reported for monitoring. The mismatch
// is kept deliberately: unifying the two would change the observable
// training trajectory.
//
// Chain rule, using σ'(z) = a ⊙ (1 − a) on the stored activations:
//
//	δ2  = (A2 − y) ⊙ A2 ⊙ (1 − A2)
//	dW2 = A1ᵀ @ δ2
//	δ1  = (δ2 @ W2ᵀ) ⊙ A1 ⊙ (1 − A1)
//	dW1 = Xᵀ @ δ1
func (n *FNN) Backward(acts *Activations, labels *tensor.Matrix) error {
	if !labels.Shape().Equal(acts.A2.Shape()) {
		return fmt.Errorf("backward: label shape %v does not match prediction shape %v",
			labels.Shape(), acts.A2.Shape())
	}

	delta2 := acts.A2.Sub(labels).MulElem(SigmoidPrime(acts.A2))
	dW2 := acts.A1.T().MatMul(delta2)

	delta1 := delta2.MatMul(n.w2.Value().T()).MulElem(SigmoidPrime(acts.A1))
	dW1 := acts.X.T().MatMul(delta1)

	n.w1.SetGrad(dW1)
	n.w2.SetGrad(dW2)
	return nil
}

// Parameters returns the trainable parameters [w1, w2].
func (n *FNN) Parameters() []*Parameter {
	return []*Parameter{n.w1, n.w2}
}

// W1 returns the input→hidden weight parameter.
func (n *FNN) W1() *Parameter { return n.w1 }

// W2 returns the hidden→output weight parameter.
func (n *FNN) W2() *Parameter { return n.w2 }

// LR returns the learning rate the model was configured with.
func (n *FNN) LR() float64 { return n.lr }

// InputDim returns the number of input features.
func (n *FNN) InputDim() int { return n.inDim }

// HiddenDim returns the hidden layer width.
func (n *FNN) HiddenDim() int { return n.hiddenDim }

// OutputDim returns the number of outputs.
func (n *FNN) OutputDim() int { return n.outDim }

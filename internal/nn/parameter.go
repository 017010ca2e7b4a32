package nn

import (
	"github.com/handnet-ml/handnet/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are matrices that receive a gradient during the backward
// pass and are updated in place by the optimizer. Their shapes are
// fixed at construction and never change.
//
// Example:
//
//	w := nn.NewParameter("w1", nn.Uniform(rng, 2, 32))
//
//	// After a backward pass:
//	grad := w.Grad()
type Parameter struct {
	name  string
	value *tensor.Matrix
	grad  *tensor.Matrix // nil until the first backward pass
}

// NewParameter creates a new trainable parameter.
//
// The value matrix should already be initialized; the gradient is
// allocated by the first backward pass.
func NewParameter(name string, value *tensor.Matrix) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *tensor.Matrix {
	return p.value
}

// Grad returns the gradient matrix, or nil if no backward pass has run
// since the last ZeroGrad.
func (p *Parameter) Grad() *tensor.Matrix {
	return p.grad
}

// SetGrad stores the gradient computed by a backward pass.
//
// Panics if the gradient shape does not match the parameter shape.
func (p *Parameter) SetGrad(grad *tensor.Matrix) {
	if grad != nil && !grad.Shape().Equal(p.value.Shape()) {
		panic("nn.Parameter.SetGrad: gradient shape " + grad.Shape().String() +
			" does not match parameter shape " + p.value.Shape().String())
	}
	p.grad = grad
}

// ZeroGrad clears the gradient.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}

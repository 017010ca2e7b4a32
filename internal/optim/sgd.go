package optim

import (
	"github.com/handnet-ml/handnet/internal/nn"
	"github.com/handnet-ml/handnet/internal/tensor"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// The update is unconditional: whatever gradient the backward pass
// left on a parameter is applied in full, with no clipping and no
// schedule.
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter]*tensor.Matrix
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.001)
	Momentum float64 // momentum factor (default: 0, range [0, 1))
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.001
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*tensor.Matrix),
	}
}

// Step performs a single optimization step.
//
// Parameters whose gradient is nil (no backward pass since the last
// ZeroGrad) are skipped.
func (s *SGD) Step() {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}

		update := grad
		if s.momentum != 0 {
			update = s.advanceVelocity(param, grad)
		}

		// param -= lr * update, written back in place so the
		// parameter matrix identity never changes.
		updated := param.Value().Sub(update.Scale(s.lr))
		copy(param.Value().Data(), updated.Data())
	}
}

// advanceVelocity folds the gradient into the parameter's velocity
// buffer and returns the new velocity.
func (s *SGD) advanceVelocity(param *nn.Parameter, grad *tensor.Matrix) *tensor.Matrix {
	velocity, ok := s.velocities[param]
	if !ok {
		velocity = tensor.New(grad.Rows(), grad.Cols())
	}

	// velocity = momentum * velocity + grad
	velocity = velocity.Scale(s.momentum).Add(grad)
	s.velocities[param] = velocity
	return velocity
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

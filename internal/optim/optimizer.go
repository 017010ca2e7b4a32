// Package optim implements parameter update rules for training.
//
// The model's backward pass leaves gradients on the parameters; an
// optimizer consumes them and mutates the parameter values in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.001})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    acts, _ := model.Forward(x)
//	    model.Backward(acts, labels)
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

// Optimizer is the base interface for parameter update rules.
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient.
	// Parameters without a gradient are skipped.
	Step()

	// ZeroGrad clears all parameter gradients. Call it after Step so
	// gradients never accumulate across iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Package train runs the full-batch training loop and records the
// per-epoch monitoring loss.
package train

import (
	"fmt"
	"io"
	"os"

	"github.com/handnet-ml/handnet/internal/nn"
	"github.com/handnet-ml/handnet/internal/optim"
	"github.com/handnet-ml/handnet/internal/tensor"
)

// Config holds trainer settings.
type Config struct {
	Epochs   int       // number of full-batch epochs (default: 101)
	LogEvery int       // log cadence in epochs; epoch 0 always logs (default: 20)
	Out      io.Writer // destination for progress lines (default: os.Stdout)
}

// Trainer drives forward→backward→update steps over a fixed dataset
// and keeps an append-only history of the monitoring loss, one value
// per epoch in epoch order.
//
// The monitoring loss is binary cross-entropy even though the model's
// gradients descend a squared-error-style objective; Run keeps that
// pairing on purpose.
type Trainer struct {
	model   *nn.FNN
	opt     optim.Optimizer
	cfg     Config
	history []float64
}

// New creates a Trainer. Zero fields in cfg take defaults.
func New(model *nn.FNN, opt optim.Optimizer, cfg Config) *Trainer {
	if cfg.Epochs == 0 {
		cfg.Epochs = 101
	}
	if cfg.LogEvery == 0 {
		cfg.LogEvery = 20
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	return &Trainer{
		model: model,
		opt:   opt,
		cfg:   cfg,
	}
}

// Step runs one atomic full-batch training step: forward, backward,
// parameter update.
func (t *Trainer) Step(x, labels *tensor.Matrix) error {
	acts, err := t.model.Forward(x)
	if err != nil {
		return err
	}
	if err := t.model.Backward(acts, labels); err != nil {
		return err
	}
	t.opt.Step()
	t.opt.ZeroGrad()
	return nil
}

// Run trains for the configured number of epochs and returns the loss
// history.
//
// Each epoch computes one forward pass over the whole dataset, records
// the cross-entropy loss of that pass, logs it on the configured
// cadence as "Epoch {index} | Loss: {value}", and then applies the
// gradient update. The loss recorded for an epoch is therefore the
// loss BEFORE that epoch's update.
func (t *Trainer) Run(x, labels *tensor.Matrix) ([]float64, error) {
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		acts, err := t.model.Forward(x)
		if err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}

		loss := nn.BCE(acts.A2, labels)
		t.history = append(t.history, loss)

		if epoch%t.cfg.LogEvery == 0 {
			fmt.Fprintf(t.cfg.Out, "Epoch %d | Loss: %v\n", epoch, loss)
		}

		if err := t.model.Backward(acts, labels); err != nil {
			return nil, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		t.opt.Step()
		t.opt.ZeroGrad()
	}

	return t.history, nil
}

// History returns the recorded loss sequence.
func (t *Trainer) History() []float64 {
	return t.history
}

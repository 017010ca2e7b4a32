package train

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handnet-ml/handnet/internal/dataset"
	"github.com/handnet-ml/handnet/internal/nn"
	"github.com/handnet-ml/handnet/internal/optim"
)

func newIrisTrainer(t *testing.T, seed int64, cfg Config) (*Trainer, *dataset.Dataset, *nn.FNN) {
	t.Helper()
	model := nn.NewFNN(nn.Config{}, rand.New(rand.NewSource(seed)))
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: model.LR()})
	return New(model, opt, cfg), dataset.Iris(), model
}

func TestRunHistoryLength(t *testing.T) {
	trainer, data, _ := newIrisTrainer(t, 42, Config{Epochs: 101, Out: &bytes.Buffer{}})

	history, err := trainer.Run(data.Features, data.Labels)
	require.NoError(t, err)

	assert.Len(t, history, 101)
	assert.Equal(t, history, trainer.History())
}

func TestRunLossDecreases(t *testing.T) {
	trainer, data, _ := newIrisTrainer(t, 42, Config{Epochs: 101, Out: &bytes.Buffer{}})

	history, err := trainer.Run(data.Features, data.Labels)
	require.NoError(t, err)

	assert.Less(t, history[len(history)-1], history[0],
		"final loss must be below the epoch-0 loss")
}

func TestRunLogCadence(t *testing.T) {
	var out bytes.Buffer
	trainer, data, _ := newIrisTrainer(t, 42, Config{Epochs: 101, Out: &out})

	_, err := trainer.Run(data.Features, data.Labels)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// Epochs 0, 20, 40, 60, 80, 100.
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "Epoch 0 | Loss: "), "got %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Epoch 20 | Loss: "), "got %q", lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "Epoch 100 | Loss: "), "got %q", lines[5])
}

func TestRunDeterministic(t *testing.T) {
	run := func() []float64 {
		trainer, data, _ := newIrisTrainer(t, 42, Config{Epochs: 50, Out: &bytes.Buffer{}})
		history, err := trainer.Run(data.Features, data.Labels)
		require.NoError(t, err)
		return history
	}

	assert.Equal(t, run(), run(), "fixed seed must reproduce the loss sequence exactly")
}

func TestRunPreservesWeightShapes(t *testing.T) {
	trainer, data, model := newIrisTrainer(t, 7, Config{Epochs: 25, Out: &bytes.Buffer{}})

	_, err := trainer.Run(data.Features, data.Labels)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 32}, []int(model.W1().Value().Shape()))
	assert.Equal(t, []int{32, 1}, []int(model.W2().Value().Shape()))
}

func TestStep(t *testing.T) {
	trainer, data, model := newIrisTrainer(t, 7, Config{Out: &bytes.Buffer{}})

	before := model.W1().Value().Clone()
	require.NoError(t, trainer.Step(data.Features, data.Labels))

	assert.NotEqual(t, before.Data(), model.W1().Value().Data(),
		"one training step must move the weights")
	assert.Nil(t, model.W1().Grad(), "gradients are cleared after the update")
}

func TestStepRejectsBadInput(t *testing.T) {
	trainer, data, _ := newIrisTrainer(t, 7, Config{Out: &bytes.Buffer{}})

	bad := data.Features.T() // 2×100: wrong feature count
	require.Error(t, trainer.Step(bad, data.Labels))
}

func TestPlotLoss(t *testing.T) {
	var out bytes.Buffer
	PlotLoss([]float64{1.0, 0.9, 0.8, 0.7, 0.65}, &out)

	assert.Contains(t, out.String(), "training loss per epoch")
	assert.NotEmpty(t, out.String())
}

func TestPlotLossEmptyHistory(t *testing.T) {
	var out bytes.Buffer
	PlotLoss(nil, &out)
	assert.Empty(t, out.String())
}

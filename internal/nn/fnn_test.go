package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/handnet-ml/handnet/internal/tensor"
)

// randomBatch builds a small random batch of features and binary labels.
func randomBatch(rng *rand.Rand, n, features int) (*tensor.Matrix, *tensor.Matrix) {
	x := tensor.New(n, features)
	for i := range x.Data() {
		x.Data()[i] = rng.Float64()
	}
	y := tensor.New(n, 1)
	for i := range y.Data() {
		if rng.Float64() > 0.5 {
			y.Data()[i] = 1
		}
	}
	return x, y
}

// stepSGD applies w <- w - lr*grad to every parameter, the plain
// update rule the optimizer package implements for real.
func stepSGD(model *FNN, lr float64) {
	for _, p := range model.Parameters() {
		updated := p.Value().Sub(p.Grad().Scale(lr))
		copy(p.Value().Data(), updated.Data())
		p.ZeroGrad()
	}
}

func TestNewFNNDefaults(t *testing.T) {
	model := NewFNN(Config{}, rand.New(rand.NewSource(1)))

	assert.Equal(t, 2, model.InputDim())
	assert.Equal(t, 32, model.HiddenDim())
	assert.Equal(t, 1, model.OutputDim())
	assert.InDelta(t, 0.001, model.LR(), 1e-15)
	assert.True(t, model.W1().Value().Shape().Equal(tensor.Shape{2, 32}))
	assert.True(t, model.W2().Value().Shape().Equal(tensor.Shape{32, 1}))
}

func TestForwardShapesAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	model := NewFNN(Config{}, rng)
	x, _ := randomBatch(rng, 100, 2)

	acts, err := model.Forward(x)
	require.NoError(t, err)

	assert.True(t, acts.Z1.Shape().Equal(tensor.Shape{100, 32}))
	assert.True(t, acts.A1.Shape().Equal(tensor.Shape{100, 32}))
	assert.True(t, acts.Z2.Shape().Equal(tensor.Shape{100, 1}))
	assert.True(t, acts.A2.Shape().Equal(tensor.Shape{100, 1}))

	// Sigmoid range property: predictions strictly inside (0, 1).
	for _, v := range acts.A2.Data() {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestForwardRejectsWrongFeatureCount(t *testing.T) {
	model := NewFNN(Config{}, rand.New(rand.NewSource(3)))
	x := tensor.New(10, 3)

	_, err := model.Forward(x)
	require.Error(t, err)
}

func TestBackwardGradientShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	model := NewFNN(Config{}, rng)
	x, y := randomBatch(rng, 16, 2)

	acts, err := model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(acts, y))

	require.NotNil(t, model.W1().Grad())
	require.NotNil(t, model.W2().Grad())
	assert.True(t, model.W1().Grad().Shape().Equal(tensor.Shape{2, 32}))
	assert.True(t, model.W2().Grad().Shape().Equal(tensor.Shape{32, 1}))
}

func TestBackwardRejectsLabelShapeMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	model := NewFNN(Config{}, rng)
	x, _ := randomBatch(rng, 8, 2)

	acts, err := model.Forward(x)
	require.NoError(t, err)

	badLabels := tensor.New(4, 1)
	require.Error(t, model.Backward(acts, badLabels))
}

// The backward pass must produce the exact gradient of
// C = ½ Σ (ŷ − y)². Verified against central finite differences over
// the flattened weight vector.
func TestBackwardMatchesFiniteDifferences(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	model := NewFNN(Config{InputDim: 2, HiddenDim: 4, OutputDim: 1}, rng)
	x, y := randomBatch(rng, 5, 2)

	acts, err := model.Forward(x)
	require.NoError(t, err)
	require.NoError(t, model.Backward(acts, y))

	analytic := append(
		append([]float64{}, model.W1().Grad().Data()...),
		model.W2().Grad().Data()...)

	w1 := model.W1().Value().Data()
	w2 := model.W2().Value().Data()
	n1 := len(w1)
	theta := append(append([]float64{}, w1...), w2...)

	objective := func(th []float64) float64 {
		copy(w1, th[:n1])
		copy(w2, th[n1:])
		a, ferr := model.Forward(x)
		require.NoError(t, ferr)
		return SumSquaredError(a.A2, y)
	}
	numeric := fd.Gradient(nil, objective, theta, &fd.Settings{Formula: fd.Central})

	// Restore the weights the finite differencing perturbed.
	copy(w1, theta[:n1])
	copy(w2, theta[n1:])

	require.Len(t, numeric, len(analytic))
	for i := range analytic {
		assert.InDelta(t, numeric[i], analytic[i], 1e-6, "weight %d", i)
	}
}

func TestOneStepDecreasesSquaredError(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	model := NewFNN(Config{}, rng)
	x, y := randomBatch(rng, 100, 2)

	acts, err := model.Forward(x)
	require.NoError(t, err)
	before := MSE(acts.A2, y)

	require.NoError(t, model.Backward(acts, y))
	stepSGD(model, model.LR())

	after, err := model.Forward(x)
	require.NoError(t, err)
	assert.Less(t, MSE(after.A2, y), before,
		"a small gradient step must not increase the squared-error objective")
}

func TestWeightShapesInvariantAcrossTraining(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	model := NewFNN(Config{}, rng)
	x, y := randomBatch(rng, 100, 2)

	for i := 0; i < 50; i++ {
		acts, err := model.Forward(x)
		require.NoError(t, err)
		require.NoError(t, model.Backward(acts, y))
		stepSGD(model, model.LR())
	}

	assert.True(t, model.W1().Value().Shape().Equal(tensor.Shape{2, 32}))
	assert.True(t, model.W2().Value().Shape().Equal(tensor.Shape{32, 1}))
}

func TestDeterministicTrajectory(t *testing.T) {
	dataRNG := rand.New(rand.NewSource(9))
	x, y := randomBatch(dataRNG, 100, 2)

	run := func(seed int64) []float64 {
		model := NewFNN(Config{}, rand.New(rand.NewSource(seed)))
		for i := 0; i < 25; i++ {
			acts, err := model.Forward(x)
			require.NoError(t, err)
			require.NoError(t, model.Backward(acts, y))
			stepSGD(model, model.LR())
		}
		var weights []float64
		weights = append(weights, model.W1().Value().Data()...)
		weights = append(weights, model.W2().Value().Data()...)
		return weights
	}

	first := run(42)
	second := run(42)
	assert.Equal(t, first, second, "same seed and data must give a bit-identical trajectory")

	other := run(43)
	assert.NotEqual(t, first, other, "a different seed must give a different trajectory")
}

// Package dataset provides the embedded binary Iris subset used for
// training: the first two features (sepal length, sepal width) of the
// setosa and versicolor classes, 50 samples each.
//
// The measurements are Fisher's classic Iris data. Embedding them
// keeps the module self-contained: no files are read at run time.
package dataset

import (
	"gonum.org/v1/gonum/floats"

	"github.com/handnet-ml/handnet/internal/tensor"
)

// Sepal (length, width) pairs, row-major. Setosa first, then versicolor.
var irisSetosa = []float64{
	5.1, 3.5, 4.9, 3.0, 4.7, 3.2, 4.6, 3.1, 5.0, 3.6,
	5.4, 3.9, 4.6, 3.4, 5.0, 3.4, 4.4, 2.9, 4.9, 3.1,
	5.4, 3.7, 4.8, 3.4, 4.8, 3.0, 4.3, 3.0, 5.8, 4.0,
	5.7, 4.4, 5.4, 3.9, 5.1, 3.5, 5.7, 3.8, 5.1, 3.8,
	5.4, 3.4, 5.1, 3.7, 4.6, 3.6, 5.1, 3.3, 4.8, 3.4,
	5.0, 3.0, 5.0, 3.4, 5.2, 3.5, 5.2, 3.4, 4.7, 3.2,
	4.8, 3.1, 5.4, 3.4, 5.2, 4.1, 5.5, 4.2, 4.9, 3.1,
	5.0, 3.2, 5.5, 3.5, 4.9, 3.6, 4.4, 3.0, 5.1, 3.4,
	5.0, 3.5, 4.5, 2.3, 4.4, 3.2, 5.0, 3.5, 5.1, 3.8,
	4.8, 3.0, 5.1, 3.8, 4.6, 3.2, 5.3, 3.7, 5.0, 3.3,
}

var irisVersicolor = []float64{
	7.0, 3.2, 6.4, 3.2, 6.9, 3.1, 5.5, 2.3, 6.5, 2.8,
	5.7, 2.8, 6.3, 3.3, 4.9, 2.4, 6.6, 2.9, 5.2, 2.7,
	5.0, 2.0, 5.9, 3.0, 6.0, 2.2, 6.1, 2.9, 5.6, 2.9,
	6.7, 3.1, 5.6, 3.0, 5.8, 2.7, 6.2, 2.2, 5.6, 2.5,
	5.9, 3.2, 6.1, 2.8, 6.3, 2.5, 6.1, 2.8, 6.4, 2.9,
	6.6, 3.0, 6.8, 2.8, 6.7, 3.0, 6.0, 2.9, 5.7, 2.6,
	5.5, 2.4, 5.5, 2.4, 5.8, 2.7, 6.0, 2.7, 5.4, 3.0,
	6.0, 3.4, 6.7, 3.1, 6.3, 2.3, 5.6, 3.0, 5.5, 2.5,
	5.5, 2.6, 6.1, 3.0, 5.8, 2.6, 5.0, 2.3, 5.6, 2.7,
	5.7, 3.0, 5.7, 2.9, 6.2, 2.9, 5.1, 2.5, 5.7, 2.8,
}

// NumFeatures is the number of features per sample.
const NumFeatures = 2

// Dataset holds an immutable feature matrix with its label vector.
type Dataset struct {
	Features *tensor.Matrix // [n, NumFeatures], L2-row-normalized
	Labels   *tensor.Matrix // [n, 1], values in {0, 1}
}

// NumSamples returns the number of samples.
func (d *Dataset) NumSamples() int {
	return d.Features.Rows()
}

// Iris returns the embedded two-class Iris subset.
//
// Rows 0–49 are setosa (label 0), rows 50–99 versicolor (label 1).
// Each feature row is scaled to unit L2 norm. Every call returns a
// fresh copy, so callers cannot corrupt the embedded data.
func Iris() *Dataset {
	raw := make([]float64, 0, len(irisSetosa)+len(irisVersicolor))
	raw = append(raw, irisSetosa...)
	raw = append(raw, irisVersicolor...)

	n := len(raw) / NumFeatures
	features, err := tensor.FromSlice(raw, n, NumFeatures)
	if err != nil {
		panic(err)
	}
	normalizeRows(features)

	labels := tensor.New(n, 1)
	for i := len(irisSetosa) / NumFeatures; i < n; i++ {
		labels.Set(i, 0, 1)
	}

	return &Dataset{Features: features, Labels: labels}
}

// normalizeRows scales each row of m to unit L2 norm in place.
func normalizeRows(m *tensor.Matrix) {
	data := m.Data()
	cols := m.Cols()
	for i := 0; i < m.Rows(); i++ {
		row := data[i*cols : (i+1)*cols]
		norm := floats.Norm(row, 2)
		if norm == 0 {
			continue
		}
		floats.Scale(1/norm, row)
	}
}

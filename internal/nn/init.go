package nn

import (
	"math/rand"

	"github.com/handnet-ml/handnet/internal/tensor"
)

// Uniform returns a rows×cols matrix with entries drawn uniformly
// from [-1, 1).
//
// The generator is passed explicitly so callers control
// reproducibility; two matrices drawn from generators seeded with the
// same value are identical. The global rand source is never touched.
func Uniform(rng *rand.Rand, rows, cols int) *tensor.Matrix {
	out := tensor.New(rows, cols)
	data := out.Data()
	for i := range data {
		data[i] = rng.Float64()*2.0 - 1.0
	}
	return out
}

// Package tensor provides a dense 2-D float64 matrix type.
//
// The heavy arithmetic (matrix products, transposes) delegates to
// gonum.org/v1/gonum/mat; this package adds shape bookkeeping and the
// elementwise operations the network math needs.
//
// Operations return fresh matrices and never alias their operands.
// Shape mismatches are programmer errors and panic, the same way a
// slice index out of range would.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major 2-D tensor of float64 values.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	y := x.T()        // 3×2
//	z := x.MatMul(y)  // 2×2
type Matrix struct {
	rows int
	cols int
	m    *mat.Dense
}

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) *Matrix {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		panic(fmt.Sprintf("tensor.New: %v", err))
	}
	return &Matrix{rows: rows, cols: cols, m: mat.NewDense(rows, cols, nil)}
}

// FromSlice creates a rows×cols matrix from row-major data.
//
// The slice is copied, not aliased. Returns an error if the slice
// length does not match rows*cols.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	if err := (Shape{rows, cols}).Validate(); err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match shape [%d %d]", len(data), rows, cols)
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Matrix{rows: rows, cols: cols, m: mat.NewDense(rows, cols, buf)}, nil
}

// Rows returns the number of rows.
func (t *Matrix) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Matrix) Cols() int { return t.cols }

// Shape returns the matrix shape as [rows, cols].
func (t *Matrix) Shape() Shape { return Shape{t.rows, t.cols} }

// At returns the element at row i, column j.
func (t *Matrix) At(i, j int) float64 { return t.m.At(i, j) }

// Set stores v at row i, column j.
func (t *Matrix) Set(i, j int, v float64) { t.m.Set(i, j, v) }

// Data returns the backing row-major slice.
//
// The slice aliases the matrix storage; writing through it mutates the
// matrix. This is how in-place parameter updates are performed.
func (t *Matrix) Data() []float64 { return t.m.RawMatrix().Data }

// Raw returns the underlying gonum matrix.
func (t *Matrix) Raw() *mat.Dense { return t.m }

// Clone returns a deep copy.
func (t *Matrix) Clone() *Matrix {
	out := New(t.rows, t.cols)
	out.m.Copy(t.m)
	return out
}

// MatMul computes the matrix product t @ other.
//
// Panics if the inner dimensions do not agree.
func (t *Matrix) MatMul(other *Matrix) *Matrix {
	if t.cols != other.rows {
		panic(fmt.Sprintf("tensor.MatMul: inner dimensions disagree: %v @ %v", t.Shape(), other.Shape()))
	}
	out := New(t.rows, other.cols)
	out.m.Mul(t.m, other.m)
	return out
}

// T returns a materialized transpose.
func (t *Matrix) T() *Matrix {
	out := New(t.cols, t.rows)
	out.m.CloneFrom(t.m.T())
	return out
}

// Add returns t + other elementwise.
func (t *Matrix) Add(other *Matrix) *Matrix {
	t.mustSameShape("Add", other)
	out := New(t.rows, t.cols)
	out.m.Add(t.m, other.m)
	return out
}

// Sub returns t - other elementwise.
func (t *Matrix) Sub(other *Matrix) *Matrix {
	t.mustSameShape("Sub", other)
	out := New(t.rows, t.cols)
	out.m.Sub(t.m, other.m)
	return out
}

// MulElem returns t ⊙ other, the Hadamard product.
func (t *Matrix) MulElem(other *Matrix) *Matrix {
	t.mustSameShape("MulElem", other)
	out := New(t.rows, t.cols)
	out.m.MulElem(t.m, other.m)
	return out
}

// Scale returns c * t.
func (t *Matrix) Scale(c float64) *Matrix {
	out := New(t.rows, t.cols)
	out.m.Scale(c, t.m)
	return out
}

// Apply returns f applied elementwise.
func (t *Matrix) Apply(f func(float64) float64) *Matrix {
	out := New(t.rows, t.cols)
	out.m.Apply(func(_, _ int, v float64) float64 { return f(v) }, t.m)
	return out
}

func (t *Matrix) mustSameShape(op string, other *Matrix) {
	if t.rows != other.rows || t.cols != other.cols {
		panic(fmt.Sprintf("tensor.%s: shape mismatch: %v vs %v", op, t.Shape(), other.Shape()))
	}
}

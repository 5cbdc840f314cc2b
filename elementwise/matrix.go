package elementwise

import (
	"fmt"

	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// Matrix is a rectangular row-major matrix of any element type.
// The zero value and a nil *Matrix are empty 0×0 matrices.
type Matrix[T any] struct {
	rows, cols int
	data       []T
}

// NewMatrix allocates a zeroed rows×cols matrix. It panics if either
// dimension is negative.
func NewMatrix[T any](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("elementwise: negative dimension %d×%d", rows, cols))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// NewMatrixFrom wraps data (row-major, len rows*cols) without copying.
func NewMatrixFrom[T any](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, errors.NewValidationError("dims", "must be non-negative", []int{rows, cols})
	}
	if len(data) != rows*cols {
		return nil, errors.NewDimensionError("NewMatrixFrom", rows*cols, len(data), 0)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows copies a jagged matrix whose rows all have the same length.
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return NewMatrix[T](0, 0), nil
	}
	cols := len(rows[0])
	m := NewMatrix[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.NewRowMismatchError("FromRows", "rows", i, cols, len(row))
		}
		copy(m.data[i*cols:], row)
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (r, c int) {
	if m == nil {
		return 0, 0
	}
	return m.rows, m.cols
}

func (m *Matrix[T]) shape() [2]int {
	r, c := m.Dims()
	return [2]int{r, c}
}

// At returns the element at row i, column j. It panics when out of range.
func (m *Matrix[T]) At(i, j int) T {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set sets the element at row i, column j. It panics when out of range.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix[T]) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("elementwise: index (%d, %d) out of range for %d×%d matrix", i, j, m.rows, m.cols))
	}
}

// Row returns a view of row i sharing storage with m.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("elementwise: row %d out of range for %d rows", i, m.rows))
	}
	return m.data[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
}

// Raw returns the row-major backing slice.
func (m *Matrix[T]) Raw() []T {
	if m == nil {
		return nil
	}
	return m.data
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	r, c := m.Dims()
	out := NewMatrix[T](r, c)
	copy(out.data, m.Raw())
	return out
}

// ToJagged copies m into a jagged matrix.
func (m *Matrix[T]) ToJagged() [][]T {
	r, c := m.Dims()
	out := make([][]T, r)
	for i := range out {
		out[i] = make([]T, c)
		copy(out[i], m.data[i*c:(i+1)*c])
	}
	return out
}

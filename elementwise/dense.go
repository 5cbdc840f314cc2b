package elementwise

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goaccord/core/parallel"
)

func denseShape(m *mat.Dense) [2]int {
	if m == nil || m.IsEmpty() {
		return [2]int{0, 0}
	}
	r, c := m.Dims()
	return [2]int{r, c}
}

// MultiplyAndAddDense computes result = a*b + c for gonum dense matrices.
// result may be a or c. A nil matrix is treated as empty.
func MultiplyAndAddDense(a *mat.Dense, b float64, c, result *mat.Dense) (*mat.Dense, error) {
	shape := denseShape(a)
	if err := checkDims(opMultiplyAndAdd, shape, denseShape(c), denseShape(result)); err != nil {
		return nil, err
	}
	rows, cols := shape[0], shape[1]
	if rows == 0 || cols == 0 {
		return result, nil
	}
	// rows are handed out to workers; threshold is expressed in elements
	parallel.ParallelizeWithThreshold(rows, parallelThreshold/cols, func(start, end int) {
		for i := start; i < end; i++ {
			ar, cr, rr := a.RawRowView(i), c.RawRowView(i), result.RawRowView(i)
			for j := range rr {
				rr[j] = float64(ar[j]*b) + cr[j]
			}
		}
	})
	return result, nil
}

// MultiplyAndAddDenseNew is MultiplyAndAddDense into a new matrix.
func MultiplyAndAddDenseNew(a *mat.Dense, b float64, c *mat.Dense) (*mat.Dense, error) {
	shape := denseShape(a)
	if shape[0] == 0 || shape[1] == 0 {
		return MultiplyAndAddDense(a, b, c, &mat.Dense{})
	}
	return MultiplyAndAddDense(a, b, c, mat.NewDense(shape[0], shape[1], nil))
}

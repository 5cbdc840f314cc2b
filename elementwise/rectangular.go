package elementwise

import (
	"github.com/YuminosukeSato/goaccord/core/parallel"
)

// MultiplyAndAddMatrix computes result = a*b + c for rectangular matrices of
// identical dimensions. result may be the same matrix as a or c. Large
// matrices are processed by several workers; every cell is independent so
// the outcome does not depend on scheduling.
func MultiplyAndAddMatrix[T Number](a *Matrix[T], b T, c, result *Matrix[T]) (*Matrix[T], error) {
	if err := checkDims(opMultiplyAndAdd, a.shape(), c.shape(), result.shape()); err != nil {
		return nil, err
	}
	ad, cd, rd := a.Raw(), c.Raw(), result.Raw()
	parallel.ParallelizeWithThreshold(len(rd), parallelThreshold, func(start, end int) {
		for k := start; k < end; k++ {
			rd[k] = T(ad[k]*b) + cd[k]
		}
	})
	return result, nil
}

// MultiplyAndAddMatrixNew is MultiplyAndAddMatrix into a new matrix.
func MultiplyAndAddMatrixNew[T Number](a *Matrix[T], b T, c *Matrix[T]) (*Matrix[T], error) {
	r, cols := a.Dims()
	return MultiplyAndAddMatrix(a, b, c, NewMatrix[T](r, cols))
}

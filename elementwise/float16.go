package elementwise

import (
	"github.com/x448/float16"
)

// multiplyAndAddHalf rounds to half precision after the multiply and after
// the add. The float32 product of two halves is exact.
func multiplyAndAddHalf(a, b, c float16.Float16) float16.Float16 {
	prod := float16.Fromfloat32(float32(a.Float32() * b.Float32()))
	return float16.Fromfloat32(float32(prod.Float32() + c.Float32()))
}

// MultiplyAndAddFloat16 computes result[i][j] = a[i][j]*b + c[i][j] in half
// precision. Shapes follow the rules of MultiplyAndAdd.
func MultiplyAndAddFloat16(a [][]float16.Float16, b float16.Float16, c, result [][]float16.Float16) ([][]float16.Float16, error) {
	if err := checkJagged(opMultiplyAndAdd, a, c, result); err != nil {
		return nil, err
	}
	for i := range result {
		ai, ci, ri := a[i], c[i], result[i]
		for j := range ri {
			ri[j] = multiplyAndAddHalf(ai[j], b, ci[j])
		}
	}
	return result, nil
}

// MultiplyAndAddFloat16Matrix is the rectangular form of MultiplyAndAddFloat16.
func MultiplyAndAddFloat16Matrix(a *Matrix[float16.Float16], b float16.Float16, c, result *Matrix[float16.Float16]) (*Matrix[float16.Float16], error) {
	if err := checkDims(opMultiplyAndAdd, a.shape(), c.shape(), result.shape()); err != nil {
		return nil, err
	}
	ad, cd, rd := a.Raw(), c.Raw(), result.Raw()
	for k := range rd {
		rd[k] = multiplyAndAddHalf(ad[k], b, cd[k])
	}
	return result, nil
}

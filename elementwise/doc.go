// Package elementwise implements elementwise matrix arithmetic over every
// numeric element type.
//
// The central operation is the scalar multiply-and-accumulate
//
//	result[i][j] = a[i][j]*b + c[i][j]
//
// available for jagged matrices ([][]T), rectangular matrices (*Matrix[T]),
// one-dimensional vectors ([]T), gonum dense matrices (*mat.Dense), decimal
// values (shopspring/decimal) and half precision floats (x448/float16).
//
// All operands must share the same shape. The shape check runs before any
// element is written, so a failed call leaves every buffer untouched. The
// result buffer may be the same as a or c to update in place, and it is
// returned to allow chaining:
//
//	m, err := elementwise.MultiplyAndAdd(a, 2, c, a) // a = 2a + c
//
// Each element type computes in its own arithmetic: integers wrap around,
// floats round per IEEE 754 after the multiply and again after the add, and
// decimals round half-to-even to DecimalPrecision significant digits at the
// same two points.
package elementwise

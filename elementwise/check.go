package elementwise

import (
	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

const opMultiplyAndAdd = "MultiplyAndAdd"

// checkJagged verifies that c and result have exactly the row count and row
// lengths of a.
func checkJagged[T any](op string, a, c, result [][]T) error {
	if err := sameJagged(op, "c", a, c); err != nil {
		return err
	}
	return sameJagged(op, "result", a, result)
}

func sameJagged[T any](op, operand string, want, got [][]T) error {
	if len(want) != len(got) {
		return errors.NewShapeMismatchError(op, operand, []int{len(want)}, []int{len(got)})
	}
	for i := range want {
		if len(want[i]) != len(got[i]) {
			return errors.NewRowMismatchError(op, operand, i, len(want[i]), len(got[i]))
		}
	}
	return nil
}

func checkVector[T any](op string, a, c, result []T) error {
	if len(c) != len(a) {
		return errors.NewShapeMismatchError(op, "c", []int{len(a)}, []int{len(c)})
	}
	if len(result) != len(a) {
		return errors.NewShapeMismatchError(op, "result", []int{len(a)}, []int{len(result)})
	}
	return nil
}

// checkDims compares the (rows, cols) shapes of rectangular operands.
func checkDims(op string, a, c, result [2]int) error {
	if c != a {
		return errors.NewShapeMismatchError(op, "c", a[:], c[:])
	}
	if result != a {
		return errors.NewShapeMismatchError(op, "result", a[:], result[:])
	}
	return nil
}

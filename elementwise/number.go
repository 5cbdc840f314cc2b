package elementwise

import "golang.org/x/exp/constraints"

// Number is the set of element types with native multiply and add.
type Number interface {
	constraints.Integer | constraints.Float
}

// parallelThreshold is the element count above which rectangular operations
// are split over workers.
const parallelThreshold = 1 << 16

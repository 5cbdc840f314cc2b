package elementwise

// MultiplyAndAdd computes result[i][j] = a[i][j]*b + c[i][j] over jagged
// matrices. a, c and result must have the same number of rows and matching
// row lengths. result may alias a or c.
func MultiplyAndAdd[T Number](a [][]T, b T, c, result [][]T) ([][]T, error) {
	if err := checkJagged(opMultiplyAndAdd, a, c, result); err != nil {
		return nil, err
	}
	for i := range result {
		ai, ci, ri := a[i], c[i], result[i]
		for j := range ri {
			// the conversion rounds the product before the add
			ri[j] = T(ai[j]*b) + ci[j]
		}
	}
	return result, nil
}

// MultiplyAndAddNew is MultiplyAndAdd into a freshly allocated matrix with the
// shape of a.
func MultiplyAndAddNew[T Number](a [][]T, b T, c [][]T) ([][]T, error) {
	return MultiplyAndAdd(a, b, c, newJaggedLike[T](a))
}

// MultiplyAndAddVector computes result[i] = a[i]*b + c[i].
func MultiplyAndAddVector[T Number](a []T, b T, c, result []T) ([]T, error) {
	if err := checkVector(opMultiplyAndAdd, a, c, result); err != nil {
		return nil, err
	}
	for i := range result {
		result[i] = T(a[i]*b) + c[i]
	}
	return result, nil
}

// newJaggedLike allocates a jagged matrix with the row lengths of like,
// backed by a single contiguous buffer.
func newJaggedLike[T, U any](like [][]U) [][]T {
	if like == nil {
		return nil
	}
	total := 0
	for _, row := range like {
		total += len(row)
	}
	data := make([]T, total)
	out := make([][]T, len(like))
	offset := 0
	for i, row := range like {
		out[i] = data[offset : offset+len(row) : offset+len(row)]
		offset += len(row)
	}
	return out
}

package elementwise

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

func TestMatrixBasics(t *testing.T) {
	m, err := NewMatrixFrom(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, m.At(1, 2))
	assert.Equal(t, []int{4, 5, 6}, m.Row(1))

	m.Set(0, 1, 20)
	assert.Equal(t, 20, m.At(0, 1))
	assert.Equal(t, [][]int{{1, 20, 3}, {4, 5, 6}}, m.ToJagged())

	clone := m.Clone()
	clone.Set(0, 0, 100)
	assert.Equal(t, 1, m.At(0, 0))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, -1, 0) })
	assert.Panics(t, func() { NewMatrix[int](-1, 2) })

	_, err = NewMatrixFrom(2, 2, []int{1, 2, 3})
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
}

func TestFromRows(t *testing.T) {
	m, err := FromRows([][]float32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, [2]int{3, 2}, [2]int{r, c})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Raw())

	_, err = FromRows([][]float32{{1, 2}, {3}})
	var shapeErr *errors.ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 1, shapeErr.Row)

	empty, err := FromRows[float32](nil)
	require.NoError(t, err)
	r, c = empty.Dims()
	assert.Zero(t, r+c)
}

func TestMultiplyAndAddMatrix(t *testing.T) {
	a, _ := NewMatrixFrom(2, 2, []int32{1, 2, 3, 4})
	c, _ := NewMatrixFrom(2, 2, []int32{10, 10, 10, 10})

	got, err := MultiplyAndAddMatrixNew(a, 5, c)
	require.NoError(t, err)
	assert.Equal(t, []int32{15, 20, 25, 30}, got.Raw())

	// in place on c
	same, err := MultiplyAndAddMatrix(a, 5, c, c)
	require.NoError(t, err)
	assert.Same(t, c, same)
	assert.Equal(t, got.Raw(), c.Raw())
}

func TestMultiplyAndAddMatrixShapeMismatch(t *testing.T) {
	a := NewMatrix[float64](2, 3)
	c := NewMatrix[float64](3, 2)
	result, _ := NewMatrixFrom(2, 3, []float64{9, 9, 9, 9, 9, 9})

	_, err := MultiplyAndAddMatrix(a, 1, c, result)
	var shapeErr *errors.ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "c", shapeErr.Operand)
	assert.Equal(t, []int{2, 3}, shapeErr.Expected)
	assert.Equal(t, []int{3, 2}, shapeErr.Got)
	assert.Equal(t, []float64{9, 9, 9, 9, 9, 9}, result.Raw())

	_, err = MultiplyAndAddMatrix(a, 1, NewMatrix[float64](2, 3), nil)
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "result", shapeErr.Operand)
}

func TestMultiplyAndAddMatrixLargeMatchesSequential(t *testing.T) {
	// above parallelThreshold so the work is split
	const rows, cols = 300, 301
	a := NewMatrix[float64](rows, cols)
	c := NewMatrix[float64](rows, cols)
	for k := range a.Raw() {
		a.Raw()[k] = float64(k%97) * 0.37
		c.Raw()[k] = float64(k%13) - 6
	}

	got, err := MultiplyAndAddMatrixNew(a, 1.7, c)
	require.NoError(t, err)

	jagged, err := MultiplyAndAddNew(a.ToJagged(), 1.7, c.ToJagged())
	require.NoError(t, err)
	assert.Equal(t, jagged, got.ToJagged())
}

func TestMultiplyAndAddDense(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	c := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})

	got, err := MultiplyAndAddDenseNew(a, 2, c)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 4.5, 6.5, 8.5}, got.RawMatrix().Data)

	// in place on a
	same, err := MultiplyAndAddDense(a, 2, c, a)
	require.NoError(t, err)
	assert.Same(t, a, same)
	assert.True(t, mat.Equal(got, a))
}

func TestMultiplyAndAddDenseSubmatrix(t *testing.T) {
	// views carry a stride larger than their column count
	big := mat.NewDense(3, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
	})
	a := big.Slice(0, 2, 1, 3).(*mat.Dense)
	c := mat.NewDense(2, 2, []float64{1, 1, 1, 1})

	got, err := MultiplyAndAddDenseNew(a, 10, c)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{21, 31, 61, 71}), got))
}

func TestMultiplyAndAddDenseShapeMismatch(t *testing.T) {
	a := mat.NewDense(2, 2, nil)
	result := mat.NewDense(2, 2, []float64{7, 7, 7, 7})

	_, err := MultiplyAndAddDense(a, 1, mat.NewDense(2, 3, nil), result)
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
	assert.Equal(t, []float64{7, 7, 7, 7}, result.RawMatrix().Data)

	_, err = MultiplyAndAddDense(a, 1, mat.NewDense(2, 2, nil), nil)
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))

	got, err := MultiplyAndAddDenseNew(&mat.Dense{}, 1, nil)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestMultiplyAndAddDenseLarge(t *testing.T) {
	const rows, cols = 400, 200
	a := mat.NewDense(rows, cols, nil)
	c := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a.Set(i, j, float64(i-j))
			c.Set(i, j, float64(i*j%7))
		}
	}

	got, err := MultiplyAndAddDenseNew(a, -0.5, c)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := float64(a.At(i, j)*-0.5) + c.At(i, j)
			if got.At(i, j) != want {
				t.Fatalf("cell (%d, %d) = %v, want %v", i, j, got.At(i, j), want)
			}
		}
	}
}

func BenchmarkMultiplyAndAddMatrix(b *testing.B) {
	for _, n := range []int{64, 512} {
		a := NewMatrix[float64](n, n)
		c := NewMatrix[float64](n, n)
		result := NewMatrix[float64](n, n)
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := MultiplyAndAddMatrix(a, 0.5, c, result); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

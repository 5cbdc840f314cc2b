package model

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

func TestTransformAll(t *testing.T) {
	got, err := TransformAll(func(x int) (string, error) { return strconv.Itoa(x * 2), nil }, []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "4", "6"}, got)

	got, err = TransformAll(func(x int) (string, error) { return "", nil }, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransformAllInto(t *testing.T) {
	double := func(x float64) (float64, error) { return 2 * x, nil }

	result := make([]float64, 3)
	got, err := TransformAllInto(double, []float64{1, 2, 3}, result)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, got)
	// 同じ配列が返される
	assert.Same(t, &result[0], &got[0])

	_, err = TransformAllInto(double, []float64{1, 2, 3}, make([]float64, 2))
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
}

func TestTransformAllIntoPropagatesErrors(t *testing.T) {
	cause := fmt.Errorf("bad sample")
	_, err := TransformAllInto(func(x int) (int, error) {
		if x == 2 {
			return 0, cause
		}
		return x, nil
	}, []int{1, 2, 3}, make([]int, 3))

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "sample 1")
}

func TestTransformBase(t *testing.T) {
	base := NewTransformBase(4, 1)
	assert.Equal(t, 4, base.NumberOfInputs())
	assert.Equal(t, 1, base.NumberOfOutputs())

	base.SetNumberOfOutputs(3)
	base.SetNumberOfInputs(5)
	assert.Equal(t, 3, base.NumberOfOutputs())
	assert.Equal(t, 5, base.NumberOfInputs())

	var _ Cardinality = &base
}

func TestBaseEstimator(t *testing.T) {
	var e BaseEstimator
	assert.False(t, e.IsFitted())
	e.SetFitted()
	assert.True(t, e.IsFitted())
	e.Reset()
	assert.False(t, e.IsFitted())
}

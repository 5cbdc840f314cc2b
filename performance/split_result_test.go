package performance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/goaccord/core/model"
	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// offsetModel は入力に定数を足すだけのモデル。constant のときは入力を無視する。
type offsetModel struct {
	model.TransformBase
	offset   float64
	constant bool
	calls    int
}

func newOffsetModel(offset float64) *offsetModel {
	return &offsetModel{TransformBase: model.NewTransformBase(1, 1), offset: offset}
}

func (m *offsetModel) Transform(x float64) (float64, error) {
	m.calls++
	if math.IsNaN(x) {
		return 0, errors.NewValueError("offsetModel", "NaN input")
	}
	if m.constant {
		return m.offset, nil
	}
	return x + m.offset, nil
}

func (m *offsetModel) TransformBatch(xs []float64) ([]float64, error) {
	return model.TransformAll(m.Transform, xs)
}

func (m *offsetModel) TransformInto(xs, result []float64) ([]float64, error) {
	return model.TransformAllInto(m.Transform, xs, result)
}

var _ model.Transform[float64, float64] = (*SplitResult[*offsetModel, float64, float64])(nil)

func TestSetResult(t *testing.T) {
	r := NewSetResult("m", "validation", 25, 100, 0.5, 0.04)

	assert.Equal(t, "validation", r.Name)
	assert.Equal(t, "m", r.Model)
	assert.Equal(t, 25, r.NumberOfSamples)
	assert.Equal(t, 0.25, r.Proportion)
	assert.Equal(t, 0.5, r.Value)
	assert.InDelta(t, 0.2, r.StandardDeviation(), 1e-12)

	empty := NewSetResult("m", "training", 0, 0, 0, 0)
	assert.Equal(t, 0.0, empty.Proportion)
}

func TestTrainValSplit(t *testing.T) {
	s := NewTrainValSplit(1, 2)
	s.Tag = "tag"

	assert.Equal(t, 1, s.Training)
	assert.Equal(t, 2, s.Validation)
	assert.Equal(t, "tag", s.Tag)
}

func TestSplitResultNumberOfSamples(t *testing.T) {
	tests := []struct {
		name       string
		training   int
		validation int
		total      int
		average    float64
	}{
		{name: "80/20", training: 80, validation: 20, total: 100, average: 50},
		{name: "odd total", training: 3, validation: 4, total: 7, average: 3.5},
		{name: "empty", training: 0, validation: 0, total: 0, average: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newOffsetModel(1)
			s := NewSplitResult[*offsetModel, float64, float64](m, 3)
			s.SetTraining(NewSetResult(m, "training", tt.training, tt.total, 0, 0))
			s.SetValidation(NewSetResult(m, "validation", tt.validation, tt.total, 0, 0))

			assert.Equal(t, tt.total, s.NumberOfSamples())
			assert.Equal(t, tt.average, s.AverageNumberOfSamples())
			assert.Equal(t, s.Training.NumberOfSamples+s.Validation.NumberOfSamples, s.NumberOfSamples())
		})
	}
}

func TestSplitResultMissingPartition(t *testing.T) {
	m := newOffsetModel(0)
	s := NewSplitResult[*offsetModel, float64, float64](m, 0)
	assert.Equal(t, 0, s.NumberOfSamples())

	s.SetTraining(NewSetResult(m, "training", 10, 10, 0, 0))
	assert.Equal(t, 10, s.NumberOfSamples())
	assert.Equal(t, 5.0, s.AverageNumberOfSamples())
}

func TestSplitResultDelegates(t *testing.T) {
	m := newOffsetModel(10)
	s := NewSplitResult[*offsetModel, float64, float64](m, 2)
	s.Tag = "best"

	assert.Same(t, m, s.Model())
	assert.Equal(t, 2, s.Index)
	assert.Equal(t, "best", s.Tag)

	got, err := s.Transform(1)
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)

	batch, err := s.TransformBatch([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13}, batch)

	buf := make([]float64, 2)
	into, err := s.TransformInto([]float64{0, 5}, buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 15}, buf)
	assert.Same(t, &buf[0], &into[0])

	assert.Equal(t, 6, m.calls)

	// エラーはそのまま返される
	_, err = s.Transform(math.NaN())
	var valueErr *errors.ValueError
	assert.True(t, errors.As(err, &valueErr))

	_, err = s.TransformInto([]float64{1, 2}, make([]float64, 1))
	assert.True(t, errors.Is(err, errors.ErrDimensionMismatch))
}

func TestSplitResultCardinality(t *testing.T) {
	m := newOffsetModel(0)
	s := NewSplitResult[*offsetModel, float64, float64](m, 0)

	assert.Equal(t, 1, s.NumberOfInputs())
	assert.Equal(t, 1, s.NumberOfOutputs())

	s.SetNumberOfOutputs(4)
	assert.Equal(t, 4, s.NumberOfOutputs())
	assert.Equal(t, 4, m.NumberOfOutputs())
	assert.Equal(t, 1, s.NumberOfInputs())
}

// Package preprocessing は特徴量の前処理を提供する。
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/goaccord/core/model"
	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// StandardScaler はデータを平均0、標準偏差1に変換する。
// model.Transform[[]float64, []float64] を実装する。
type StandardScaler struct {
	model.BaseEstimator
	model.TransformBase

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の標準偏差
	Scale []float64

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

var _ model.Transform[[]float64, []float64] = (*StandardScaler)(nil)

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler(true, true)
//	err := scaler.Fit(inputs)
//	scaled, err := scaler.TransformBatch(inputs)
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データから統計情報（平均、標準偏差）を計算する
func (s *StandardScaler) Fit(inputs [][]float64) error {
	if len(inputs) == 0 || len(inputs[0]) == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	c := len(inputs[0])
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	col := make([]float64, len(inputs))
	for j := 0; j < c; j++ {
		for i, row := range inputs {
			if len(row) != c {
				return errors.NewDimensionError("StandardScaler.Fit", c, len(row), 1)
			}
			col[i] = row[j]
		}

		mean, variance := stat.PopMeanVariance(col, nil)
		if s.WithMean {
			s.Mean[j] = mean
		}

		s.Scale[j] = 1.0
		if s.WithStd {
			// 標準偏差が0に近い場合は1のまま（ゼロ除算を避ける）
			if std := math.Sqrt(variance); std >= 1e-8 {
				s.Scale[j] = std
			}
		}
	}

	s.SetNumberOfInputs(c)
	s.SetNumberOfOutputs(c)
	s.SetFitted()
	return nil
}

// Transform は学習済みの統計情報を使って一つのサンプルを標準化する
func (s *StandardScaler) Transform(input []float64) ([]float64, error) {
	if err := s.check("Transform", input); err != nil {
		return nil, err
	}
	out := make([]float64, len(input))
	for j, v := range input {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out, nil
}

// TransformBatch は各サンプルを標準化する
func (s *StandardScaler) TransformBatch(inputs [][]float64) ([][]float64, error) {
	return model.TransformAll(s.Transform, inputs)
}

// TransformInto は各サンプルを標準化して result に格納する
func (s *StandardScaler) TransformInto(inputs [][]float64, result [][]float64) ([][]float64, error) {
	return model.TransformAllInto(s.Transform, inputs, result)
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(inputs [][]float64) ([][]float64, error) {
	if err := s.Fit(inputs); err != nil {
		return nil, err
	}
	return s.TransformBatch(inputs)
}

// InverseTransform は標準化されたサンプルを元のスケールに戻す
func (s *StandardScaler) InverseTransform(input []float64) ([]float64, error) {
	if err := s.check("InverseTransform", input); err != nil {
		return nil, err
	}
	out := make([]float64, len(input))
	for j, v := range input {
		out[j] = v*s.Scale[j] + s.Mean[j]
	}
	return out, nil
}

func (s *StandardScaler) check(method string, input []float64) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError("StandardScaler", method)
	}
	if len(input) != s.NumberOfInputs() {
		return errors.NewDimensionError("StandardScaler."+method, s.NumberOfInputs(), len(input), 1)
	}
	return nil
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t)", s.WithMean, s.WithStd)
	}
	return fmt.Sprintf("StandardScaler(with_mean=%t, with_std=%t, n_features=%d)",
		s.WithMean, s.WithStd, s.NumberOfInputs())
}

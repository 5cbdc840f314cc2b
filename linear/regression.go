// Package linear は線形モデルを提供する。
package linear

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goaccord/core/model"
	"github.com/YuminosukeSato/goaccord/core/parallel"
	"github.com/YuminosukeSato/goaccord/metrics"
	"github.com/YuminosukeSato/goaccord/pkg/errors"
	"github.com/YuminosukeSato/goaccord/pkg/log"
)

// LinearRegression は最小二乗法による線形回帰モデル。
// model.Transform[[]float64, float64] を実装する。
type LinearRegression struct {
	model.BaseEstimator
	model.TransformBase

	Weights   *mat.VecDense // 重み（係数）
	Intercept float64       // 切片

	fitIntercept      bool
	parallelThreshold int
}

var _ model.Transform[[]float64, float64] = (*LinearRegression)(nil)

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{
		TransformBase:     model.NewTransformBase(0, 1),
		fitIntercept:      true,
		parallelThreshold: 1000,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Learn は inputs と outputs で新しいモデルを学習する。
// performance.NewCrossValidation の学習関数として渡せる。
func Learn(ctx context.Context, inputs [][]float64, outputs []float64) (*LinearRegression, error) {
	return LearnWith()(ctx, inputs, outputs)
}

// LearnWith は opts を適用したモデルを学習する関数を返す。
func LearnWith(opts ...Option) func(ctx context.Context, inputs [][]float64, outputs []float64) (*LinearRegression, error) {
	return func(ctx context.Context, inputs [][]float64, outputs []float64) (*LinearRegression, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lr := NewLinearRegression(opts...)
		if err := lr.FitSamples(inputs, outputs); err != nil {
			return nil, err
		}
		return lr, nil
	}
}

// FitSamples はサンプルの配列でモデルを学習させる。
// すべての行は同じ長さでなければならない。
func (lr *LinearRegression) FitSamples(inputs [][]float64, outputs []float64) error {
	if len(inputs) == 0 || len(inputs[0]) == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if len(outputs) != len(inputs) {
		return errors.NewDimensionError("LinearRegression.Fit", len(inputs), len(outputs), 0)
	}

	cols := len(inputs[0])
	X := mat.NewDense(len(inputs), cols, nil)
	for i, row := range inputs {
		if len(row) != cols {
			return errors.NewDimensionError("LinearRegression.Fit", cols, len(row), 1)
		}
		X.SetRow(i, row)
	}
	return lr.Fit(X, mat.NewDense(len(outputs), 1, outputs))
}

// Fit はモデルを訓練データで学習させる
// 正規方程式 w = (X^T * X)^(-1) * X^T * y を使用
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	// 入力の検証
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}

	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}

	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	logger := log.GetLoggerWithName("linear").With(
		log.ModelNameKey, "LinearRegression",
		log.OperationKey, log.OperationFit,
	)
	logger.Debug("fitting", log.SamplesKey, r, log.FeaturesKey, c)

	// 切片項のために X に 1 の列を追加
	// X_with_intercept = [1, X]
	offset := 0
	if lr.fitIntercept {
		offset = 1
	}
	design := mat.NewDense(r, c+offset, nil)

	// ParallelizeWithThresholdを使用して、データサイズに応じて並列化
	parallel.ParallelizeWithThreshold(r, lr.parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			if offset == 1 {
				design.Set(i, 0, 1.0) // 切片項
			}
			for j := 0; j < c; j++ {
				design.Set(i, j+offset, X.At(i, j))
			}
		}
	})

	// 正規方程式を解く
	// (X^T * X)^(-1) * X^T * y
	var XTX mat.Dense
	XTX.Mul(design.T(), design)

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		logger.Warn("normal equation is singular", log.ErrorCodeKey, log.ErrorInvalidInput)
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	yVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}

	var XTy mat.VecDense
	XTy.MulVec(design.T(), yVec)

	weights := mat.NewVecDense(c+offset, nil)
	weights.MulVec(&XTXInv, &XTy)

	// 切片と重みを分離
	lr.Intercept = 0
	if offset == 1 {
		lr.Intercept = weights.AtVec(0)
	}
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, weights.AtVec(i+offset))
	}

	lr.SetNumberOfInputs(c)
	lr.SetFitted()
	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NumberOfInputs() {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NumberOfInputs(), c, 1)
	}

	// 予測: y = X * weights + intercept
	var predictions mat.VecDense
	predictions.MulVec(X, lr.Weights)
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, predictions.AtVec(i)+lr.Intercept)
	}
	return out, nil
}

// Transform は単一のサンプルに対する予測値を返す
func (lr *LinearRegression) Transform(input []float64) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Transform")
	}
	if len(input) != lr.NumberOfInputs() {
		return 0, errors.NewDimensionError("LinearRegression.Transform", lr.NumberOfInputs(), len(input), 1)
	}
	return mat.Dot(mat.NewVecDense(len(input), input), lr.Weights) + lr.Intercept, nil
}

// TransformBatch はサンプルの配列に対する予測値を返す
func (lr *LinearRegression) TransformBatch(inputs [][]float64) ([]float64, error) {
	return model.TransformAll(lr.Transform, inputs)
}

// TransformInto はサンプルの配列に対する予測値を result に格納する
func (lr *LinearRegression) TransformInto(inputs [][]float64, result []float64) ([]float64, error) {
	return model.TransformAllInto(lr.Transform, inputs, result)
}

// GetWeights は学習された重み（係数）を返す
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}
	weights := make([]float64, lr.Weights.Len())
	for i := range weights {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept は学習された切片を返す
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(inputs [][]float64, outputs []float64) (float64, error) {
	pred, err := lr.TransformBatch(inputs)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(outputs, pred)
}

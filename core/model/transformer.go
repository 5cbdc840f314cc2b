// Package model はモデルの共通インターフェースと基底型を提供する。
package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(X, y mat.Matrix) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は入力データに対する予測を行う
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Cardinality はモデルが宣言する入出力の次元数
type Cardinality interface {
	// NumberOfInputs はモデルが受け付ける入力の数を返す
	NumberOfInputs() int

	// NumberOfOutputs はモデルが生成する出力の数を返す
	NumberOfOutputs() int

	// SetNumberOfOutputs は出力の数を設定する
	SetNumberOfOutputs(n int)
}

// Transform は入力 TInput を出力 TOutput に変換するモデルのインターフェース
type Transform[TInput, TOutput any] interface {
	Cardinality

	// Transform は単一の入力を変換する
	Transform(input TInput) (TOutput, error)

	// TransformBatch は入力の集合を変換し、新しいスライスを返す
	TransformBatch(inputs []TInput) ([]TOutput, error)

	// TransformInto は入力の集合を変換し、結果を result に格納して返す。
	// len(result) は len(inputs) と一致しなければならない。
	TransformInto(inputs []TInput, result []TOutput) ([]TOutput, error)
}

// TransformAll は単一入力の変換関数をすべての入力に適用する
func TransformAll[TInput, TOutput any](fn func(TInput) (TOutput, error), inputs []TInput) ([]TOutput, error) {
	return TransformAllInto(fn, inputs, make([]TOutput, len(inputs)))
}

// TransformAllInto は単一入力の変換関数をすべての入力に適用し、結果を result に格納する。
// 途中でエラーが発生した場合、それまでの結果は result に残る。
func TransformAllInto[TInput, TOutput any](fn func(TInput) (TOutput, error), inputs []TInput, result []TOutput) ([]TOutput, error) {
	if len(result) != len(inputs) {
		return nil, errors.NewDimensionError("TransformInto", len(inputs), len(result), 0)
	}
	for i, input := range inputs {
		output, err := fn(input)
		if err != nil {
			return nil, errors.Wrapf(err, "transform of sample %d", i)
		}
		result[i] = output
	}
	return result, nil
}

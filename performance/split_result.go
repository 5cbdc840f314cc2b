package performance

import (
	"github.com/YuminosukeSato/goaccord/core/model"
)

// SplitResult は一つの分割で学習したモデルと、その訓練・検証集合の統計を保持する。
//
// Transform 系のメソッドは検証もエラー変換もせずにモデルへ委譲するため、
// SplitResult 自体も model.Transform[TInput, TOutput] を満たす。
// モデルは SplitResult が排他的に所有し、作成後に差し替えることはできない。
type SplitResult[TModel model.Transform[TInput, TOutput], TInput, TOutput any] struct {
	TrainValSplit[*SetResult[TModel]]

	// Index はこの分割の番号
	Index int

	model TModel
}

// NewSplitResult は学習済みモデルと分割番号から SplitResult を作成する
func NewSplitResult[TModel model.Transform[TInput, TOutput], TInput, TOutput any](m TModel, index int) *SplitResult[TModel, TInput, TOutput] {
	return &SplitResult[TModel, TInput, TOutput]{Index: index, model: m}
}

// Model は分割で学習したモデルを返す
func (s *SplitResult[TModel, TInput, TOutput]) Model() TModel {
	return s.model
}

// SetTraining は訓練集合の統計を設定する
func (s *SplitResult[TModel, TInput, TOutput]) SetTraining(r *SetResult[TModel]) {
	s.Training = r
}

// SetValidation は検証集合の統計を設定する
func (s *SplitResult[TModel, TInput, TOutput]) SetValidation(r *SetResult[TModel]) {
	s.Validation = r
}

// NumberOfSamples は訓練と検証のサンプル数の合計を返す。未設定の集合は 0 として数える。
func (s *SplitResult[TModel, TInput, TOutput]) NumberOfSamples() int {
	return samplesOf(s.Training) + samplesOf(s.Validation)
}

// AverageNumberOfSamples は訓練と検証のサンプル数の平均を返す
func (s *SplitResult[TModel, TInput, TOutput]) AverageNumberOfSamples() float64 {
	return float64(s.NumberOfSamples()) / 2
}

func samplesOf[TModel any](r *SetResult[TModel]) int {
	if r == nil {
		return 0
	}
	return r.NumberOfSamples
}

// NumberOfInputs はモデルの入力数を返す
func (s *SplitResult[TModel, TInput, TOutput]) NumberOfInputs() int {
	return s.model.NumberOfInputs()
}

// NumberOfOutputs はモデルの出力数を返す
func (s *SplitResult[TModel, TInput, TOutput]) NumberOfOutputs() int {
	return s.model.NumberOfOutputs()
}

// SetNumberOfOutputs はモデルの出力数を設定する
func (s *SplitResult[TModel, TInput, TOutput]) SetNumberOfOutputs(n int) {
	s.model.SetNumberOfOutputs(n)
}

// Transform は単一の入力をモデルで変換する
func (s *SplitResult[TModel, TInput, TOutput]) Transform(input TInput) (TOutput, error) {
	return s.model.Transform(input)
}

// TransformBatch は入力の集合をモデルで変換する
func (s *SplitResult[TModel, TInput, TOutput]) TransformBatch(inputs []TInput) ([]TOutput, error) {
	return s.model.TransformBatch(inputs)
}

// TransformInto は入力の集合をモデルで変換し result に格納する
func (s *SplitResult[TModel, TInput, TOutput]) TransformInto(inputs []TInput, result []TOutput) ([]TOutput, error) {
	return s.model.TransformInto(inputs, result)
}

package performance

import (
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/goaccord/core/model"
	"github.com/YuminosukeSato/goaccord/pkg/log"
)

// CrossValidationResult は交差検証の全分割の結果を集約する。
// Training と Validation の Value は分割ごとの損失の平均、
// Variance はその不偏分散、NumberOfSamples は集合の大きさの平均 (切り捨て)。
type CrossValidationResult[TModel model.Transform[TInput, TOutput], TInput, TOutput any] struct {
	TrainValSplit[*SetResult[[]TModel]]

	// Splits は分割番号順の結果
	Splits []*SplitResult[TModel, TInput, TOutput]

	// NumberOfSamples はデータ全体のサンプル数
	NumberOfSamples int
}

func newCrossValidationResult[TModel model.Transform[TInput, TOutput], TInput, TOutput any](splits []*SplitResult[TModel, TInput, TOutput], total int) *CrossValidationResult[TModel, TInput, TOutput] {
	models := make([]TModel, len(splits))
	trainLoss := make([]float64, len(splits))
	valLoss := make([]float64, len(splits))
	var trainN, valN int
	for i, s := range splits {
		models[i] = s.Model()
		trainLoss[i] = s.Training.Value
		valLoss[i] = s.Validation.Value
		trainN += s.Training.NumberOfSamples
		valN += s.Validation.NumberOfSamples
	}

	return &CrossValidationResult[TModel, TInput, TOutput]{
		TrainValSplit: NewTrainValSplit(
			aggregate(models, log.PhaseTraining, trainLoss, trainN/len(splits), total),
			aggregate(models, log.PhaseValidation, valLoss, valN/len(splits), total),
		),
		Splits:          splits,
		NumberOfSamples: total,
	}
}

func aggregate[TModel any](models []TModel, name string, losses []float64, samples, total int) *SetResult[[]TModel] {
	mean, variance := stat.MeanVariance(losses, nil)
	return NewSetResult(models, name, samples, total, mean, variance)
}

// Models は分割番号順に学習済みモデルを返す
func (r *CrossValidationResult[TModel, TInput, TOutput]) Models() []TModel {
	return r.Training.Model
}

// Best は検証損失が最小の分割を返す。同値の場合は番号の小さい分割を返す。
func (r *CrossValidationResult[TModel, TInput, TOutput]) Best() *SplitResult[TModel, TInput, TOutput] {
	var best *SplitResult[TModel, TInput, TOutput]
	for _, s := range r.Splits {
		if best == nil || s.Validation.Value < best.Validation.Value {
			best = s
		}
	}
	return best
}

// TrainingLosses は分割ごとの訓練損失を返す
func (r *CrossValidationResult[TModel, TInput, TOutput]) TrainingLosses() []float64 {
	losses := make([]float64, len(r.Splits))
	for i, s := range r.Splits {
		losses[i] = s.Training.Value
	}
	return losses
}

// ValidationLosses は分割ごとの検証損失を返す
func (r *CrossValidationResult[TModel, TInput, TOutput]) ValidationLosses() []float64 {
	losses := make([]float64, len(r.Splits))
	for i, s := range r.Splits {
		losses[i] = s.Validation.Value
	}
	return losses
}

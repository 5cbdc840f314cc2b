package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/YuminosukeSato/goaccord/core/model"
	"github.com/YuminosukeSato/goaccord/core/parallel"
	"github.com/YuminosukeSato/goaccord/pkg/errors"
	"github.com/YuminosukeSato/goaccord/pkg/log"
)

// Learner は訓練集合からモデルを学習する関数
type Learner[TModel, TInput, TOutput any] func(ctx context.Context, inputs []TInput, outputs []TOutput) (TModel, error)

// Loss は期待値と予測値から損失を計算する関数
type Loss[TOutput any] func(expected, actual []TOutput) (float64, error)

// CrossValidation は k 分割交差検証を実行する
type CrossValidation[TModel model.Transform[TInput, TOutput], TInput, TOutput any] struct {
	learner Learner[TModel, TInput, TOutput]
	loss    Loss[TOutput]
	cfg     config
}

// NewCrossValidation は学習関数と損失関数から CrossValidation を作成する
func NewCrossValidation[TModel model.Transform[TInput, TOutput], TInput, TOutput any](
	learner func(ctx context.Context, inputs []TInput, outputs []TOutput) (TModel, error),
	loss func(expected, actual []TOutput) (float64, error),
	opts ...Option,
) *CrossValidation[TModel, TInput, TOutput] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLoggerWithName("performance")
	}
	return &CrossValidation[TModel, TInput, TOutput]{
		learner: learner,
		loss:    loss,
		cfg:     cfg,
	}
}

// Folds は分割数を返す
func (cv *CrossValidation[TModel, TInput, TOutput]) Folds() int {
	return NewKFold(cv.cfg.folds, false, 0).NSplits
}

// Run は各分割で学習関数を訓練集合に適用し、訓練・検証の両方で損失を測定する。
// 分割ごとの SplitResult の Index は分割番号と一致する。
// 学習関数や損失関数の panic は errors.PanicError として返される。
// ctx がキャンセルされると次の分割を開始せずに終了する。
func (cv *CrossValidation[TModel, TInput, TOutput]) Run(ctx context.Context, inputs []TInput, outputs []TOutput) (*CrossValidationResult[TModel, TInput, TOutput], error) {
	if len(inputs) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "CrossValidation.Run")
	}
	if len(outputs) != len(inputs) {
		return nil, errors.NewDimensionError("CrossValidation.Run", len(inputs), len(outputs), 0)
	}

	kf := NewKFold(cv.cfg.folds, cv.cfg.shuffle, cv.cfg.seed)
	folds, err := kf.Split(len(inputs))
	if err != nil {
		return nil, err
	}

	logger := cv.cfg.logger.With(
		log.OperationKey, log.OperationCrossValidate,
		log.FoldsKey, len(folds),
	)
	logger.Info("cross-validation started", log.SamplesKey, len(inputs))
	start := time.Now()

	splits := make([]*SplitResult[TModel, TInput, TOutput], len(folds))
	err = parallel.ForEach(ctx, len(folds), cv.cfg.workers, func(ctx context.Context, i int) error {
		split, err := cv.runFold(ctx, logger, folds[i], inputs, outputs)
		if err != nil {
			logger.Error("fold failed", err, log.FoldKey, folds[i].Index, log.ErrorCodeKey, errorCode(err))
			return err
		}
		splits[i] = split
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := newCrossValidationResult(splits, len(inputs))
	logger.Info("cross-validation finished",
		log.TrainingLossKey, result.Training.Value,
		log.ValidationLossKey, result.Validation.Value,
		log.VarianceKey, result.Validation.Variance,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (cv *CrossValidation[TModel, TInput, TOutput]) runFold(ctx context.Context, logger log.Logger, fold Fold, inputs []TInput, outputs []TOutput) (*SplitResult[TModel, TInput, TOutput], error) {
	start := time.Now()
	total := len(inputs)
	op := fmt.Sprintf("cross-validation fold %d", fold.Index)

	trainX, trainY := gather(inputs, outputs, fold.TrainIndices)
	valX, valY := gather(inputs, outputs, fold.ValidationIndices)

	m, err := errors.SafeCall(op, func() (TModel, error) {
		return cv.learner(ctx, trainX, trainY)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "fold %d: learning failed", fold.Index)
	}

	trainLoss, err := cv.evaluate(op, m, trainX, trainY)
	if err != nil {
		return nil, errors.Wrapf(err, "fold %d: %s evaluation failed", fold.Index, log.PhaseTraining)
	}
	valLoss, err := cv.evaluate(op, m, valX, valY)
	if err != nil {
		return nil, errors.Wrapf(err, "fold %d: %s evaluation failed", fold.Index, log.PhaseValidation)
	}

	split := NewSplitResult[TModel, TInput, TOutput](m, fold.Index)
	split.SetTraining(NewSetResult(m, log.PhaseTraining, len(trainX), total, trainLoss, 0))
	split.SetValidation(NewSetResult(m, log.PhaseValidation, len(valX), total, valLoss, 0))

	logger.Debug("fold evaluated",
		log.FoldKey, fold.Index,
		log.TrainingSamplesKey, len(trainX),
		log.ValidationSamplesKey, len(valX),
		log.TrainingLossKey, trainLoss,
		log.ValidationLossKey, valLoss,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return split, nil
}

func (cv *CrossValidation[TModel, TInput, TOutput]) evaluate(op string, m TModel, inputs []TInput, expected []TOutput) (float64, error) {
	return errors.SafeCall(op, func() (float64, error) {
		actual, err := m.TransformBatch(inputs)
		if err != nil {
			return 0, err
		}
		return cv.loss(expected, actual)
	})
}

func gather[TInput, TOutput any](inputs []TInput, outputs []TOutput, indices []int) ([]TInput, []TOutput) {
	x := make([]TInput, len(indices))
	y := make([]TOutput, len(indices))
	for i, idx := range indices {
		x[i] = inputs[idx]
		y[i] = outputs[idx]
	}
	return x, y
}

func errorCode(err error) string {
	var panicErr *errors.PanicError
	switch {
	case errors.As(err, &panicErr):
		return log.ErrorPanic
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return log.ErrorCanceled
	case errors.Is(err, errors.ErrDimensionMismatch):
		return log.ErrorDimensionMismatch
	case errors.Is(err, errors.ErrEmptyData):
		return log.ErrorEmptyData
	default:
		return log.ErrorInvalidInput
	}
}

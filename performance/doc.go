// Package performance はモデル検証の結果コンテナと交差検証を提供する。
//
// SetResult は一つのデータ集合 (訓練または検証) で測った損失を保持し、
// TrainValSplit はその二つを対にする。SplitResult は学習済みモデルと
// 両方の集合の統計をまとめ、変換呼び出しをそのままモデルへ委譲する。
//
//	cv := performance.NewCrossValidation(learner, metrics.MSE, performance.WithFolds(5))
//	result, err := cv.Run(ctx, inputs, outputs)
//	if err != nil {
//	    return err
//	}
//	best := result.Best()
//	y, err := best.Transform(x)
package performance

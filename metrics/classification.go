package metrics

import (
	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// ZeroOneLoss は誤分類率（予測が一致しなかった割合）を計算する
func ZeroOneLoss[T comparable](yTrue, yPred []T) (float64, error) {
	if len(yTrue) == 0 {
		return 0, errors.NewValueError("ZeroOneLoss", "empty vector")
	}
	if len(yPred) != len(yTrue) {
		return 0, errors.NewDimensionError("ZeroOneLoss", len(yTrue), len(yPred), 0)
	}

	misses := 0
	for i := range yTrue {
		if yTrue[i] != yPred[i] {
			misses++
		}
	}
	return float64(misses) / float64(len(yTrue)), nil
}

// Accuracy は正解率を計算する
func Accuracy[T comparable](yTrue, yPred []T) (float64, error) {
	loss, err := ZeroOneLoss(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - loss, nil
}

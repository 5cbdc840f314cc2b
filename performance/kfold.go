package performance

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// Fold は k 分割交差検証の一つの分割
type Fold struct {
	Index             int
	TrainIndices      []int
	ValidationIndices []int
}

// KFold はサンプルを k 個の検証集合に分割する
type KFold struct {
	NSplits    int
	Shuffle    bool
	RandomSeed uint64
}

// NewKFold は k 分割の分割器を作成する。nSplits が 2 未満の場合は 5 になる。
func NewKFold(nSplits int, shuffle bool, randomSeed uint64) *KFold {
	if nSplits < 2 {
		nSplits = 5 // Default to 5-fold
	}
	return &KFold{
		NSplits:    nSplits,
		Shuffle:    shuffle,
		RandomSeed: randomSeed,
	}
}

// Split は nSamples 個のサンプルの分割を生成する。
// 検証集合は互いに素で全サンプルを覆い、大きさの差は高々 1。
// 訓練集合の添字は昇順に並ぶ。
func (kf *KFold) Split(nSamples int) ([]Fold, error) {
	if nSamples <= 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "KFold.Split")
	}
	if kf.NSplits > nSamples {
		return nil, errors.NewValidationError("folds", "must not exceed the number of samples", kf.NSplits)
	}

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(kf.RandomSeed, kf.RandomSeed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NSplits)
	foldSize := nSamples / kf.NSplits
	remainder := nSamples % kf.NSplits

	inValidation := make([]bool, nSamples)
	current := 0
	for i := 0; i < kf.NSplits; i++ {
		size := foldSize
		if i < remainder {
			size++
		}

		validation := make([]int, size)
		copy(validation, indices[current:current+size])
		for _, idx := range validation {
			inValidation[idx] = true
		}

		train := make([]int, 0, nSamples-size)
		for j := 0; j < nSamples; j++ {
			if !inValidation[j] {
				train = append(train, j)
			}
		}
		for _, idx := range validation {
			inValidation[idx] = false
		}

		folds[i] = Fold{Index: i, TrainIndices: train, ValidationIndices: validation}
		current += size
	}

	return folds, nil
}

package performance

// TrainValSplit は訓練集合と検証集合の対
type TrainValSplit[T any] struct {
	Training   T
	Validation T

	// Tag は利用者が自由に使える値
	Tag any
}

// NewTrainValSplit は訓練と検証の値から TrainValSplit を作成する
func NewTrainValSplit[T any](training, validation T) TrainValSplit[T] {
	return TrainValSplit[T]{Training: training, Validation: validation}
}

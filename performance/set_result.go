package performance

import (
	"math"
)

// SetResult は一つのデータ集合で測定した性能を表す
type SetResult[TModel any] struct {
	// Name は集合の名前 ("training", "validation" など)
	Name string

	// Model はこの集合に対して評価されたモデル
	Model TModel

	// NumberOfSamples は集合に含まれるサンプル数
	NumberOfSamples int

	// Proportion はデータ全体に占める集合の割合
	Proportion float64

	// Value は集合で測定した損失の値
	Value float64

	// Variance は Value の分散。単一の測定では 0
	Variance float64

	// Tag は利用者が自由に使える値
	Tag any
}

// NewSetResult は SetResult を作成する。totalSamples が 0 以下の場合 Proportion は 0 になる。
func NewSetResult[TModel any](model TModel, name string, numberOfSamples, totalSamples int, value, variance float64) *SetResult[TModel] {
	var proportion float64
	if totalSamples > 0 {
		proportion = float64(numberOfSamples) / float64(totalSamples)
	}
	return &SetResult[TModel]{
		Name:            name,
		Model:           model,
		NumberOfSamples: numberOfSamples,
		Proportion:      proportion,
		Value:           value,
		Variance:        variance,
	}
}

// StandardDeviation は Value の標準偏差を返す
func (r *SetResult[TModel]) StandardDeviation() float64 {
	return math.Sqrt(r.Variance)
}

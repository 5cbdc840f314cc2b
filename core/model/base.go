package model

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

// BaseEstimator は全てのモデルの基底となる構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はモデルが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はモデルを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はモデルを初期状態にリセットする
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}

// TransformBase は Cardinality を実装する埋め込み用の構造体
type TransformBase struct {
	inputs  int
	outputs int
}

// NewTransformBase は入出力の数を指定して TransformBase を作成する
func NewTransformBase(inputs, outputs int) TransformBase {
	return TransformBase{inputs: inputs, outputs: outputs}
}

// NumberOfInputs はモデルが受け付ける入力の数を返す
func (b *TransformBase) NumberOfInputs() int {
	return b.inputs
}

// SetNumberOfInputs は入力の数を設定する
func (b *TransformBase) SetNumberOfInputs(n int) {
	b.inputs = n
}

// NumberOfOutputs はモデルが生成する出力の数を返す
func (b *TransformBase) NumberOfOutputs() int {
	return b.outputs
}

// SetNumberOfOutputs は出力の数を設定する
func (b *TransformBase) SetNumberOfOutputs(n int) {
	b.outputs = n
}

// Package log defines standard attribute keys used across goaccord.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") so that logs can be filtered by prefix.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "LinearRegression", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "cross_validate", "multiply_and_add"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "performance", "elementwise", "linear"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// ShapeKey records the shape of a matrix operand, e.g. [rows cols].
	ShapeKey = "data.shape"

	// DataTypeKey specifies the element type being processed.
	// Examples: "float64", "int32", "decimal"
	DataTypeKey = "data.type"
)

// Validation Context
const (
	// FoldKey records the index of a cross-validation fold.
	FoldKey = "cv.fold"

	// FoldsKey records the total number of folds.
	FoldsKey = "cv.folds"

	// TrainingSamplesKey records the size of a training partition.
	TrainingSamplesKey = "cv.training_samples"

	// ValidationSamplesKey records the size of a validation partition.
	ValidationSamplesKey = "cv.validation_samples"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records a loss value measured on some partition.
	LossKey = "metrics.loss"

	// TrainingLossKey records the loss measured on the training partition.
	TrainingLossKey = "metrics.training_loss"

	// ValidationLossKey records the loss measured on the validation partition.
	ValidationLossKey = "metrics.validation_loss"

	// VarianceKey records the variance of a metric across folds.
	VarianceKey = "metrics.variance"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationFit            = "fit"
	OperationTransform      = "transform"
	OperationCrossValidate  = "cross_validate"
	OperationMultiplyAndAdd = "multiply_and_add"

	PhaseTraining   = "training"
	PhaseValidation = "validation"

	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorPanic             = "PANIC"
	ErrorCanceled          = "CANCELED"
)

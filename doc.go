// Package goaccord provides result containers for model validation and
// elementwise matrix arithmetic for Go.
//
// # Packages
//
//   - performance: SetResult, TrainValSplit and SplitResult, k-fold
//     cross-validation and plots of per-fold losses
//   - elementwise: result = a*b + c over jagged slices, row-major
//     matrices, gonum *mat.Dense, decimals and half-precision floats
//   - linear: least squares linear regression
//   - preprocessing: feature standardization
//   - metrics: regression and classification losses
//   - core/model: the Transform interface and base types
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured errors and panic recovery
//   - pkg/log: structured logging backed by zerolog or log/slog
//
// # Quick Start
//
//	inputs := [][]float64{{1, 0}, {2, 1}, {3, 0}, {4, 1}, {5, 0}, {6, 1}}
//	outputs := []float64{3, 4, 7, 8, 11, 12}
//
//	cv := performance.NewCrossValidation(linear.Learn, metrics.MSE,
//	    performance.WithFolds(3),
//	)
//	result, err := cv.Run(context.Background(), inputs, outputs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("validation MSE:", result.Validation.Value)
//
//	scaled, err := elementwise.MultiplyAndAddNew(inputs, 0.5, inputs)
package goaccord

package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "goaccord: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Transform",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "goaccord: Transform: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Transform", 3, 2, 1)

	want := "goaccord: Transform: dimension mismatch on axis 1 (features). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}

	// センチネルとの比較
	if !Is(err, ErrDimensionMismatch) {
		t.Error("DimensionError should match ErrDimensionMismatch")
	}
}

func TestNewShapeMismatchError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "outer shape",
			err:     NewShapeMismatchError("MultiplyAndAdd", "c", []int{2, 3}, []int{3, 2}),
			wantMsg: "goaccord: MultiplyAndAdd: shape mismatch for c. Expected shape [2 3], got [3 2]",
		},
		{
			name:    "jagged row",
			err:     NewRowMismatchError("MultiplyAndAdd", "result", 1, 4, 5),
			wantMsg: "goaccord: MultiplyAndAdd: shape mismatch for result at row 1. Expected length [4], got [5]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", tt.err.Error(), tt.wantMsg)
			}
			if !Is(tt.err, ErrDimensionMismatch) {
				t.Error("ShapeMismatchError should match ErrDimensionMismatch")
			}
			var shapeErr *ShapeMismatchError
			if !As(tt.err, &shapeErr) {
				t.Fatal("Error should be castable to *ShapeMismatchError")
			}
		})
	}
}

func TestShapeMismatchError_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	shapeErr := &ShapeMismatchError{Op: "MultiplyAndAdd", Operand: "c", Expected: []int{2, 2}, Got: []int{2, 3}, Row: -1}
	logger.Error().Object("error", shapeErr).Msg("failed")

	out := buf.String()
	for _, want := range []string{`"operand":"c"`, `"expected":[2,2]`, `"type":"ShapeMismatchError"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %s should contain %s", out, want)
		}
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("LinearRegression", "Transform")

	want := "goaccord: LinearRegression: this model is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("folds", "must not exceed the number of samples", 10)

	want := "goaccord: validation failed for parameter 'folds': must not exceed the number of samples (got: 10)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("MSE", "empty vector")
	if err.Error() != "goaccord: MSE: empty vector" {
		t.Errorf("Error() = %v", err.Error())
	}
	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestWarn(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(func(w error) {})

	w := NewUndefinedMetricWarning("r2_score", "constant targets", 0)
	Warn(w)

	if len(got) != 1 || got[0] != w {
		t.Fatalf("warning handler received %v", got)
	}

	// zerologが設定されている場合は優先される
	var viaZerolog []error
	SetZerologWarnFunc(func(w error) { viaZerolog = append(viaZerolog, w) })
	defer SetZerologWarnFunc(nil)

	Warn(w)
	if len(viaZerolog) != 1 || len(got) != 1 {
		t.Errorf("zerolog warn func should take precedence, got %d/%d", len(viaZerolog), len(got))
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "in LinearRegression.Fit")

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in LinearRegression.Fit") {
		t.Error("Expected wrapped error to contain wrapping message")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrSingularMatrix, "in %s: fold %d", "CrossValidation", 3)

	if !Is(wrapped, ErrSingularMatrix) {
		t.Error("Expected Is(wrapped, ErrSingularMatrix) to be true")
	}

	expectedMsg := "in CrossValidation: fold 3"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}

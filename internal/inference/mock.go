package inference

import (
	"context"
	"fmt"

	"github.com/foden303/moderation/internal/detect"
)

// Mock is a mock Engine for testing. It returns deterministic results without
// requiring the ONNX shared library or a guard backend.
type Mock[I, R any] struct {
	// DefaultResult is returned for every input unless ResultFunc is set.
	DefaultResult R
	// ResultFunc, if set, derives the result for each input.
	ResultFunc func(I) R
	// ShouldError if true, Infer will return an error.
	ShouldError bool
	// ErrorMessage is the error message to return when ShouldError is true.
	ErrorMessage string
	// CallCount tracks the number of times Infer was called.
	CallCount int
	// BatchSizes records the size of every batch handed to Infer.
	BatchSizes []int
}

// NewMock creates a Mock returning result for every input.
func NewMock[I, R any](result R) *Mock[I, R] {
	return &Mock[I, R]{DefaultResult: result}
}

// NewImageMock creates a mock image engine with a benign default verdict.
func NewImageMock() *Mock[detect.ImageInput, detect.ImageResult] {
	return NewMock[detect.ImageInput](detect.ImageResult{
		IsNSFW:      false,
		NSFWScore:   0.02,
		NormalScore: 0.98,
		Label:       "normal",
		Confidence:  0.98,
	})
}

// NewTextMock creates a mock text engine with a benign default verdict.
func NewTextMock() *Mock[detect.TextInput, detect.TextResult] {
	return NewMock[detect.TextInput](detect.TextResult{
		Flagged:     false,
		SafetyLabel: detect.LabelSafe,
	})
}

// Infer returns one deterministic result per input.
func (m *Mock[I, R]) Infer(ctx context.Context, inputs []I) ([]R, error) {
	m.CallCount++
	m.BatchSizes = append(m.BatchSizes, len(inputs))

	if m.ShouldError {
		if m.ErrorMessage != "" {
			return nil, fmt.Errorf("%s", m.ErrorMessage)
		}
		return nil, fmt.Errorf("mock inference error")
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("empty batch")
	}

	results := make([]R, len(inputs))
	for i, in := range inputs {
		if m.ResultFunc != nil {
			results[i] = m.ResultFunc(in)
		} else {
			results[i] = m.DefaultResult
		}
	}
	return results, nil
}

// ModelName identifies the mock for health reporting.
func (m *Mock[I, R]) ModelName() string { return "mock-model" }

// Device identifies the mock for health reporting.
func (m *Mock[I, R]) Device() string { return "mock" }

// Close is a no-op for the mock implementation.
func (m *Mock[I, R]) Close() error { return nil }

// SetError configures the mock to return an error on subsequent Infer calls.
func (m *Mock[I, R]) SetError(msg string) {
	m.ShouldError = true
	m.ErrorMessage = msg
}

// ClearError clears any configured error.
func (m *Mock[I, R]) ClearError() {
	m.ShouldError = false
	m.ErrorMessage = ""
}

// Ensure Mock implements Engine at compile time.
var _ Engine[detect.ImageInput, detect.ImageResult] = (*Mock[detect.ImageInput, detect.ImageResult])(nil)

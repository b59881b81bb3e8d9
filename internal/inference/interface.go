package inference

import "context"

// Engine runs batched inference for one modality. Infer is handed an
// already-finalized batch and must return exactly one result per input,
// index-aligned: output[i] reports on inputs[i]. Batching policy lives in the
// batch package, never here.
type Engine[I, R any] interface {
	Infer(ctx context.Context, inputs []I) ([]R, error)

	// ModelName identifies the loaded model for health reporting.
	ModelName() string

	// Device describes the execution backend for health reporting.
	Device() string

	// Close releases any resources held by the engine.
	Close() error
}

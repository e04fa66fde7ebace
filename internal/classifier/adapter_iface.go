package classifier

import (
	"context"
	"fmt"
)

// InferenceAdapter abstracts the model runtime used by the Classifier.
type InferenceAdapter interface {
	// Run feeds one preprocessed input tensor through the model and returns
	// the raw output scores. The returned slice is owned by the caller.
	Run(ctx context.Context, input []float32) ([]float32, error)
	// Name identifies the runtime in /status.
	Name() string
	// Close releases any resources associated with the adapter.
	Close() error
}

// outputSizer is implemented by adapters that know their output width before
// the first Run. Load uses it to reject a label file that does not match.
type outputSizer interface {
	OutputSize() int
}

// FuncAdapter adapts a plain function to InferenceAdapter.
type FuncAdapter struct {
	Label string
	Fn    func(ctx context.Context, input []float32) ([]float32, error)
}

func (f FuncAdapter) Run(ctx context.Context, input []float32) ([]float32, error) {
	if f.Fn == nil {
		return nil, fmt.Errorf("func adapter: nil function")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.Fn(ctx, input)
}

func (f FuncAdapter) Name() string {
	if f.Label == "" {
		return "func"
	}
	return f.Label
}

func (FuncAdapter) Close() error { return nil }

// StaticAdapter returns a fixed score vector for every input.
func StaticAdapter(scores ...float32) FuncAdapter {
	return FuncAdapter{Label: "static", Fn: func(context.Context, []float32) ([]float32, error) {
		return append([]float32(nil), scores...), nil
	}}
}

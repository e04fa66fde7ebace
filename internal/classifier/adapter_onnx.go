//go:build onnx

package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// onnxBuilt indicates this binary was compiled with onnxruntime support.
const onnxBuilt = true

var (
	ortOnce    sync.Once
	ortInitErr error
)

// initORT initialises the process-wide onnxruntime environment once. The
// library path of the first call wins.
func initORT(libPath string) error {
	ortOnce.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			ortInitErr = ErrDependencyUnavailable("onnxruntime init: " + err.Error())
		}
	})
	return ortInitErr
}

// onnxAdapter owns one session bound to a fixed pair of tensors, so Run
// calls must not overlap.
type onnxAdapter struct {
	mu      sync.Mutex
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// OpenONNX loads modelPath into an onnxruntime session.
func OpenONNX(modelPath string, opts RuntimeOptions) (InferenceAdapter, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, errors.New("model path is empty")
	}
	if err := initORT(opts.LibraryPath); err != nil {
		return nil, err
	}
	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("read model io: %w", err)
	}
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil, errors.New("model has no inputs or outputs")
	}
	in, err := pickIO(inputs, opts.InputName)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	out, err := pickIO(outputs, opts.OutputName)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	if err := checkShape(in.Dimensions, opts.InputShape); err != nil {
		return nil, err
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(opts.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(concreteDims(out.Dimensions)...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}
	session, err := ort.NewAdvancedSession(modelPath,
		[]string{in.Name}, []string{out.Name},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &onnxAdapter{session: session, input: inputTensor, output: outputTensor}, nil
}

func pickIO(infos []ort.InputOutputInfo, name string) (ort.InputOutputInfo, error) {
	if name == "" {
		return infos[0], nil
	}
	for _, i := range infos {
		if i.Name == name {
			return i, nil
		}
	}
	return ort.InputOutputInfo{}, fmt.Errorf("tensor %q not found in model", name)
}

// concreteDims replaces dynamic dimensions (batch, usually) with 1.
func concreteDims(dims ort.Shape) []int64 {
	out := make([]int64, len(dims))
	for i, d := range dims {
		if d <= 0 {
			d = 1
		}
		out[i] = d
	}
	return out
}

func checkShape(model ort.Shape, want []int64) error {
	if len(model) != len(want) {
		return fmt.Errorf("model input rank %d, expected shape %v", len(model), want)
	}
	for i, d := range model {
		if d > 0 && d != want[i] {
			return fmt.Errorf("model input shape %v, expected %v (check preprocess size/layout)", []int64(model), want)
		}
	}
	return nil
}

func (a *onnxAdapter) Name() string { return "onnxruntime" }

func (a *onnxAdapter) OutputSize() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.output == nil {
		return 0
	}
	return len(a.output.GetData())
}

func (a *onnxAdapter) Run(ctx context.Context, input []float32) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil, errors.New("session closed")
	}
	dst := a.input.GetData()
	if len(input) != len(dst) {
		return nil, fmt.Errorf("input has %d values, model expects %d", len(input), len(dst))
	}
	copy(dst, input)
	if err := a.session.Run(); err != nil {
		return nil, err
	}
	return append([]float32(nil), a.output.GetData()...), nil
}

func (a *onnxAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		a.session.Destroy()
		a.session = nil
	}
	if a.input != nil {
		a.input.Destroy()
		a.input = nil
	}
	if a.output != nil {
		a.output.Destroy()
		a.output = nil
	}
	return nil
}

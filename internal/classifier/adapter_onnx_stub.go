//go:build !onnx

package classifier

// This file provides a no-CGO stub for the ONNX adapter. It is compiled when
// the 'onnx' build tag is NOT set, keeping default builds and CI CGO-free.
// The real adapter lives in adapter_onnx.go (tagged 'onnx').

// onnxBuilt indicates whether this binary was compiled with onnxruntime support.
const onnxBuilt = false

// OpenONNX fails fast: onnxruntime is not available in this build.
func OpenONNX(modelPath string, opts RuntimeOptions) (InferenceAdapter, error) {
	return nil, ErrDependencyUnavailable("onnxruntime support not built (missing 'onnx' build tag)")
}

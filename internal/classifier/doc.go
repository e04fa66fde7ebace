// Package classifier owns the loaded model, its label set and the advisory
// table, and turns a decoded image into a Prediction. It is split into small
// files by concern:
//
//   - classifier.go: Classifier type, Load and simple getters.
//   - config.go: Config and package defaults.
//   - types.go: State and Prediction.
//   - errors.go: typed errors and IsX predicates used by the HTTP layer.
//   - scores.go: the pure part of inference (normalise, argmax, top-K).
//   - predict.go: Predict, the request path.
//   - admission.go: single in-flight inference with a bounded wait queue.
//   - events.go, eventpub_*.go: lifecycle events and publishers.
//   - metrics.go: Prometheus collectors.
//   - sanity.go, status_report.go: startup checks and /status reporting.
//
// Runtimes:
//
//   - ONNX Runtime via yalue/onnxruntime_go, enabled with `-tags=onnx`
//     (adapter_onnx.go). Needs CGO and the onnxruntime shared library.
//   - Without the tag, adapter_onnx_stub.go refuses to open models, so the
//     service starts with the fallback labels and answers predictions with 503.
//   - FuncAdapter wraps a Go function; tests use it to stand in for a model.
package classifier

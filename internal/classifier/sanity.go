package classifier

import "wasteclassd/internal/common/fsutil"

// SanityReport describes startup checks for the model inputs and runtime.
type SanityReport struct {
	RuntimeBuilt   bool   `json:"runtime_built"`
	ModelFound     bool   `json:"model_found"`
	ModelSizeBytes int64  `json:"model_size_bytes,omitempty"`
	LabelsFound    bool   `json:"labels_found"`
	Error          string `json:"error,omitempty"`
}

// SanityCheck validates that the model artifact and label file exist and that
// the binary carries a runtime. It does not mutate state and is safe to call
// at any time, including before Load.
func SanityCheck(cfg Config) SanityReport {
	r := SanityReport{RuntimeBuilt: onnxBuilt || cfg.Adapter != nil}
	if n, err := fsutil.RegularFileSize(cfg.ModelPath); err == nil {
		r.ModelFound = true
		r.ModelSizeBytes = n
	} else if cfg.Adapter == nil {
		r.Error = "model: " + err.Error()
	}
	if _, err := fsutil.RegularFileSize(cfg.LabelsPath); err == nil {
		r.LabelsFound = true
	} else if r.Error == "" {
		r.Error = "labels: " + err.Error()
	}
	if !r.RuntimeBuilt && r.Error == "" {
		r.Error = "onnxruntime support not built (missing 'onnx' build tag)"
	}
	return r
}

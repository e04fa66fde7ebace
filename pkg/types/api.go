package types

// PredictResponse is returned by POST /predict.
type PredictResponse struct {
	// Top-1 label.
	// example: plastic
	Label string `json:"label" example:"plastic"`
	// Probability of the top-1 label.
	// example: 0.93
	Confidence float32 `json:"confidence" example:"0.93"`
	// Probability for every known label, keyed by label name.
	Predictions map[string]float32 `json:"predictions"`
	// Highest scoring labels in descending order.
	Top []LabelScore `json:"top"`
	// Advisory record for the top-1 label; nil when the table has no entry.
	Advisory *Advisory `json:"advisory,omitempty"`
	// Advisory rendered as markdown (fallback text when no record exists).
	Markdown string `json:"markdown"`
}

// LabelsResponse is returned by GET /labels.
type LabelsResponse struct {
	// Labels in model output order.
	Labels []string `json:"labels"`
	// True when the configured label file could not be loaded and the built-in list is used.
	Fallback bool `json:"fallback"`
}

// AdvisoryResponse is returned by GET /advisory/{label}.
type AdvisoryResponse struct {
	// example: metal
	Label string `json:"label" example:"metal"`
	// False when the table has no record for the label.
	Found    bool      `json:"found"`
	Advisory *Advisory `json:"advisory,omitempty"`
	Markdown string    `json:"markdown"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: no image file provided
	Error string `json:"error" example:"no image file provided"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Classifier state: loading, ready, error or closed.
	// example: ready
	State string `json:"state" example:"ready"`
	// Path of the model artifact.
	// example: model_Final.onnx
	ModelPath string `json:"model_path" example:"model_Final.onnx"`
	// Runtime backing the classifier.
	// example: onnxruntime
	Runtime string `json:"runtime" example:"onnxruntime"`
	// Number of labels in use.
	// example: 10
	LabelCount int `json:"label_count" example:"10"`
	// True when the built-in fallback label list is in use.
	FallbackLabels bool `json:"fallback_labels"`
	// Load error, if any.
	LastError string `json:"last_error,omitempty"`
	// Requests waiting for the inference slot.
	QueueLen int `json:"queue_len"`
	// Inference currently running (0 or 1).
	Inflight int `json:"inflight"`
	// Maximum queued requests before backpressure.
	// example: 16
	MaxQueueDepth int `json:"max_queue_depth" example:"16"`
	// Total predictions served since start.
	PredictionsTotal uint64 `json:"predictions_total"`
	// Uptime of the server in seconds.
	UptimeSeconds int64 `json:"uptime_seconds"`
	// Server time in unix seconds.
	ServerTimeUnix int64 `json:"server_time_unix"`
}

package classifier

import (
	"time"

	"wasteclassd/internal/advisory"
	"wasteclassd/internal/preprocess"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultTopK          = 3
	defaultMaxQueueDepth = 16
	defaultMaxWait       = 30 * time.Second
)

// RuntimeOptions configures the ONNX runtime adapter.
type RuntimeOptions struct {
	// LibraryPath points at libonnxruntime; empty uses the platform default.
	LibraryPath string
	// InputName and OutputName select the model tensors; empty discovers the
	// first input and output from the model file.
	InputName  string
	OutputName string
	// InputShape is the fixed input tensor shape, e.g. [1,224,224,3].
	InputShape []int64
}

// Config encapsulates all tunables for Classifier construction.
type Config struct {
	ModelPath  string
	LabelsPath string
	// Advisory defaults to advisory.Default() when nil.
	Advisory   advisory.Table
	Preprocess preprocess.Options
	TopK       int
	// Admission queue for the single inference slot.
	MaxQueueDepth int
	MaxWait       time.Duration
	// Strict makes Load return load errors instead of falling back.
	Strict  bool
	Runtime RuntimeOptions
	// Adapter overrides the runtime opened from ModelPath.
	Adapter   InferenceAdapter
	Publisher EventPublisher
}

func (cfg Config) withDefaults() Config {
	if cfg.Advisory == nil {
		cfg.Advisory = advisory.Default()
	}
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	if cfg.MaxQueueDepth <= 0 {
		cfg.MaxQueueDepth = defaultMaxQueueDepth
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = defaultMaxWait
	}
	if cfg.Publisher == nil {
		cfg.Publisher = noopPublisher{}
	}
	if len(cfg.Runtime.InputShape) == 0 {
		cfg.Runtime.InputShape = cfg.Preprocess.Shape()
	}
	return cfg
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"wasteclassd/internal/common/fsutil"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified": flags set on the command line win, file
// values fill the rest, defaults apply last.
type Config struct {
	Addr string `json:"addr" yaml:"addr" toml:"addr"`
	Port int    `json:"port" yaml:"port" toml:"port"`

	ModelPath    string `json:"model_path" yaml:"model_path" toml:"model_path"`
	LabelsPath   string `json:"labels_path" yaml:"labels_path" toml:"labels_path"`
	AdvisoryPath string `json:"advisory_path" yaml:"advisory_path" toml:"advisory_path"`
	Strict       bool   `json:"strict" yaml:"strict" toml:"strict"`

	InputSize      int    `json:"input_size" yaml:"input_size" toml:"input_size"`
	Layout         string `json:"layout" yaml:"layout" toml:"layout"`
	PreprocessMode string `json:"preprocess_mode" yaml:"preprocess_mode" toml:"preprocess_mode"`
	TopK           int    `json:"top_k" yaml:"top_k" toml:"top_k"`

	ORTLibrary string `json:"ort_library" yaml:"ort_library" toml:"ort_library"`
	InputName  string `json:"input_name" yaml:"input_name" toml:"input_name"`
	OutputName string `json:"output_name" yaml:"output_name" toml:"output_name"`

	MaxQueueDepth         int   `json:"max_queue_depth" yaml:"max_queue_depth" toml:"max_queue_depth"`
	MaxWaitSeconds        int   `json:"max_wait_seconds" yaml:"max_wait_seconds" toml:"max_wait_seconds"`
	PredictTimeoutSeconds int   `json:"predict_timeout_seconds" yaml:"predict_timeout_seconds" toml:"predict_timeout_seconds"`
	MaxUploadBytes        int64 `json:"max_upload_bytes" yaml:"max_upload_bytes" toml:"max_upload_bytes"`
	MaxPixels             int64 `json:"max_pixels" yaml:"max_pixels" toml:"max_pixels"`

	LogLevel string `json:"log_level" yaml:"log_level" toml:"log_level"`

	CORSEnabled        bool     `json:"cors_enabled" yaml:"cors_enabled" toml:"cors_enabled"`
	CORSAllowedOrigins []string `json:"cors_allowed_origins" yaml:"cors_allowed_origins" toml:"cors_allowed_origins"`
	CORSAllowedMethods []string `json:"cors_allowed_methods" yaml:"cors_allowed_methods" toml:"cors_allowed_methods"`
	CORSAllowedHeaders []string `json:"cors_allowed_headers" yaml:"cors_allowed_headers" toml:"cors_allowed_headers"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	p, err := fsutil.ExpandHome(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wasteclassd/internal/advisory"
	"wasteclassd/internal/classifier"
	"wasteclassd/internal/config"
	"wasteclassd/internal/preprocess"
)

// options collects every flag. Precedence: explicit flag, environment
// variable, config file, built-in default.
type options struct {
	configPath string
	addr       string
	port       int
	logLevel   string

	modelPath    string
	labelsPath   string
	advisoryPath string
	strict       bool

	inputSize int
	layout    string
	mode      string
	topK      int

	ortLibrary string
	inputName  string
	outputName string

	maxQueueDepth  int
	maxWait        time.Duration
	predictTimeout time.Duration
	maxUploadBytes int64

	corsEnabled bool
	corsOrigins string
	corsMethods string
	corsHeaders string

	maxPixels      int64

	// fromEnv records flags whose default came from the environment.
	fromEnv map[string]bool
	// envErrs holds environment values that could not be parsed, by flag.
	envErrs map[string]error
}

func newOptions() *options {
	return &options{fromEnv: map[string]bool{}, envErrs: map[string]error{}}
}

func (o *options) envString(flag, key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		o.fromEnv[flag] = true
		return v
	}
	return def
}

func (o *options) envInt(flag, key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			o.envErrs[flag] = fmt.Errorf("invalid %s value %q: must be an integer", key, v)
			return def
		}
		o.fromEnv[flag] = true
		return n
	}
	return def
}

// checkEnv reports unparsable environment values, unless the flag they
// default was given explicitly.
func (o *options) checkEnv(cmd *cobra.Command) error {
	var errs []error
	for flag, err := range o.envErrs {
		if !cmd.Flags().Changed(flag) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// bind registers the flags on cmd with environment defaults.
func (o *options) bind(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&o.configPath, "config", o.envString("config", "WASTECLASSD_CONFIG", ""), "Config file (.yaml/.yml/.json/.toml)")
	f.StringVar(&o.addr, "addr", o.envString("addr", "WASTECLASSD_ADDR", ""), "Listen address; overrides --port when set")
	f.IntVar(&o.port, "port", o.envInt("port", "PORT", 8000), "Listen port on all interfaces (defaults PORT or 8000)")
	f.StringVar(&o.logLevel, "log-level", o.envString("log-level", "WASTECLASSD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")

	f.StringVar(&o.modelPath, "model", o.envString("model", "WASTECLASSD_MODEL", "model_Final.onnx"), "Path to the ONNX model artifact")
	f.StringVar(&o.labelsPath, "labels", o.envString("labels", "WASTECLASSD_LABELS", "labels.json"), "Path to the JSON label list")
	f.StringVar(&o.advisoryPath, "advisory", o.envString("advisory", "WASTECLASSD_ADVISORY", ""), "Advisory override table (.yaml/.json/.toml)")
	f.BoolVar(&o.strict, "strict", false, "Exit when the model or labels fail to load")

	f.IntVar(&o.inputSize, "input-size", preprocess.DefaultSize, "Square input resolution of the model")
	f.StringVar(&o.layout, "layout", string(preprocess.NHWC), "Input tensor layout: nhwc|nchw")
	f.StringVar(&o.mode, "preprocess", string(preprocess.ModeCaffe), "Pixel normalisation: caffe|tf|torch|unit")
	f.IntVar(&o.topK, "top-k", 3, "Number of labels in the ranked result")

	f.StringVar(&o.ortLibrary, "ort-lib", o.envString("ort-lib", "ONNXRUNTIME_LIB", ""), "Path to libonnxruntime (onnx builds only)")
	f.StringVar(&o.inputName, "input-name", "", "Model input tensor name (default: first input)")
	f.StringVar(&o.outputName, "output-name", "", "Model output tensor name (default: first output)")

	f.IntVar(&o.maxQueueDepth, "max-queue", 16, "Requests allowed to wait for the inference slot")
	f.DurationVar(&o.maxWait, "max-wait", 30*time.Second, "Longest time a request waits for the inference slot")
	f.DurationVar(&o.predictTimeout, "predict-timeout", 0, "Per-request prediction timeout (0 disables)")
	f.Int64Var(&o.maxUploadBytes, "max-upload-bytes", 10<<20, "Largest accepted upload")
	f.Int64Var(&o.maxPixels, "max-pixels", preprocess.DefaultMaxPixels, "Largest accepted image in pixels (width*height)")

	f.BoolVar(&o.corsEnabled, "cors", false, "Enable CORS")
	f.StringVar(&o.corsOrigins, "cors-origins", "*", "Comma-separated allowed origins")
	f.StringVar(&o.corsMethods, "cors-methods", "GET,POST,OPTIONS", "Comma-separated allowed methods")
	f.StringVar(&o.corsHeaders, "cors-headers", "Content-Type,X-Log-Level", "Comma-separated allowed headers")
}

// applyFile fills options that were neither set on the command line nor by
// the environment.
func (o *options) applyFile(cmd *cobra.Command) error {
	if o.configPath == "" {
		return nil
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	unset := func(name string) bool {
		return !o.fromEnv[name] && !cmd.Flags().Changed(name)
	}
	str := func(name string, dst *string, v string) {
		if v != "" && unset(name) {
			*dst = v
		}
	}
	num := func(name string, dst *int, v int) {
		if v > 0 && unset(name) {
			*dst = v
		}
	}
	secs := func(name string, dst *time.Duration, v int) {
		if v > 0 && unset(name) {
			*dst = time.Duration(v) * time.Second
		}
	}
	csv := func(name string, dst *string, v []string) {
		if len(v) > 0 && unset(name) {
			*dst = strings.Join(v, ",")
		}
	}

	str("addr", &o.addr, cfg.Addr)
	num("port", &o.port, cfg.Port)
	str("log-level", &o.logLevel, cfg.LogLevel)
	str("model", &o.modelPath, cfg.ModelPath)
	str("labels", &o.labelsPath, cfg.LabelsPath)
	str("advisory", &o.advisoryPath, cfg.AdvisoryPath)
	if cfg.Strict && unset("strict") {
		o.strict = true
	}
	num("input-size", &o.inputSize, cfg.InputSize)
	str("layout", &o.layout, cfg.Layout)
	str("preprocess", &o.mode, cfg.PreprocessMode)
	num("top-k", &o.topK, cfg.TopK)
	str("ort-lib", &o.ortLibrary, cfg.ORTLibrary)
	str("input-name", &o.inputName, cfg.InputName)
	str("output-name", &o.outputName, cfg.OutputName)
	num("max-queue", &o.maxQueueDepth, cfg.MaxQueueDepth)
	secs("max-wait", &o.maxWait, cfg.MaxWaitSeconds)
	secs("predict-timeout", &o.predictTimeout, cfg.PredictTimeoutSeconds)
	if cfg.MaxUploadBytes > 0 && unset("max-upload-bytes") {
		o.maxUploadBytes = cfg.MaxUploadBytes
	}
	if cfg.MaxPixels > 0 && unset("max-pixels") {
		o.maxPixels = cfg.MaxPixels
	}
	if cfg.CORSEnabled && unset("cors") {
		o.corsEnabled = true
	}
	csv("cors-origins", &o.corsOrigins, cfg.CORSAllowedOrigins)
	csv("cors-methods", &o.corsMethods, cfg.CORSAllowedMethods)
	csv("cors-headers", &o.corsHeaders, cfg.CORSAllowedHeaders)
	return nil
}

// listenAddr binds all interfaces on the configured port unless an explicit
// address is given.
func (o *options) listenAddr() string {
	if o.addr != "" {
		return o.addr
	}
	return fmt.Sprintf("0.0.0.0:%d", o.port)
}

// classifierConfig translates the options into a classifier.Config.
func (o *options) classifierConfig() (classifier.Config, error) {
	layout, err := preprocess.ParseLayout(o.layout)
	if err != nil {
		return classifier.Config{}, err
	}
	mode, err := preprocess.ParseMode(o.mode)
	if err != nil {
		return classifier.Config{}, err
	}
	tbl := advisory.Default()
	if o.advisoryPath != "" {
		over, err := advisory.LoadFile(o.advisoryPath)
		if err != nil {
			return classifier.Config{}, err
		}
		tbl = tbl.Merge(over)
	}
	return classifier.Config{
		ModelPath:     o.modelPath,
		LabelsPath:    o.labelsPath,
		Advisory:      tbl,
		Preprocess:    preprocess.Options{Size: o.inputSize, Layout: layout, Mode: mode},
		TopK:          o.topK,
		MaxQueueDepth: o.maxQueueDepth,
		MaxWait:       o.maxWait,
		Strict:        o.strict,
		Runtime: classifier.RuntimeOptions{
			LibraryPath: o.ortLibrary,
			InputName:   o.inputName,
			OutputName:  o.outputName,
		},
	}, nil
}

// splitCSV splits a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

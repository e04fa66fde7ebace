package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "port: 9000\nmodel_path: /srv/model_Final.onnx\nlabels_path: /srv/labels.json\nlayout: nchw\ntop_k: 5\ncors_allowed_origins:\n  - https://a.example\n  - https://b.example\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9000 || cfg.ModelPath != "/srv/model_Final.onnx" || cfg.LabelsPath != "/srv/labels.json" || cfg.Layout != "nchw" || cfg.TopK != 5 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":"127.0.0.1:7070","advisory_path":"/m/advisory.yaml","strict":true,"max_queue_depth":4,"max_upload_bytes":2048,"max_pixels":1000000}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:7070" || cfg.AdvisoryPath != "/m/advisory.yaml" || !cfg.Strict || cfg.MaxQueueDepth != 4 || cfg.MaxUploadBytes != 2048 || cfg.MaxPixels != 1000000 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "preprocess_mode=\"torch\"\ninput_size=256\nort_library=\"/usr/lib/libonnxruntime.so\"\nmax_wait_seconds=3\nlog_level=\"debug\"\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PreprocessMode != "torch" || cfg.InputSize != 256 || cfg.ORTLibrary != "/usr/lib/libonnxruntime.so" || cfg.MaxWaitSeconds != 3 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
}

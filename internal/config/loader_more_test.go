package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MalformedFiles(t *testing.T) {
	d := t.TempDir()
	cases := map[string]string{
		"broken.yaml": "model_path: /m.onnx\n: broken\n",
		"broken.json": `{"model_path": "/m.onnx", "labels_path": }`,
		"broken.toml": "model_path=/m.onnx\nlabels_path\n",
		"type.yml":    "port: eighty\n",
		"type.json":   `{"max_upload_bytes": "big"}`,
	}
	for name, body := range cases {
		p := writeTempFile(t, d, name, body)
		if _, err := Load(p); err == nil {
			t.Fatalf("%s: expected unmarshal error", name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "wasteclassd.yaml")); err == nil {
		t.Fatalf("expected error for nonexistent file")
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeTempFile(t, home, "wasteclassd.yml", "labels_path: ~/labels.json\n")
	cfg, err := Load("~/wasteclassd.yml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// paths inside the file are expanded by the loaders that open them
	if cfg.LabelsPath != "~/labels.json" {
		t.Fatalf("labels_path=%q", cfg.LabelsPath)
	}
}

func TestLoad_UppercaseExtension(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "CFG.JSON")
	if err := os.WriteFile(p, []byte(`{"top_k":4}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil || cfg.TopK != 4 {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}

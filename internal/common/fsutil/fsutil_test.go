package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	if got, err := ExpandHome("/tmp"); err != nil || got != "/tmp" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome(""); err != nil || got != "" {
		t.Fatalf("got %q err=%v", got, err)
	}
	if got, err := ExpandHome("~"); err != nil || got != home {
		t.Fatalf("expected %q, got %q err=%v", home, got, err)
	}
	got, err := ExpandHome("~/models/labels.json")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if want := filepath.Join(home, "models/labels.json"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRegularFileSize(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "model.onnx")
	if err := os.WriteFile(p, make([]byte, 1234), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	n, err := RegularFileSize(p)
	if err != nil || n != 1234 {
		t.Fatalf("size=%d err=%v", n, err)
	}
	if _, err := RegularFileSize(dir); !errors.Is(err, ErrNotRegular) {
		t.Fatalf("expected ErrNotRegular for dir, got %v", err)
	}
	if _, err := RegularFileSize(filepath.Join(dir, "missing")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

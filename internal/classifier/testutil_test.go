package classifier

import (
	"context"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeLabels writes a labels.json file and returns its path.
func writeLabels(t *testing.T, ls ...string) string {
	t.Helper()
	b, err := json.Marshal(ls)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	p := filepath.Join(t.TempDir(), "labels.json")
	if err := os.WriteFile(p, b, 0o644); err != nil {
		t.Fatalf("write labels: %v", err)
	}
	return p
}

// testImage returns a small uniformly coloured image.
func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 12; x++ {
			img.Set(x, y, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
		}
	}
	return img
}

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

// loadStatic builds a ready classifier over a fixed score vector.
func loadStatic(t *testing.T, scores []float32, ls ...string) *Classifier {
	t.Helper()
	c, err := Load(Config{
		LabelsPath: writeLabels(t, ls...),
		Adapter:    StaticAdapter(scores...),
		Strict:     true,
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

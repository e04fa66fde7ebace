package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"wasteclassd/internal/classifier"
	"wasteclassd/internal/httpapi"
)

// writeLabels writes a labels.json with the given names and returns its path.
func writeLabels(t *testing.T, names ...string) string {
	t.Helper()
	b, err := json.Marshal(names)
	if err != nil {
		t.Fatalf("marshal labels: %v", err)
	}
	p := filepath.Join(t.TempDir(), "labels.json")
	if err := os.WriteFile(p, b, 0o644); err != nil {
		t.Fatalf("write labels: %v", err)
	}
	return p
}

func newServer(t *testing.T, cfg classifier.Config) (*httptest.Server, *classifier.Classifier) {
	t.Helper()
	clf, err := classifier.Load(cfg)
	if err != nil {
		t.Fatalf("load classifier: %v", err)
	}
	t.Cleanup(func() { _ = clf.Close() })
	srv := httptest.NewServer(httpapi.NewMux(clf))
	t.Cleanup(srv.Close)
	return srv, clf
}

func photo(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

// imageRequest builds a POST carrying data as the multipart "image" field.
func imageRequest(t *testing.T, url string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, &buf)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func httpPostImage(t *testing.T, url string, data []byte) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.DefaultClient.Do(imageRequest(t, url, data))
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

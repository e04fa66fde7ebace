package httpapi

import (
	"testing"
	"time"

	"wasteclassd/internal/preprocess"
)

func TestSetMaxUploadBytes_DefaultWhenNonPositive(t *testing.T) {
	SetMaxUploadBytes(-1)
	if maxUploadBytes != 10<<20 {
		t.Fatalf("expected default 10MiB, got %d", maxUploadBytes)
	}
	SetMaxUploadBytes(0)
	if maxUploadBytes != 10<<20 {
		t.Fatalf("expected default 10MiB on zero, got %d", maxUploadBytes)
	}
}

func TestSetMaxUploadBytes_PositiveSetsValue(t *testing.T) {
	SetMaxUploadBytes(1234)
	defer SetMaxUploadBytes(0)
	if maxUploadBytes != 1234 {
		t.Fatalf("expected 1234, got %d", maxUploadBytes)
	}
}

func TestSetPredictTimeout_NormalizesNegativeToZero(t *testing.T) {
	defer SetPredictTimeout(0)
	SetPredictTimeout(-5 * time.Second)
	if predictTimeout != 0 {
		t.Fatalf("expected 0, got %s", predictTimeout)
	}
	SetPredictTimeout(3 * time.Second)
	if predictTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %s", predictTimeout)
	}
}

func TestSetCORSOptions_CopiesSlices(t *testing.T) {
	defer SetCORSOptions(false, nil, nil, nil)
	origins := []string{"https://example.org"}
	SetCORSOptions(true, origins, []string{"GET"}, nil)
	origins[0] = "mutated"
	if !corsEnabled || corsAllowedOrigins[0] != "https://example.org" {
		t.Fatalf("unexpected cors state: %v %v", corsEnabled, corsAllowedOrigins)
	}
}

func TestSetMaxPixels_DefaultWhenNonPositive(t *testing.T) {
	SetMaxPixels(100)
	if maxPixels != 100 {
		t.Fatalf("expected 100, got %d", maxPixels)
	}
	SetMaxPixels(0)
	if maxPixels != preprocess.DefaultMaxPixels {
		t.Fatalf("expected default, got %d", maxPixels)
	}
}

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"wasteclassd/internal/classifier"
	"wasteclassd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he.StatusCode()
	case classifier.IsModelUnavailable(err), classifier.IsDependencyUnavailable(err):
		return http.StatusServiceUnavailable
	case classifier.IsTooBusy(err):
		return http.StatusTooManyRequests
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the text shown for a failed prediction.
func userMessage(status int, err error) string {
	switch status {
	case http.StatusServiceUnavailable:
		return "model belum siap: " + err.Error()
	case http.StatusTooManyRequests:
		return "server sedang sibuk, coba lagi sebentar lagi"
	case http.StatusGatewayTimeout:
		return "prediksi melebihi batas waktu"
	default:
		return err.Error()
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeJSON encodes v with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

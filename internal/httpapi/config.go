package httpapi

import (
	"time"

	"wasteclassd/internal/preprocess"
)

const defaultMaxUploadBytes int64 = 10 << 20

// maxUploadBytes controls the maximum allowed multipart upload size.
var maxUploadBytes = defaultMaxUploadBytes

// SetMaxUploadBytes configures the maximum upload size; non-positive restores
// the 10 MiB default.
func SetMaxUploadBytes(n int64) {
	if n <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
		return
	}
	maxUploadBytes = n
}

// maxPixels bounds width*height of an upload before its pixels are decoded.
var maxPixels = preprocess.DefaultMaxPixels

// SetMaxPixels configures the decoded pixel budget; non-positive restores the
// default.
func SetMaxPixels(n int64) {
	if n <= 0 {
		maxPixels = preprocess.DefaultMaxPixels
		return
	}
	maxPixels = n
}

// predictTimeout bounds a single prediction, queue wait included.
// Zero means no additional timeout beyond server/connection timeouts.
var predictTimeout time.Duration

// SetPredictTimeout sets the prediction timeout (0 disables).
func SetPredictTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	predictTimeout = d
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}

package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// defaultLogLevel is read once from WASTECLASSD_REQUEST_LOG; info when unset.
var defaultLogLevel = func() LogLevel {
	v, ok := os.LookupEnv("WASTECLASSD_REQUEST_LOG")
	if !ok {
		return LevelInfo
	}
	return parseLevel(v)
}()

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logPredict records the outcome of one prediction request. Failures are
// logged from LevelError, successes from LevelInfo.
func logPredict(r *http.Request, lvl LogLevel, status int, label string, start time.Time, err error) {
	if lvl == LevelOff || (err == nil && lvl < LevelInfo) {
		return
	}
	dur := time.Since(start)
	if zlog == nil {
		log.Printf("predict end path=%s status=%d label=%s dur=%s err=%v", r.URL.Path, status, label, dur, err)
		return
	}
	z := zlog.Info()
	if err != nil {
		z = zlog.Warn().Err(err)
	}
	z = z.Str("path", r.URL.Path).Int("status", status).Dur("dur", dur)
	if label != "" {
		z = z.Str("label", label)
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("predict end")
}

// logUpload records the received file at debug level.
func logUpload(r *http.Request, lvl LogLevel, filename string, size int64, format string, w, h int) {
	if lvl < LevelDebug {
		return
	}
	if zlog == nil {
		log.Printf("upload file=%s size=%d format=%s dims=%dx%d", filename, size, format, w, h)
		return
	}
	z := zlog.Info().Str("file", filename).Int64("size", size).Str("format", format).Int("width", w).Int("height", h)
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("upload")
}

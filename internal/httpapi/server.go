package httpapi

import (
	"context"
	"errors"
	"image"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wasteclassd/internal/advisory"
	"wasteclassd/internal/classifier"
	"wasteclassd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Predict(ctx context.Context, img image.Image) (classifier.Prediction, error)
	Labels() ([]string, bool)
	Advisory() advisory.Table
	Status() types.StatusResponse
	Ready() bool
}

type handlers struct {
	svc Service
	ui  *ui
}

func NewMux(svc Service) http.Handler {
	h := &handlers{svc: svc, ui: newUI()}
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.Get("/", h.index)
	r.Post("/", h.submit)
	r.Post("/predict", h.predict)
	r.Get("/labels", h.labels)
	r.Get("/advisory/{label}", h.advisory)
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model not loaded"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// classify runs the shared upload -> predict path and returns the HTTP status.
func (h *handlers) classify(w http.ResponseWriter, r *http.Request) (classifier.Prediction, int, error) {
	start := time.Now()
	lvl := requestLogLevel(r)
	img, err := readUpload(w, r)
	if err != nil {
		status := statusFor(err)
		logPredict(r, lvl, status, "", start, err)
		return classifier.Prediction{}, status, err
	}
	ctx, cancel := predictContext(r.Context())
	defer cancel()
	p, err := h.svc.Predict(ctx, img)
	if err != nil {
		status := statusFor(err)
		if r.Context().Err() != nil || serverBaseCtx.Err() != nil {
			// client went away or server is shutting down
			status = 499
		}
		logPredict(r, lvl, status, "", start, err)
		return classifier.Prediction{}, status, err
	}
	logPredict(r, lvl, http.StatusOK, p.Label, start, nil)
	return p, http.StatusOK, nil
}

// predict godoc
// @Summary      Classify an uploaded image
// @Description  Returns the probability for every label, the top-3 labels and the advisory for the top-1 label.
// @Tags         predict
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Photo of the waste item"
// @Success      200  {object}  types.PredictResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      415  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /predict [post]
func (h *handlers) predict(w http.ResponseWriter, r *http.Request) {
	p, status, err := h.classify(w, r)
	if err != nil {
		var ue *uploadError
		if errors.As(err, &ue) {
			writeJSONError(w, status, ue.msg)
			return
		}
		writeJSONError(w, status, err.Error())
		return
	}
	ls, _ := h.svc.Labels()
	writeJSON(w, p.Response(ls))
}

// labels godoc
// @Summary  List labels in model output order
// @Tags     labels
// @Produce  json
// @Success  200  {object}  types.LabelsResponse
// @Router   /labels [get]
func (h *handlers) labels(w http.ResponseWriter, r *http.Request) {
	ls, fallback := h.svc.Labels()
	writeJSON(w, types.LabelsResponse{Labels: ls, Fallback: fallback})
}

// advisory godoc
// @Summary      Advisory record for a label
// @Description  Always 200; found=false and the fallback text when the label has no record.
// @Tags         advisory
// @Produce      json
// @Param        label  path  string  true  "Label name"
// @Success      200  {object}  types.AdvisoryResponse
// @Router       /advisory/{label} [get]
func (h *handlers) advisory(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	if u, err := url.PathUnescape(label); err == nil {
		label = u
	}
	tbl := h.svc.Advisory()
	resp := types.AdvisoryResponse{Label: label, Markdown: tbl.Markdown(label)}
	if rec, ok := tbl.Lookup(label); ok {
		resp.Found = true
		resp.Advisory = &rec
	}
	writeJSON(w, resp)
}

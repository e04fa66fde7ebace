package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"wasteclassd/internal/classifier"
	"wasteclassd/internal/httpapi"
)

const shutdownTimeout = 5 * time.Second

func runServe(parent context.Context, o *options, logger zerolog.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := o.classifierConfig()
	if err != nil {
		return err
	}
	cfg.Publisher = classifier.NewLogPublisher(logger)

	report := classifier.SanityCheck(cfg)
	ev := logger.Info()
	if report.Error != "" {
		ev = logger.Warn().Str("problem", report.Error)
	}
	ev.Bool("runtime_built", report.RuntimeBuilt).
		Bool("model_found", report.ModelFound).
		Int64("model_bytes", report.ModelSizeBytes).
		Bool("labels_found", report.LabelsFound).
		Msg("sanity check")

	clf, err := classifier.Load(cfg)
	if err != nil {
		return fmt.Errorf("load classifier: %w", err)
	}
	defer clf.Close()
	if !clf.Ready() {
		logger.Warn().Msg("model not loaded; serving with fallback labels, predictions return 503")
	}

	httpapi.SetLogger(logger)
	httpapi.SetMaxUploadBytes(o.maxUploadBytes)
	httpapi.SetMaxPixels(o.maxPixels)
	httpapi.SetPredictTimeout(o.predictTimeout)
	httpapi.SetCORSOptions(o.corsEnabled, splitCSV(o.corsOrigins), splitCSV(o.corsMethods), splitCSV(o.corsHeaders))

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	httpapi.SetBaseContext(ctx)

	addr := o.listenAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewMux(clf),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("model", cfg.ModelPath).Str("labels", cfg.LabelsPath).Msg("wasteclassd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

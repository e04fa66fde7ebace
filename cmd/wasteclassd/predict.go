package main

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/rs/zerolog"

	"wasteclassd/internal/classifier"
	"wasteclassd/internal/common/fsutil"
	"wasteclassd/internal/preprocess"
)

// runPredict classifies one image file without starting the server.
func runPredict(ctx context.Context, o *options, logger zerolog.Logger, path string, markdown bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := o.classifierConfig()
	if err != nil {
		return err
	}
	// a one-shot run has no use for fallback labels
	cfg.Strict = true
	cfg.Publisher = classifier.NewLogPublisher(logger)
	clf, err := classifier.Load(cfg)
	if err != nil {
		return fmt.Errorf("load classifier: %w", err)
	}
	defer clf.Close()
	return predictFile(ctx, clf, path, o.maxPixels, markdown, out)
}

type predictor interface {
	Predict(ctx context.Context, img image.Image) (classifier.Prediction, error)
	Labels() ([]string, bool)
}

func predictFile(ctx context.Context, p predictor, path string, maxPixels int64, markdown bool, out io.Writer) error {
	full, err := fsutil.ExpandHome(path)
	if err != nil {
		return err
	}
	f, err := os.Open(full)
	if err != nil {
		return err
	}
	defer f.Close()
	img, _, err := preprocess.DecodeLimited(f, maxPixels)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	pred, err := p.Predict(ctx, img)
	if err != nil {
		return err
	}
	if markdown {
		_, err = fmt.Fprintln(out, pred.Markdown)
		return err
	}
	ls, _ := p.Labels()
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(pred.Response(ls))
}

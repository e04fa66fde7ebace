package classifier

import (
	"context"
	"fmt"
	"image"
	"time"

	"wasteclassd/internal/preprocess"
)

// Predict classifies img and attaches the advisory for the top-1 label.
func (c *Classifier) Predict(ctx context.Context, img image.Image) (Prediction, error) {
	c.mu.RLock()
	adapter, ls, cause := c.adapter, c.labels, c.err
	ready := c.state == StateReady
	c.mu.RUnlock()
	if !ready || adapter == nil {
		return Prediction{}, ErrModelUnavailable(cause)
	}

	input, err := preprocess.Tensor(img, c.pre)
	if err != nil {
		return Prediction{}, fmt.Errorf("preprocess: %w", err)
	}

	release, err := c.beginInference(ctx)
	if err != nil {
		if IsTooBusy(err) {
			rejectedTotal.Inc()
		}
		return Prediction{}, err
	}
	start := time.Now()
	scores, err := adapter.Run(ctx, input)
	release()
	inferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Prediction{}, fmt.Errorf("inference: %w", err)
	}

	p, err := Classify(scores, ls, c.topK)
	if err != nil {
		return Prediction{}, err
	}
	if r, ok := c.advisory.Lookup(p.Label); ok {
		p.Advisory = &r
	}
	p.Markdown = c.advisory.Markdown(p.Label)

	c.predictions.Add(1)
	predictionsTotal.WithLabelValues(p.Label).Inc()
	c.publisher.Publish(Event{Name: "prediction", Label: p.Label, Fields: map[string]any{
		"confidence": p.Confidence,
		"dur_ms":     time.Since(start).Milliseconds(),
	}})
	return p, nil
}

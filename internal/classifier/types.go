package classifier

import (
	"wasteclassd/internal/advisory"
	"wasteclassd/pkg/types"
)

// State represents the lifecycle state of the classifier.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
	// StateClosed follows Close; the runtime has been released.
	StateClosed  State = "closed"
)

// Prediction is the result of one inference.
type Prediction struct {
	// Label is the top-1 class, Index its position in the label list.
	Label      string
	Index      int
	Confidence float32
	// Scores holds one probability per label, in label order.
	Scores []float32
	// Top holds the highest scoring labels in descending order.
	Top []types.LabelScore
	// Advisory is nil when the table has no record for Label.
	Advisory *advisory.Record
	Markdown string
}

// Probabilities maps every label to its probability.
func (p Prediction) Probabilities(labels []string) map[string]float32 {
	out := make(map[string]float32, len(labels))
	for i, l := range labels {
		if i < len(p.Scores) {
			out[l] = p.Scores[i]
		}
	}
	return out
}

// Response converts the prediction to its JSON payload.
func (p Prediction) Response(labels []string) types.PredictResponse {
	return types.PredictResponse{
		Label:       p.Label,
		Confidence:  p.Confidence,
		Predictions: p.Probabilities(labels),
		Top:         append([]types.LabelScore(nil), p.Top...),
		Advisory:    p.Advisory,
		Markdown:    p.Markdown,
	}
}

package classifier

import (
	"math"
	"sort"

	"wasteclassd/pkg/types"
)

// Classify maps raw model scores onto labels: it checks the lengths agree,
// normalises the scores into [0,1], picks the top-1 label (first index wins
// ties) and the topK ranking. Advisory fields are left empty.
func Classify(scores []float32, labels []string, topK int) (Prediction, error) {
	if len(scores) != len(labels) || len(labels) == 0 {
		return Prediction{}, shapeMismatchError{labels: len(labels), outputs: len(scores)}
	}
	probs := normalizeScores(scores)
	best := 0
	for i := 1; i < len(probs); i++ {
		if probs[i] > probs[best] {
			best = i
		}
	}
	return Prediction{
		Label:      labels[best],
		Index:      best,
		Confidence: probs[best],
		Scores:     probs,
		Top:        topScores(probs, labels, topK),
	}, nil
}

// normalizeScores returns a copy of scores with NaN replaced by 0. If any
// value then lies outside [0,1] the output is treated as logits and a softmax
// is applied.
func normalizeScores(scores []float32) []float32 {
	out := make([]float32, len(scores))
	logits := false
	for i, v := range scores {
		if math.IsNaN(float64(v)) {
			v = 0
		}
		if v < 0 || v > 1 {
			logits = true
		}
		out[i] = v
	}
	if logits {
		softmax(out)
	}
	return out
}

func softmax(v []float32) {
	xs := make([]float64, len(v))
	maxV := math.Inf(-1)
	for i, f := range v {
		x := float64(f)
		// keep infinities finite so the max shift stays defined
		x = math.Max(-math.MaxFloat32, math.Min(math.MaxFloat32, x))
		xs[i] = x
		if x > maxV {
			maxV = x
		}
	}
	var sum float64
	for i, x := range xs {
		xs[i] = math.Exp(x - maxV)
		sum += xs[i]
	}
	for i := range v {
		v[i] = float32(xs[i] / sum)
	}
}

func topScores(probs []float32, labels []string, k int) []types.LabelScore {
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return probs[idx[a]] > probs[idx[b]] })
	if k <= 0 || k > len(idx) {
		k = len(idx)
	}
	out := make([]types.LabelScore, k)
	for i := 0; i < k; i++ {
		out[i] = types.LabelScore{Label: labels[idx[i]], Probability: probs[idx[i]]}
	}
	return out
}

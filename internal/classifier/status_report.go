package classifier

import (
	"time"

	"wasteclassd/pkg/types"
)

// Status builds a detailed status response for /status.
func (c *Classifier) Status() types.StatusResponse {
	c.mu.RLock()
	defer c.mu.RUnlock()
	now := time.Now()
	return types.StatusResponse{
		State:            string(c.state),
		ModelPath:        c.modelPath,
		Runtime:          c.runtime,
		LabelCount:       len(c.labels),
		FallbackLabels:   c.fallback,
		LastError:        c.err,
		QueueLen:         len(c.queueCh) - len(c.genCh),
		Inflight:         len(c.genCh),
		MaxQueueDepth:    cap(c.queueCh),
		PredictionsTotal: c.predictions.Load(),
		UptimeSeconds:    int64(now.Sub(c.startTime).Seconds()),
		ServerTimeUnix:   now.Unix(),
	}
}

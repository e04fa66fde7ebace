package classifier

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"wasteclassd/internal/advisory"
	"wasteclassd/internal/labels"
	"wasteclassd/internal/preprocess"
)

// Classifier is safe for concurrent use. Labels, advisory table and adapter
// are fixed after Load; inference is serialised by the admission queue.
type Classifier struct {
	mu        sync.RWMutex
	state     State
	err       string
	labels    []string
	fallback  bool
	adapter   InferenceAdapter
	runtime   string
	modelPath string

	advisory  advisory.Table
	pre       preprocess.Options
	topK      int
	publisher EventPublisher

	// Queue config
	maxWait time.Duration
	genCh   chan struct{} // size 1: single in-flight inference
	queueCh chan struct{} // buffered: queue slots

	predictions atomic.Uint64
	startTime   time.Time
}

func newClassifier(cfg Config) *Classifier {
	cfg = cfg.withDefaults()
	return &Classifier{
		state:     StateLoading,
		modelPath: cfg.ModelPath,
		advisory:  cfg.Advisory,
		pre:       cfg.Preprocess,
		topK:      cfg.TopK,
		publisher: cfg.Publisher,
		maxWait:   cfg.MaxWait,
		genCh:     make(chan struct{}, 1),
		queueCh:   make(chan struct{}, cfg.MaxQueueDepth),
		startTime: time.Now(),
	}
}

// Load opens the model runtime and the label list. A model failure leaves the
// classifier in StateError with the built-in fallback labels; Predict then
// returns ErrModelUnavailable. With cfg.Strict the failure is returned instead.
func Load(cfg Config) (*Classifier, error) {
	cfg = cfg.withDefaults()
	c := newClassifier(cfg)
	if err := c.load(cfg); err != nil {
		if cfg.Strict {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Classifier) load(cfg Config) error {
	adapter := cfg.Adapter
	if adapter == nil {
		a, err := OpenONNX(cfg.ModelPath, cfg.Runtime)
		if err != nil {
			c.fail(fmt.Errorf("load model %s: %w", cfg.ModelPath, err))
			return err
		}
		adapter = a
	}
	ls, err := labels.LoadFile(cfg.LabelsPath)
	if err != nil {
		_ = adapter.Close()
		c.fail(err)
		return err
	}
	if sz, ok := adapter.(outputSizer); ok {
		if n := sz.OutputSize(); n > 0 && n != len(ls) {
			_ = adapter.Close()
			err := shapeMismatchError{labels: len(ls), outputs: n}
			c.fail(err)
			return err
		}
	}

	c.mu.Lock()
	c.adapter = adapter
	c.runtime = adapter.Name()
	c.labels = ls
	c.fallback = false
	c.state = StateReady
	c.err = ""
	c.mu.Unlock()
	readyGauge.Set(1)
	c.publisher.Publish(Event{Name: "model_loaded", Fields: map[string]any{
		"model": cfg.ModelPath, "runtime": adapter.Name(), "labels": len(ls),
	}})
	return nil
}

// fail records a load error and switches to the fallback labels.
func (c *Classifier) fail(err error) {
	c.mu.Lock()
	c.state = StateError
	c.err = err.Error()
	c.labels = labels.Fallback()
	c.fallback = true
	c.adapter = nil
	c.mu.Unlock()
	readyGauge.Set(0)
	c.publisher.Publish(Event{Name: "model_load_failed", Fields: map[string]any{"error": err.Error()}})
}

// Ready reports whether predictions can be served.
func (c *Classifier) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StateReady && c.adapter != nil
}

// Labels returns a copy of the label list and whether it is the fallback list.
func (c *Classifier) Labels() ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.labels...), c.fallback
}

// Advisory returns the advisory table in use.
func (c *Classifier) Advisory() advisory.Table { return c.advisory }

// Close releases the runtime.
func (c *Classifier) Close() error {
	c.mu.Lock()
	a := c.adapter
	c.adapter = nil
	if c.state == StateReady {
		c.state = StateClosed
	}
	c.mu.Unlock()
	readyGauge.Set(0)
	if a != nil {
		return a.Close()
	}
	return nil
}

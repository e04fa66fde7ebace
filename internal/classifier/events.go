package classifier

// Event represents a classifier lifecycle or request event.
type Event struct {
	Name   string
	Label  string
	Fields map[string]any
}

// EventPublisher receives events from the classifier. Implementations should
// be lightweight and non-blocking; Publish must not panic.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

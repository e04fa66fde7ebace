package classifier

import "github.com/rs/zerolog"

// LogPublisher writes events to a zerolog logger. Load failures are logged at
// error level, predictions at debug, everything else at info.
type LogPublisher struct {
	Logger zerolog.Logger
}

func NewLogPublisher(l zerolog.Logger) LogPublisher { return LogPublisher{Logger: l} }

func (p LogPublisher) Publish(e Event) {
	var ev *zerolog.Event
	switch e.Name {
	case "model_load_failed":
		ev = p.Logger.Error()
	case "prediction":
		ev = p.Logger.Debug()
	default:
		ev = p.Logger.Info()
	}
	if e.Label != "" {
		ev = ev.Str("label", e.Label)
	}
	ev.Fields(e.Fields).Msg(e.Name)
}

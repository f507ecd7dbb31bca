package event

import (
	"fmt"
	"log/slog"
)

// LogListener пишет события в slog.
type LogListener struct {
	Logger *slog.Logger
}

func NewLogListener(logger *slog.Logger) *LogListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogListener{Logger: logger}
}

func (l *LogListener) OnEvent(e Event) {
	switch e.Type {
	case HitBufferOverflow:
		l.Logger.Warn("hit buffer overflow", "event", string(e.Type), "data", describe(e.Data))
	case PickCompleted:
		l.Logger.Debug("pick completed", "event", string(e.Type), "data", describe(e.Data))
	default:
		l.Logger.Info("event", "event", string(e.Type), "data", describe(e.Data))
	}
}

func describe(v interface{}) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", v)
}

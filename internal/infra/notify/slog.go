package notify

import (
	"log/slog"

	"tastybite-booking/internal/usecase/commands"
)

// SlogSink reports workflow outcomes through structured logging. The HTTP
// layer additionally returns the outcome to the caller, so logging is the
// gateway-side rendition of the original toast system.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Notify(kind commands.NotificationKind, title, message string) {
	attrs := []any{
		slog.String("kind", string(kind)),
		slog.String("title", title),
	}
	switch kind {
	case commands.KindError:
		s.logger.Error(message, attrs...)
	default:
		s.logger.Info(message, attrs...)
	}
}

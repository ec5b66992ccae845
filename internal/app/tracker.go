package app

import (
	"context"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/utils"
)

//go:generate mockgen -source=tracker.go -destination=../mock/app_mock.go -package=mock

// Tracker is the crash/analytics reporting sink. Implementations must not
// block and must accept nil errors (which are ignored).
type Tracker interface {
	Track(ctx context.Context, err error)
}

type logTracker struct {
	logger *logger.Logger
}

// NewLogTracker returns a [Tracker] that records every tracked error as an
// error-level entry with tracked=true on a dedicated child logger.
func NewLogTracker(log *logger.Logger) Tracker {
	child := log.With().Str("sink", "tracker").Logger()
	return &logTracker{logger: &logger.Logger{Logger: child}}
}

func (t *logTracker) Track(ctx context.Context, err error) {
	if err == nil {
		return
	}

	ev := t.logger.Error().Err(err).Bool("tracked", true)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ev = ev.Str("trace_id", traceID)
	}
	ev.Msg("error tracked")
}

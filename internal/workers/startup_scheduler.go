package workers

import (
	"context"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
)

type startupScheduler struct {
	scheduler service.SyncJobScheduler
	routes    []string

	logger *logger.Logger
}

// NewStartupScheduler returns a [Worker] that schedules an ACL sync for
// every route once and exits.
func NewStartupScheduler(scheduler service.SyncJobScheduler, routes []string, logger *logger.Logger) Worker {
	return &startupScheduler{scheduler: scheduler, routes: routes, logger: logger}
}

func (s *startupScheduler) Run(ctx context.Context) error {
	for _, route := range s.routes {
		handle, err := s.scheduler.Schedule(ctx, route)
		if err != nil {
			s.logger.Err(err).Str("route", route).Msg("failed to schedule acl sync on startup")
			continue
		}
		s.logger.Debug().Str("route", route).Str("handle", handle).Msg("acl sync scheduled on startup")
	}
	return nil
}

package service

import (
	"context"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

// AppInfoService exposes build metadata to the control API.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ServiceReadyHandler receives the bound proxy service once a
// [ServiceConnection] is ready.
type ServiceReadyHandler interface {
	OnServiceReady(ctx context.Context, svc adapter.ProxyService)
}

// Notifier shows short transient messages to the user.
type Notifier interface {
	Notify(msg string)
}

// SyncJobScheduler registers recurring rule list sync jobs.
type SyncJobScheduler interface {
	// Schedule registers (or replaces) the sync job for route and returns
	// its handle.
	Schedule(ctx context.Context, route string) (string, error)

	// Cancel removes the pending job with handle.
	Cancel(ctx context.Context, handle string) error

	// Pending lists every registered job.
	Pending(ctx context.Context) ([]models.SyncJobRequest, error)
}

// JobRunner executes one invocation of a job kind.
type JobRunner interface {
	// Kind is the tag prefix the runner is registered under.
	Kind() string

	// Run performs the job for route and reports how the platform should
	// proceed. It never panics and never returns an error: failures are
	// folded into the outcome.
	Run(ctx context.Context, route string) models.JobOutcome
}

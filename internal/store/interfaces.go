package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JobRequestRepository persists pending job requests. At most one request
// exists per tag.
type JobRequestRepository interface {
	// Upsert stores req under req.Tag. When a request with that tag exists
	// and req.UpdateCurrent is set, the old request is replaced; otherwise
	// the existing request is kept and returned unchanged.
	Upsert(ctx context.Context, req models.SyncJobRequest) (models.SyncJobRequest, error)

	// GetByID returns the request with handle id or [ErrNotFound].
	GetByID(ctx context.Context, id string) (models.SyncJobRequest, error)

	// ListDue returns requests whose window has opened and whose backoff
	// has elapsed at now, oldest first.
	ListDue(ctx context.Context, now time.Time) ([]models.SyncJobRequest, error)

	// ListAll returns every pending request, oldest first.
	ListAll(ctx context.Context) ([]models.SyncJobRequest, error)

	// Delete removes the request with handle id or returns [ErrNotFound].
	Delete(ctx context.Context, id string) error

	// Reschedule records a retry of the request with handle id.
	Reschedule(ctx context.Context, id string, attempts int, nextRunAt, latestAt time.Time) error
}

// AclFileStorage keeps downloaded rule lists in the private data directory.
type AclFileStorage interface {
	// Write replaces "<data-dir>/<route>.acl" with content.
	Write(ctx context.Context, route, content string) error

	// Read returns the stored rule list for route or [ErrNotFound].
	Read(ctx context.Context, route string) (models.AclFile, error)

	// Path returns where the rule list for route is stored.
	Path(route string) (string, error)
}

// ErrorClassificator decides how a failed database operation is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

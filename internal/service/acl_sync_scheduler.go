package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/internal/utils"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

// Window of an ACL sync job relative to the moment it is scheduled.
const (
	AclSyncMinDelay = time.Millisecond
	AclSyncMaxDelay = 28 * 24 * time.Hour
)

type aclSyncScheduler struct {
	repo  store.JobRequestRepository
	idGen utils.IDGenerator
	now   func() time.Time

	logger *logger.Logger
}

// NewAclSyncScheduler returns a [SyncJobScheduler] that persists requests in
// repo. Requests run only on an unmetered network while charging, and
// scheduling the same route again replaces the pending request.
func NewAclSyncScheduler(repo store.JobRequestRepository, idGen utils.IDGenerator, logger *logger.Logger) SyncJobScheduler {
	return &aclSyncScheduler{
		repo:   repo,
		idGen:  idGen,
		now:    time.Now,
		logger: logger,
	}
}

func (s *aclSyncScheduler) Schedule(ctx context.Context, route string) (string, error) {
	if err := store.ValidateRoute(route); err != nil {
		return "", mapStoreError(err)
	}

	now := s.now()
	req := models.SyncJobRequest{
		ID:                   s.idGen.Generate(),
		Tag:                  models.JobTag(AclSyncJobKind, route),
		Kind:                 AclSyncJobKind,
		Route:                route,
		EarliestAt:           now.Add(AclSyncMinDelay),
		LatestAt:             now.Add(AclSyncMaxDelay),
		NetworkType:          models.NetworkUnmetered,
		RequiresCharging:     true,
		RequirementsEnforced: true,
		UpdateCurrent:        true,
		CreatedAt:            now,
	}

	stored, err := s.repo.Upsert(ctx, req)
	if err != nil {
		return "", fmt.Errorf("schedule %s: %w", req.Tag, mapStoreError(err))
	}

	s.logger.Info().
		Str("tag", stored.Tag).
		Str("handle", stored.ID).
		Time("latest_at", stored.LatestAt).
		Msg("acl sync scheduled")

	return stored.ID, nil
}

func (s *aclSyncScheduler) Cancel(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return fmt.Errorf("cancel %s: %w", handle, mapStoreError(err))
	}

	s.logger.Info().Str("handle", handle).Msg("job request cancelled")
	return nil
}

func (s *aclSyncScheduler) Pending(ctx context.Context) ([]models.SyncJobRequest, error) {
	requests, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}
	return requests, nil
}

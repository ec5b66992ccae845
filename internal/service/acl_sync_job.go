// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

const (
	// AclSyncJobKind is the tag prefix of rule list sync jobs.
	AclSyncJobKind = "AclSyncJob"

	// SelfRoute is the only route whose list is downloaded; the others ship
	// with the proxy.
	SelfRoute = "self"
)

type aclSyncJob struct {
	source  adapter.AclSource
	storage store.AclFileStorage
	handle  *app.Handle

	logger *logger.Logger
}

// NewAclSyncJob returns the [JobRunner] that downloads "<route>.acl" from
// source and stores it through storage.
func NewAclSyncJob(source adapter.AclSource, storage store.AclFileStorage, handle *app.Handle, logger *logger.Logger) JobRunner {
	return &aclSyncJob{
		source:  source,
		storage: storage,
		handle:  handle,
		logger:  logger,
	}
}

func (j *aclSyncJob) Kind() string {
	return AclSyncJobKind
}

// Run implements [JobRunner]. I/O failures yield RESCHEDULE, everything else
// (including a panic) yields FAILURE; both are logged and tracked.
func (j *aclSyncJob) Run(ctx context.Context, route string) (outcome models.JobOutcome) {
	log := j.logger.ForJob(AclSyncJobKind, route)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: %v", ErrJobPanicked, r)
			log.Error().Err(err).Msg("acl sync failed")
			j.handle.Tracker().Track(ctx, err)
			outcome = models.JobFailure
		}
	}()

	if route != SelfRoute {
		log.Debug().Msg("route ships with the proxy, nothing to download")
		return models.JobSuccess
	}

	if err := j.sync(ctx, route, log); err != nil {
		j.handle.Tracker().Track(ctx, err)
		if isIOError(err) {
			log.Warn().Err(err).Msg("acl sync interrupted, will retry")
			return models.JobReschedule
		}
		log.Error().Err(err).Msg("acl sync failed")
		return models.JobFailure
	}

	log.Info().Msg("acl synced")
	return models.JobSuccess
}

func (j *aclSyncJob) sync(ctx context.Context, route string, log *logger.Logger) error {
	body, err := j.source.Open(ctx, route)
	if err != nil {
		return fmt.Errorf("open acl: %w", err)
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close acl stream")
			j.handle.Tracker().Track(ctx, fmt.Errorf("close acl stream: %w", closeErr))
		}
	}()

	content, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("%w: read acl: %w", adapter.ErrIO, err)
	}

	if err = j.storage.Write(ctx, route, string(content)); err != nil {
		return fmt.Errorf("store acl: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/sethvargo/go-retry"
)

// Reschedule backoff bounds.
const (
	BackoffBase = 30 * time.Second
	BackoffCap  = 5 * time.Hour
)

// Dispatcher runs due job requests one at a time.
type Dispatcher struct {
	repo       store.JobRequestRepository
	runners    *service.JobRunners
	conditions Conditions
	tracker    app.Tracker
	interval   time.Duration
	now        func() time.Time

	logger *logger.Logger
}

// NewDispatcher constructs a dispatcher polling repo every
// cfg.PollInterval.
func NewDispatcher(
	repo store.JobRequestRepository,
	runners *service.JobRunners,
	conditions Conditions,
	tracker app.Tracker,
	cfg config.Workers,
	logger *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		repo:       repo,
		runners:    runners,
		conditions: conditions,
		tracker:    tracker,
		interval:   cfg.PollInterval,
		now:        time.Now,
		logger:     logger,
	}
}

// Run implements [Worker]. It dispatches once right away, then on every
// tick, until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	interval := d.interval
	if interval <= 0 {
		interval = time.Minute
	}

	d.logger.Info().Dur("interval", interval).Msg("dispatcher started")

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		if err := d.DispatchDue(ctx); err != nil {
			d.logger.Err(err).Msg("dispatch round failed")
		}

		select {
		case <-ctx.Done():
			d.logger.Info().Msg("dispatcher stopped")
			return nil
		case <-t.C:
		}
	}
}

// DispatchDue runs every request that is due now and whose constraints are
// met. Requests with unmet enforced constraints are left for a later round.
func (d *Dispatcher) DispatchDue(ctx context.Context) error {
	now := d.now()

	due, err := d.repo.ListDue(ctx, now)
	if err != nil {
		return fmt.Errorf("list due job requests: %w", err)
	}

	for _, req := range due {
		if ctx.Err() != nil {
			return nil
		}
		if now.Before(req.RunnableAt()) {
			continue
		}
		d.dispatch(ctx, req)
	}

	return nil
}

func (d *Dispatcher) dispatch(ctx context.Context, req models.SyncJobRequest) {
	log := d.logger.With().Str("tag", req.Tag).Str("handle", req.ID).Logger()

	if !d.constraintsMet(ctx, req) {
		if req.RequirementsEnforced {
			log.Debug().Msg("constraints unmet, deferring job")
			return
		}
		log.Debug().Msg("constraints unmet but not enforced, running job")
	}

	runner, route, err := d.runners.Resolve(req.Tag)
	if err != nil {
		log.Error().Err(err).Msg("no runner for job request, dropping it")
		d.tracker.Track(ctx, err)
		d.remove(ctx, req)
		return
	}

	outcome := runner.Run(ctx, route)
	log.Info().Stringer("outcome", outcome).Int("attempts", req.Attempts).Msg("job finished")

	switch outcome {
	case models.JobReschedule:
		d.reschedule(ctx, req)
	default:
		d.remove(ctx, req)
	}
}

func (d *Dispatcher) constraintsMet(ctx context.Context, req models.SyncJobRequest) bool {
	if !req.NetworkType.SatisfiedBy(d.conditions.Network(ctx)) {
		return false
	}
	if req.RequiresCharging && !d.conditions.Charging(ctx) {
		return false
	}
	return true
}

func (d *Dispatcher) remove(ctx context.Context, req models.SyncJobRequest) {
	err := d.repo.Delete(ctx, req.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		d.logger.Err(err).Str("handle", req.ID).Msg("failed to remove job request")
	}
}

func (d *Dispatcher) reschedule(ctx context.Context, req models.SyncJobRequest) {
	attempts := req.Attempts + 1
	next := d.now().Add(BackoffDelay(attempts))
	latest := req.LatestAt
	if next.After(latest) {
		latest = next
	}

	err := d.repo.Reschedule(ctx, req.ID, attempts, next, latest)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		d.logger.Err(err).Str("handle", req.ID).Msg("failed to reschedule job request")
	}
}

// BackoffDelay returns the delay before retry number attempts (1-based):
// 30s, 1m, 2m, ... capped at 5h.
func BackoffDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	// 30s << 15 is already past the cap; larger shifts overflow.
	if attempts > 16 {
		attempts = 16
	}

	b := retry.WithCappedDuration(BackoffCap, retry.NewExponential(BackoffBase))
	var delay time.Duration
	for range attempts {
		delay, _ = b.Next()
	}
	return delay
}

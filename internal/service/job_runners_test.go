package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	kind    string
	outcome models.JobOutcome
	routes  []string
}

func (s *stubRunner) Kind() string { return s.kind }

func (s *stubRunner) Run(_ context.Context, route string) models.JobOutcome {
	s.routes = append(s.routes, route)
	return s.outcome
}

func TestJobRunners_Resolve(t *testing.T) {
	runner := &stubRunner{kind: AclSyncJobKind}
	runners := NewJobRunners(runner)

	got, route, err := runners.Resolve("AclSyncJob:self")
	require.NoError(t, err)
	assert.Same(t, runner, got)
	assert.Equal(t, "self", route)

	_, _, err = runners.Resolve("PurgeJob:self")
	assert.ErrorIs(t, err, ErrUnknownJobKind)

	_, _, err = runners.Resolve("no-separator")
	assert.ErrorIs(t, err, ErrMalformedJobTag)
}

func TestJobRunners_Run(t *testing.T) {
	runner := &stubRunner{kind: AclSyncJobKind, outcome: models.JobReschedule}
	runners := NewJobRunners(runner)

	outcome, err := runners.Run(context.Background(), AclSyncJobKind, "self")
	require.NoError(t, err)
	assert.Equal(t, models.JobReschedule, outcome)
	assert.Equal(t, []string{"self"}, runner.routes)

	outcome, err = runners.Run(context.Background(), "Unknown", "self")
	assert.ErrorIs(t, err, ErrUnknownJobKind)
	assert.Equal(t, models.JobFailure, outcome)
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-proxy-keeper/models"
)

// JobRunners maps job kinds to their runners, the way the platform maps a
// tag to the job that handles it.
type JobRunners struct {
	runners map[string]JobRunner
}

// NewJobRunners registers runners by their Kind. A later runner with the
// same kind replaces an earlier one.
func NewJobRunners(runners ...JobRunner) *JobRunners {
	r := &JobRunners{runners: make(map[string]JobRunner, len(runners))}
	for _, runner := range runners {
		r.runners[runner.Kind()] = runner
	}
	return r
}

// Resolve returns the runner and route encoded in tag.
func (r *JobRunners) Resolve(tag string) (JobRunner, string, error) {
	kind, route, ok := models.ParseJobTag(tag)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrMalformedJobTag, tag)
	}

	runner, ok := r.runners[kind]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownJobKind, kind)
	}

	return runner, route, nil
}

// Run runs the job of kind for route immediately. Unknown kinds fail.
func (r *JobRunners) Run(ctx context.Context, kind, route string) (models.JobOutcome, error) {
	runner, _, err := r.Resolve(models.JobTag(kind, route))
	if err != nil {
		return models.JobFailure, err
	}
	return runner.Run(ctx, route), nil
}

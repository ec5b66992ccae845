// Package workers provides the background workers of proxykeeperd and a
// Workers aggregate that runs them together.
//
// The main worker is the [Dispatcher]: it plays the role of the platform job
// scheduler, polling due job requests, gating them on network and power
// conditions and applying the outcome each job reports.
package workers

import (
	"context"

	"github.com/MKhiriev/go-proxy-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the worker is done or ctx is cancelled. Returning an
// error stops the sibling workers of the same [Workers] aggregate.
type Worker interface {
	Run(ctx context.Context) error
}

// Conditions reports the device state that job requirements are checked
// against.
type Conditions interface {
	Network(ctx context.Context) models.NetworkState
	Charging(ctx context.Context) bool
}

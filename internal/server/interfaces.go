package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown stops the server and frees associated resources.
	Shutdown()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run parses args, executes the selected command and blocks until it
	// exits.
	Run(ctx context.Context, args []string) error
}

// Dependencies builds what a command needs once the configuration is known.
// Each command asks only for what it uses, so "toggle" never opens the job
// database.
type Dependencies interface {
	// ServiceBinder returns a binder for the proxy service.
	ServiceBinder(cfg config.ClientService, logger *logger.Logger) (adapter.ServiceBinder, error)

	// Services returns the job services and a func releasing them.
	Services(ctx context.Context, cfg *config.ClientConfig, handle *app.Handle, version string, logger *logger.Logger) (*service.Services, func() error, error)
}

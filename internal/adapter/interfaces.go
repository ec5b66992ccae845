// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions used to reach
// things outside the process: the background proxy service and the remote
// rule list host.
//
// [ServiceBinder] performs the asynchronous connect handshake with the proxy
// service and hands out a [ProxyService] once the connection is ready. The
// shipped implementation speaks gRPC with a JSON codec
// ([NewGRPCServiceBinder]). [AclSource] streams rule lists over HTTP(S)
// ([NewHTTPAclSource]).
//
// Errors are wrapped with the sentinels in errors.go so that callers can
// classify them with [errors.Is]: [ErrRemoteCall] for proxy service calls,
// [ErrIO] for anything that failed while moving bytes.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-proxy-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ProxyService is the query/command surface of the background proxy service.
// Start and Stop are fire-and-forget: they return once the service accepted
// the command, not when the transition is complete.
type ProxyService interface {
	// GetState returns the state the service currently reports.
	GetState(ctx context.Context) (models.ServiceState, error)

	// Start asks the service to bring the proxy up.
	Start(ctx context.Context) error

	// Stop asks the service to tear the proxy down.
	Stop(ctx context.Context) error
}

// ServiceBinder starts asynchronous bind attempts to the proxy service.
type ServiceBinder interface {
	// Bind begins connecting and returns immediately. ready is called at
	// most once, from a goroutine owned by the binding, when the connection
	// can serve calls. The [ProxyService] passed to ready is valid until the
	// returned [Binding] is closed.
	Bind(ready func(ProxyService)) (Binding, error)
}

// Binding is one bind attempt. Close releases it; it is idempotent and may be
// called before ready fired.
type Binding interface {
	Close() error
}

// AclSource opens rule lists for a route.
type AclSource interface {
	// Open starts downloading "<route>.acl". On success the caller owns the
	// returned stream and must close it.
	Open(ctx context.Context, route string) (io.ReadCloser, error)
}

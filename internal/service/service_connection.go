package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

// ServiceConnection is one bind attempt to the proxy service. It forwards
// the ready callback to its handler at most once and never after Detach.
type ServiceConnection struct {
	binder  adapter.ServiceBinder
	handler ServiceReadyHandler

	mu        sync.Mutex
	binding   adapter.Binding
	service   adapter.ProxyService
	attached  bool
	connected bool
	detached  bool
	readyOnce sync.Once

	logger *logger.Logger
}

// NewServiceConnection returns an unattached connection that reports to
// handler.
func NewServiceConnection(binder adapter.ServiceBinder, handler ServiceReadyHandler, logger *logger.Logger) *ServiceConnection {
	return &ServiceConnection{
		binder:  binder,
		handler: handler,
		logger:  logger,
	}
}

// Attach starts binding and returns without waiting for the service. ctx is
// handed to the handler when the service becomes ready.
func (c *ServiceConnection) Attach(ctx context.Context) error {
	c.mu.Lock()
	if c.attached || c.detached {
		c.mu.Unlock()
		return ErrAlreadyAttached
	}
	c.attached = true
	c.mu.Unlock()

	binding, err := c.binder.Bind(func(svc adapter.ProxyService) {
		c.onReady(ctx, svc)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBindFailed, err)
	}

	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		c.closeBinding(binding)
		return nil
	}
	c.binding = binding
	c.mu.Unlock()

	return nil
}

func (c *ServiceConnection) onReady(ctx context.Context, svc adapter.ProxyService) {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		c.logger.Debug().Msg("service ready after detach, ignoring")
		return
	}
	c.service = svc
	c.connected = true
	c.mu.Unlock()

	c.readyOnce.Do(func() {
		if c.isDetached() {
			return
		}
		c.handler.OnServiceReady(ctx, &attachedService{conn: c, svc: svc})
	})
}

func (c *ServiceConnection) isDetached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detached
}

// Detach releases the binding. It is idempotent, safe before ready fired
// and safe to call from inside the handler.
func (c *ServiceConnection) Detach() {
	c.mu.Lock()
	if c.detached {
		c.mu.Unlock()
		return
	}
	c.detached = true
	c.connected = false
	c.service = nil
	binding := c.binding
	c.binding = nil
	c.mu.Unlock()

	if binding != nil {
		c.closeBinding(binding)
	}
}

// Connected reports whether the service is bound and not yet detached.
func (c *ServiceConnection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *ServiceConnection) closeBinding(binding adapter.Binding) {
	if err := binding.Close(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to close service binding")
	}
}

// attachedService refuses calls once its connection is detached, whatever
// the binder does with a released binding.
type attachedService struct {
	conn *ServiceConnection
	svc  adapter.ProxyService
}

func (a *attachedService) GetState(ctx context.Context) (models.ServiceState, error) {
	if a.conn.isDetached() {
		return 0, fmt.Errorf("%w: %w", adapter.ErrRemoteCall, ErrDetached)
	}
	return a.svc.GetState(ctx)
}

func (a *attachedService) Start(ctx context.Context) error {
	if a.conn.isDetached() {
		return fmt.Errorf("%w: %w", adapter.ErrRemoteCall, ErrDetached)
	}
	return a.svc.Start(ctx)
}

func (a *attachedService) Stop(ctx context.Context) error {
	if a.conn.isDetached() {
		return fmt.Errorf("%w: %w", adapter.ErrRemoteCall, ErrDetached)
	}
	return a.svc.Stop(ctx)
}

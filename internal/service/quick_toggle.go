// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/models"
)

// ToggleResult is what a finished [QuickToggle] did.
type ToggleResult string

const (
	// TogglePending means the toggle has not finished yet.
	TogglePending ToggleResult = ""
	ToggleStarted ToggleResult = "started"
	ToggleStopped ToggleResult = "stopped"
	ToggleIgnored ToggleResult = "ignored"
	ToggleFailed  ToggleResult = "failed"
)

// LoadingMessage is shown while the proxy starts.
const LoadingMessage = "Loading..."

// QuickToggle flips the proxy between stopped and connected with a single
// action: bind, read the state, send the opposite command, finish.
//
// Every path ends in finish exactly once, after which Done is closed. The
// caller must still call Close to release the binding.
type QuickToggle struct {
	conn     *ServiceConnection
	notifier Notifier

	done       chan struct{}
	finishOnce sync.Once
	mu         sync.Mutex
	result     ToggleResult

	logger *logger.Logger
}

// NewQuickToggle wires a toggle to binder. notifier receives the loading
// message when the proxy is being started.
func NewQuickToggle(binder adapter.ServiceBinder, notifier Notifier, logger *logger.Logger) *QuickToggle {
	t := &QuickToggle{
		notifier: notifier,
		done:     make(chan struct{}),
		logger:   logger,
	}
	t.conn = NewServiceConnection(binder, t, logger)

	return t
}

// Launch records the shortcut use and starts binding. It never blocks on
// the service; wait on Done for the outcome.
func (t *QuickToggle) Launch(ctx context.Context) {
	t.logger.Info().Str("shortcut_id", ShortcutID).Msg("shortcut used")

	if err := t.conn.Attach(ctx); err != nil {
		t.logger.Err(err).Msg("failed to bind proxy service")
		t.finish(ToggleFailed)
	}
}

// OnServiceReady implements [ServiceReadyHandler].
func (t *QuickToggle) OnServiceReady(ctx context.Context, svc adapter.ProxyService) {
	state, err := svc.GetState(ctx)
	if err != nil {
		t.logger.Err(err).Msg("failed to get proxy state")
		t.finish(ToggleFailed)
		return
	}

	result := ToggleIgnored
	switch state {
	case models.StateStopped:
		t.notifier.Notify(LoadingMessage)
		err = svc.Start(ctx)
		result = ToggleStarted
	case models.StateConnected:
		err = svc.Stop(ctx)
		result = ToggleStopped
	default:
		t.logger.Debug().Stringer("state", state).Msg("proxy is busy, nothing to toggle")
	}

	if err != nil {
		t.logger.Err(err).Stringer("state", state).Msg("failed to toggle proxy")
		result = ToggleFailed
	}

	t.finish(result)
}

// Done is closed once the toggle finished.
func (t *QuickToggle) Done() <-chan struct{} {
	return t.done
}

// Result returns what the toggle did, or [TogglePending].
func (t *QuickToggle) Result() ToggleResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Close releases the binding. Safe to call at any time and more than once.
func (t *QuickToggle) Close() {
	t.conn.Detach()
}

func (t *QuickToggle) finish(result ToggleResult) {
	t.finishOnce.Do(func() {
		t.mu.Lock()
		t.result = result
		t.mu.Unlock()

		t.logger.Debug().Str("result", string(result)).Msg("toggle finished")
		close(t.done)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker is a test implementation of the Worker interface that
// tracks how many times Run was called.
type countingWorker struct {
	runs atomic.Int32
	err  error
}

func (w *countingWorker) Run(context.Context) error {
	w.runs.Add(1)
	return w.err
}

// blockingWorker runs until its context is cancelled.
type blockingWorker struct {
	stopped atomic.Bool
}

func (w *blockingWorker) Run(ctx context.Context) error {
	<-ctx.Done()
	w.stopped.Store(true)
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	require.NoError(t, NewWorkers(w1, w2, w3).Run(context.Background()))

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	require.NoError(t, NewWorkers().Run(context.Background()))
	require.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_ErrorCancelsSiblings(t *testing.T) {
	boom := errors.New("boom")
	blocking := &blockingWorker{}

	done := make(chan error, 1)
	go func() {
		done <- NewWorkers(blocking, &countingWorker{err: boom}).Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
		assert.True(t, blocking.stopped.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop after a failure")
	}
}

func TestWorkers_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	blocking := &blockingWorker{}

	done := make(chan error, 1)
	go func() { done <- NewWorkers(blocking).Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, blocking.stopped.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop on cancel")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/mock"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// trackedBody is an io.ReadCloser that counts Close calls.
type trackedBody struct {
	io.Reader
	closed   int
	closeErr error
}

func (b *trackedBody) Close() error {
	b.closed++
	return b.closeErr
}

// failingReader fails after handing out part of the body.
type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

// panickingReader simulates a bug inside the job.
type panickingReader struct{}

func (panickingReader) Read([]byte) (int, error) { panic("nil map write") }

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func newTestJob(t *testing.T, ctrl *gomock.Controller) (JobRunner, *mock.MockAclSource, *mock.MockAclFileStorage, *mock.MockTracker) {
	t.Helper()

	source := mock.NewMockAclSource(ctrl)
	storage := mock.NewMockAclFileStorage(ctrl)
	tracker := mock.NewMockTracker(ctrl)

	handle, err := app.NewHandle(t.TempDir(), tracker)
	require.NoError(t, err)

	return NewAclSyncJob(source, storage, handle, logger.Nop()), source, storage, tracker
}

// ── Outcome mapping ──────────────────────────────────────────────────────────

func TestAclSyncJob_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job, source, storage, _ := newTestJob(t, ctrl)
	body := &trackedBody{Reader: strings.NewReader("allow 1.1.1.1/32")}

	source.EXPECT().Open(gomock.Any(), "self").Return(body, nil)
	storage.EXPECT().Write(gomock.Any(), "self", "allow 1.1.1.1/32").Return(nil)

	assert.Equal(t, models.JobSuccess, job.Run(context.Background(), "self"))
	assert.Equal(t, 1, body.closed)
}

func TestAclSyncJob_OtherRouteDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Open, no Write, no Track expected
	job, _, _, _ := newTestJob(t, ctrl)

	for _, route := range []string{"other", "gfwlist", "bypass-lan", ""} {
		assert.Equal(t, models.JobSuccess, job.Run(context.Background(), route), route)
	}
}

func TestAclSyncJob_OpenFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.JobOutcome
	}{
		{name: "transport", err: fmt.Errorf("%w: connection refused", adapter.ErrIO), want: models.JobReschedule},
		{name: "bad status", err: fmt.Errorf("%w: %w: 503", adapter.ErrIO, adapter.ErrUnexpectedStatus), want: models.JobReschedule},
		{name: "net timeout", err: timeoutError{}, want: models.JobReschedule},
		{name: "deadline", err: context.DeadlineExceeded, want: models.JobReschedule},
		{name: "logic error", err: errors.New("unsupported route encoding"), want: models.JobFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			job, source, _, tracker := newTestJob(t, ctrl)
			source.EXPECT().Open(gomock.Any(), "self").Return(nil, tt.err)
			tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Times(1)

			// storage.Write must not be called: no expectation registered
			assert.Equal(t, tt.want, job.Run(context.Background(), "self"))
		})
	}
}

func TestAclSyncJob_ReadFailureReschedulesWithoutWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job, source, _, tracker := newTestJob(t, ctrl)
	body := &trackedBody{Reader: io.MultiReader(strings.NewReader("allow "), failingReader{err: io.ErrUnexpectedEOF})}

	source.EXPECT().Open(gomock.Any(), "self").Return(body, nil)
	tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Times(1)

	assert.Equal(t, models.JobReschedule, job.Run(context.Background(), "self"))
	assert.Equal(t, 1, body.closed)
}

func TestAclSyncJob_WriteFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.JobOutcome
	}{
		{name: "path error", err: &fs.PathError{Op: "open", Path: "/data/self.acl", Err: fs.ErrPermission}, want: models.JobReschedule},
		{name: "canceled", err: context.Canceled, want: models.JobReschedule},
		{name: "invalid route", err: store.ErrInvalidRoute, want: models.JobFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			job, source, storage, tracker := newTestJob(t, ctrl)
			body := &trackedBody{Reader: strings.NewReader("allow 1.1.1.1/32")}

			source.EXPECT().Open(gomock.Any(), "self").Return(body, nil)
			storage.EXPECT().Write(gomock.Any(), "self", gomock.Any()).Return(tt.err)
			tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Times(1)

			assert.Equal(t, tt.want, job.Run(context.Background(), "self"))
			assert.Equal(t, 1, body.closed)
		})
	}
}

func TestAclSyncJob_PanicIsFailureAndStreamIsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job, source, _, tracker := newTestJob(t, ctrl)
	body := &trackedBody{Reader: panickingReader{}}

	source.EXPECT().Open(gomock.Any(), "self").Return(body, nil)
	tracker.EXPECT().
		Track(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, err error) {
			assert.ErrorIs(t, err, ErrJobPanicked)
		})

	assert.Equal(t, models.JobFailure, job.Run(context.Background(), "self"))
	assert.Equal(t, 1, body.closed)
}

func TestAclSyncJob_CloseErrorDoesNotChangeOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job, source, storage, tracker := newTestJob(t, ctrl)
	body := &trackedBody{Reader: strings.NewReader("allow 1.1.1.1/32"), closeErr: errors.New("socket reset")}

	source.EXPECT().Open(gomock.Any(), "self").Return(body, nil)
	storage.EXPECT().Write(gomock.Any(), "self", "allow 1.1.1.1/32").Return(nil)
	tracker.EXPECT().Track(gomock.Any(), gomock.Any()).Times(1)

	assert.Equal(t, models.JobSuccess, job.Run(context.Background(), "self"))
	assert.Equal(t, 1, body.closed)
}

// ── End to end ───────────────────────────────────────────────────────────────

func TestAclSyncJob_EndToEnd(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/self.acl", r.URL.Path)
		_, _ = io.WriteString(w, "allow 1.1.1.1/32")
	}))
	defer srv.Close()

	dataDir := t.TempDir()
	handle, err := app.NewHandle(dataDir, app.NewLogTracker(logger.Nop()))
	require.NoError(t, err)

	source, err := adapter.NewHTTPAclSource(config.ClientACL{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	job := NewAclSyncJob(source, store.NewAclFileStorage(handle.DataDir(), logger.Nop()), handle, logger.Nop())

	assert.Equal(t, models.JobSuccess, job.Run(context.Background(), "self"))
	data, err := os.ReadFile(filepath.Join(dataDir, "self.acl"))
	require.NoError(t, err)
	assert.Equal(t, "allow 1.1.1.1/32", string(data))

	assert.Equal(t, models.JobSuccess, job.Run(context.Background(), "other"))
	_, err = os.Stat(filepath.Join(dataDir, "other.acl"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, int32(1), requests.Load())
}

func TestAclSyncJob_EndToEndServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	dataDir := t.TempDir()
	handle, err := app.NewHandle(dataDir, app.NewLogTracker(logger.Nop()))
	require.NoError(t, err)

	source, err := adapter.NewHTTPAclSource(config.ClientACL{BaseURL: url}, logger.Nop())
	require.NoError(t, err)

	job := NewAclSyncJob(source, store.NewAclFileStorage(handle.DataDir(), logger.Nop()), handle, logger.Nop())

	assert.Equal(t, models.JobReschedule, job.Run(context.Background(), "self"))
	_, err = os.Stat(filepath.Join(dataDir, "self.acl"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

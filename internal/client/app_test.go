package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/mock"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Fakes ----

type fakeDeps struct {
	binder     adapter.ServiceBinder
	binderErr  error
	services   *service.Services
	servicesFn func(handle *app.Handle) *service.Services
	released   int
}

func (f *fakeDeps) ServiceBinder(config.ClientService, *logger.Logger) (adapter.ServiceBinder, error) {
	return f.binder, f.binderErr
}

func (f *fakeDeps) Services(_ context.Context, _ *config.ClientConfig, handle *app.Handle, _ string, _ *logger.Logger) (*service.Services, func() error, error) {
	services := f.services
	if f.servicesFn != nil {
		services = f.servicesFn(handle)
	}
	return services, func() error { f.released++; return nil }, nil
}

type outcomeRunner models.JobOutcome

func (outcomeRunner) Kind() string { return service.AclSyncJobKind }

func (r outcomeRunner) Run(context.Context, string) models.JobOutcome { return models.JobOutcome(r) }

type memScheduler struct {
	pending []models.SyncJobRequest
}

func (s *memScheduler) Schedule(_ context.Context, route string) (string, error) {
	s.pending = append(s.pending, models.SyncJobRequest{ID: "h-" + route, Tag: models.JobTag(service.AclSyncJobKind, route)})
	return "h-" + route, nil
}

func (s *memScheduler) Cancel(_ context.Context, handle string) error {
	for i, req := range s.pending {
		if req.ID == handle {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return nil
		}
	}
	return service.ErrJobNotFound
}

func (s *memScheduler) Pending(context.Context) ([]models.SyncJobRequest, error) {
	return s.pending, nil
}

// ---- Helpers ----

func runApp(t *testing.T, deps Dependencies, args ...string) (string, error) {
	t.Helper()

	a := NewApp(models.NewAppBuildInfo("1.0.0", "2026-01-02", "abc123"), deps)
	a.newLogger = func(string) *logger.Logger { return logger.Nop() }

	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(&out)

	base := []string{"--data-dir", t.TempDir(), "--service-address", "127.0.0.1:9091"}
	if len(args) > 0 && args[0] == "version" {
		base = nil
	}

	err := a.Run(context.Background(), append(args, base...))
	return out.String(), err
}

// ---- version ----

func TestVersionCmd(t *testing.T) {
	out, err := runApp(t, &fakeDeps{}, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Build version: 1.0.0")
	assert.Contains(t, out, "Build commit: abc123")
}

// ---- toggle ----

func TestToggleCmd_StartsStoppedProxy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	binder := mock.NewMockServiceBinder(ctrl)
	binding := mock.NewMockBinding(ctrl)
	proxy := mock.NewMockProxyService(ctrl)

	binder.EXPECT().Bind(gomock.Any()).DoAndReturn(func(ready func(adapter.ProxyService)) (adapter.Binding, error) {
		go ready(proxy)
		return binding, nil
	})
	proxy.EXPECT().GetState(gomock.Any()).Return(models.StateStopped, nil)
	proxy.EXPECT().Start(gomock.Any()).Return(nil)
	binding.EXPECT().Close().Return(nil)

	out, err := runApp(t, &fakeDeps{binder: binder}, "toggle")

	require.NoError(t, err)
	assert.Contains(t, out, service.LoadingMessage)
	assert.Contains(t, out, "proxy started")
}

func TestToggleCmd_StopsConnectedProxy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	binder := mock.NewMockServiceBinder(ctrl)
	binding := mock.NewMockBinding(ctrl)
	proxy := mock.NewMockProxyService(ctrl)

	binder.EXPECT().Bind(gomock.Any()).DoAndReturn(func(ready func(adapter.ProxyService)) (adapter.Binding, error) {
		go ready(proxy)
		return binding, nil
	})
	proxy.EXPECT().GetState(gomock.Any()).Return(models.StateConnected, nil)
	proxy.EXPECT().Stop(gomock.Any()).Return(nil)
	binding.EXPECT().Close().Return(nil)

	out, err := runApp(t, &fakeDeps{binder: binder}, "toggle")

	require.NoError(t, err)
	assert.NotContains(t, out, service.LoadingMessage)
	assert.Contains(t, out, "proxy stopped")
}

func TestToggleCmd_TimesOutAndReleasesBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	binder := mock.NewMockServiceBinder(ctrl)
	binding := mock.NewMockBinding(ctrl)

	binder.EXPECT().Bind(gomock.Any()).Return(binding, nil)
	binding.EXPECT().Close().Return(nil)

	_, err := runApp(t, &fakeDeps{binder: binder}, "toggle", "--connect-timeout", "50ms")

	assert.ErrorIs(t, err, ErrToggleTimeout)
}

func TestToggleCmd_BindFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	binder := mock.NewMockServiceBinder(ctrl)
	binder.EXPECT().Bind(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := runApp(t, &fakeDeps{binder: binder}, "toggle")

	assert.ErrorIs(t, err, ErrToggleFailed)
}

func TestToggleCmd_CreateShortcut(t *testing.T) {
	out, err := runApp(t, &fakeDeps{}, "toggle", "--create-shortcut")
	require.NoError(t, err)

	var got models.ShortcutDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, service.ShortcutName, got.Name)
	assert.Equal(t, service.ShortcutIcon, got.Icon)
	require.Len(t, got.Launch, 2)
	assert.Equal(t, service.ShortcutID, got.Launch[1])
}

// ---- acl ----

func TestACLCmd_ScheduleListCancel(t *testing.T) {
	sched := &memScheduler{}
	deps := &fakeDeps{services: &service.Services{SyncJobScheduler: sched}}

	out, err := runApp(t, deps, "acl", "schedule", "self")
	require.NoError(t, err)
	assert.Equal(t, "h-self\n", out)

	out, err = runApp(t, deps, "acl", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "HANDLE")
	assert.Contains(t, out, "AclSyncJob:self")

	_, err = runApp(t, deps, "acl", "cancel", "h-self")
	require.NoError(t, err)
	assert.Empty(t, sched.pending)

	_, err = runApp(t, deps, "acl", "cancel", "h-self")
	assert.ErrorIs(t, err, service.ErrJobNotFound)

	assert.Equal(t, 4, deps.released)
}

func TestACLCmd_Sync(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.JobOutcome
		wantErr bool
	}{
		{name: "success", outcome: models.JobSuccess},
		{name: "reschedule", outcome: models.JobReschedule, wantErr: true},
		{name: "failure", outcome: models.JobFailure, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := &fakeDeps{services: &service.Services{JobRunners: service.NewJobRunners(outcomeRunner(tt.outcome))}}

			out, err := runApp(t, deps, "acl", "sync", "self")

			assert.Contains(t, out, "self: "+tt.outcome.String())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrJobNotSucceeded)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestACLCmd_RequiresRoute(t *testing.T) {
	_, err := runApp(t, &fakeDeps{}, "acl", "schedule")
	assert.Error(t, err)
}

// TestACLCmd_SyncEndToEnd runs the production wiring against a local rule
// list host and a SQLite job database in a temp data dir.
func TestACLCmd_SyncEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acl/self.acl" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("allow 1.1.1.1/32"))
	}))
	defer srv.Close()

	dataDir := t.TempDir()

	a := NewApp(models.NewAppBuildInfo("1.0.0", "", ""), nil)
	a.newLogger = func(string) *logger.Logger { return logger.Nop() }
	var out bytes.Buffer
	a.root.SetOut(&out)

	err := a.Run(context.Background(), []string{
		"acl", "sync", "self",
		"--data-dir", dataDir,
		"--service-address", "127.0.0.1:9091",
		"--acl-base-url", srv.URL + "/acl",
	})
	require.NoError(t, err)
	assert.Equal(t, "self: SUCCESS\n", out.String())

	content, err := os.ReadFile(filepath.Join(dataDir, "self.acl"))
	require.NoError(t, err)
	assert.Equal(t, "allow 1.1.1.1/32", string(content))
}

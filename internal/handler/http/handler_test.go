package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeAppInfo struct{ version string }

func (f fakeAppInfo) GetAppVersion(context.Context) string { return f.version }

type fakeScheduler struct {
	pending     []models.SyncJobRequest
	pendingErr  error
	scheduleErr error
	cancelErr   error

	scheduled []string
	cancelled []string
}

func (f *fakeScheduler) Schedule(_ context.Context, route string) (string, error) {
	if f.scheduleErr != nil {
		return "", f.scheduleErr
	}
	f.scheduled = append(f.scheduled, route)
	return "handle-" + route, nil
}

func (f *fakeScheduler) Cancel(_ context.Context, handle string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, handle)
	return nil
}

func (f *fakeScheduler) Pending(context.Context) ([]models.SyncJobRequest, error) {
	return f.pending, f.pendingErr
}

type fakeRunner struct {
	outcome models.JobOutcome
	routes  []string
}

func (f *fakeRunner) Kind() string { return service.AclSyncJobKind }

func (f *fakeRunner) Run(_ context.Context, route string) models.JobOutcome {
	f.routes = append(f.routes, route)
	return f.outcome
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestRouter(t *testing.T, sched *fakeScheduler, runner *fakeRunner) http.Handler {
	t.Helper()

	services := &service.Services{
		AppInfoService:   fakeAppInfo{version: "1.4.0"},
		SyncJobScheduler: sched,
		JobRunners:       service.NewJobRunners(runner),
	}

	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	router := newTestRouter(t, &fakeScheduler{}, &fakeRunner{})

	rec := serve(router, http.MethodGet, "/api/version/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.4.0", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestListJobs(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		sched      *fakeScheduler
		wantStatus int
		wantLen    int
	}{
		{name: "no jobs renders empty array", sched: &fakeScheduler{}, wantStatus: http.StatusOK, wantLen: 0},
		{
			name: "pending jobs",
			sched: &fakeScheduler{pending: []models.SyncJobRequest{
				{ID: "h-1", Tag: "AclSyncJob:self", Kind: service.AclSyncJobKind, Route: "self", CreatedAt: created},
			}},
			wantStatus: http.StatusOK,
			wantLen:    1,
		},
		{
			name:       "store failure",
			sched:      &fakeScheduler{pendingErr: fmt.Errorf("list: %w", store.ErrScanningRows)},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestRouter(t, tt.sched, &fakeRunner{}), http.MethodGet, "/api/jobs/")

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got []map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestListJobs_RendersEnumsByName(t *testing.T) {
	sched := &fakeScheduler{pending: []models.SyncJobRequest{{
		ID:          "h-1",
		Route:       "self",
		NetworkType: models.NetworkUnmetered,
	}}}

	rec := serve(newTestRouter(t, sched, &fakeRunner{}), http.MethodGet, "/api/jobs/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"network_type":"UNMETERED"`)
}

func TestScheduleAclSync(t *testing.T) {
	sched := &fakeScheduler{}
	rec := serve(newTestRouter(t, sched, &fakeRunner{}), http.MethodPost, "/api/jobs/acl/self")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"handle":"handle-self"}`, rec.Body.String())
	assert.Equal(t, []string{"self"}, sched.scheduled)
}

func TestScheduleAclSync_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid route",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidRoute, store.ErrInvalidRoute),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid route\n",
		},
		{
			name:       "store failure",
			err:        fmt.Errorf("schedule: %w", store.ErrCommitingTransaction),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &fakeScheduler{scheduleErr: tt.err}, &fakeRunner{})
			rec := serve(router, http.MethodPost, "/api/jobs/acl/self")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRunAclSync(t *testing.T) {
	runner := &fakeRunner{outcome: models.JobReschedule}
	rec := serve(newTestRouter(t, &fakeScheduler{}, runner), http.MethodPost, "/api/jobs/acl/self/run")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"route":"self","outcome":"RESCHEDULE"}`, rec.Body.String())
	assert.Equal(t, []string{"self"}, runner.routes)
}

func TestRunAclSync_InvalidRoute(t *testing.T) {
	runner := &fakeRunner{}
	rec := serve(newTestRouter(t, &fakeScheduler{}, runner), http.MethodPost, "/api/jobs/acl/..self/run")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, runner.routes)
}

func TestCancelJob(t *testing.T) {
	sched := &fakeScheduler{}
	rec := serve(newTestRouter(t, sched, &fakeRunner{}), http.MethodDelete, "/api/jobs/h-1")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"h-1"}, sched.cancelled)
}

func TestCancelJob_NotFound(t *testing.T) {
	sched := &fakeScheduler{cancelErr: fmt.Errorf("cancel h-1: %w: %w", service.ErrJobNotFound, store.ErrNotFound)}
	rec := serve(newTestRouter(t, sched, &fakeRunner{}), http.MethodDelete, "/api/jobs/h-1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "job not found\n", rec.Body.String())
}

func TestWrongMethodIsNotFound(t *testing.T) {
	router := newTestRouter(t, &fakeScheduler{}, &fakeRunner{})

	for _, tc := range []struct{ method, target string }{
		{http.MethodDelete, "/api/version/"},
		{http.MethodGet, "/api/jobs/acl/self"},
		{http.MethodPut, "/api/jobs/h-1"},
	} {
		rec := serve(router, tc.method, tc.target)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.target)
	}
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	router := newTestRouter(t, &fakeScheduler{}, &fakeRunner{})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "c0ffee")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "c0ffee", rec.Header().Get(traceIDHeader))

	rec = serve(router, http.MethodGet, "/api/version/")
	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithLogging_WritesAccessLog(t *testing.T) {
	var buf bytes.Buffer
	services := &service.Services{SyncJobScheduler: &fakeScheduler{}}
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	router := NewHandler(services, config.Server{}, log).Init()
	rec := serve(router, http.MethodDelete, "/api/jobs/h-7")

	require.Equal(t, http.StatusNoContent, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"method":"DELETE"`)
	assert.Contains(t, out, `"uri":"/api/jobs/h-7"`)
	assert.Contains(t, out, `"status":204`)
	assert.Contains(t, out, `"trace_id":"`+rec.Header().Get(traceIDHeader)+`"`)
}

func TestWithRateLimit(t *testing.T) {
	services := &service.Services{AppInfoService: fakeAppInfo{version: "v"}}
	router := NewHandler(services, config.Server{RateLimit: 0.001, RateBurst: 2}, logger.Nop()).Init()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/version/").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/version/").Code)

	rec := serve(router, http.MethodGet, "/api/version/")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate limit exceeded\n", rec.Body.String())

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.RemoteAddr = "198.51.100.7:4242"
	other := httptest.NewRecorder()
	router.ServeHTTP(other, req)
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := newRateLimiter(0, 0)
	for range 100 {
		require.True(t, rl.allow("192.0.2.1"))
	}
}

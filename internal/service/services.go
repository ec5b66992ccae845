package service

import (
	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
	"github.com/MKhiriev/go-proxy-keeper/internal/utils"
)

// Services groups the job-side services shared by proxyctl and proxykeeperd.
type Services struct {
	AppInfoService   AppInfoService
	SyncJobScheduler SyncJobScheduler
	JobRunners       *JobRunners
}

// NewServices wires the scheduler and the job runners to storages and the
// ACL source.
func NewServices(storages *store.Storages, source adapter.AclSource, handle *app.Handle, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService:   appInfo,
		SyncJobScheduler: NewAclSyncScheduler(storages.JobRequestRepository, utils.NewUUIDGenerator(), logger),
		JobRunners: NewJobRunners(
			NewAclSyncJob(source, storages.AclFileStorage, handle, logger),
		),
	}, nil
}

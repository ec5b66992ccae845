package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-proxy-keeper/internal/adapter"
	"github.com/MKhiriev/go-proxy-keeper/internal/app"
	"github.com/MKhiriev/go-proxy-keeper/internal/config"
	"github.com/MKhiriev/go-proxy-keeper/internal/logger"
	"github.com/MKhiriev/go-proxy-keeper/internal/service"
	"github.com/MKhiriev/go-proxy-keeper/internal/store"
)

type defaultDependencies struct{}

// NewDependencies returns the production wiring: a gRPC binder, the SQL job
// store and the HTTP rule list source.
func NewDependencies() Dependencies {
	return defaultDependencies{}
}

func (defaultDependencies) ServiceBinder(cfg config.ClientService, logger *logger.Logger) (adapter.ServiceBinder, error) {
	return adapter.NewGRPCServiceBinder(cfg, logger)
}

func (defaultDependencies) Services(
	ctx context.Context,
	cfg *config.ClientConfig,
	handle *app.Handle,
	version string,
	logger *logger.Logger,
) (*service.Services, func() error, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, handle.DataDir(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create storages: %w", err)
	}

	source, err := adapter.NewHTTPAclSource(cfg.ACL, logger)
	if err != nil {
		_ = storages.Close()
		return nil, nil, fmt.Errorf("create acl source: %w", err)
	}

	services, err := service.NewServices(storages, source, handle, config.App{DataDir: handle.DataDir(), Version: version}, logger)
	if err != nil {
		_ = storages.Close()
		return nil, nil, fmt.Errorf("create services: %w", err)
	}

	return services, storages.Close, nil
}

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the settings proxyctl needs from [App].
type ClientApp struct {
	// DataDir is the private data directory (ACL files, logs, job DB).
	DataDir string
}

// ClientService holds how proxyctl reaches the proxy service.
type ClientService struct {
	Address        string
	ConnectTimeout time.Duration
	CallTimeout    time.Duration
}

// ClientACL configures on-demand rule list downloads.
type ClientACL struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientDB contains the job database connection settings.
type ClientDB struct {
	// DSN is the SQLite path or PostgreSQL URL of the job database.
	DSN string
}

// ClientStorage groups storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the proxyctl view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Service ClientService
	ACL     ClientACL
	Storage ClientStorage
}

// GetClientConfig builds and validates the proxyctl config view.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DataDir: cfg.App.DataDir,
		},
		Service: ClientService{
			Address:        cfg.Service.Address,
			ConnectTimeout: cfg.Service.ConnectTimeout,
			CallTimeout:    cfg.Service.CallTimeout,
		},
		ACL: ClientACL{
			BaseURL:        cfg.ACL.BaseURL,
			RequestTimeout: cfg.ACL.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dbDSN(cfg.Storage.DB.DSN, cfg.App.DataDir)},
		},
	}

	return clientCfg, clientCfg.validate()
}

// DaemonConfig is the proxykeeperd view of [StructuredConfig].
type DaemonConfig struct {
	App     App
	ACL     ClientACL
	Storage ClientStorage
	Server  Server
	Workers Workers
}

// GetDaemonConfig builds and validates the proxykeeperd config view.
func GetDaemonConfig(flags *StructuredConfig) (*DaemonConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	daemonCfg := &DaemonConfig{
		App: cfg.App,
		ACL: ClientACL{
			BaseURL:        cfg.ACL.BaseURL,
			RequestTimeout: cfg.ACL.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: dbDSN(cfg.Storage.DB.DSN, cfg.App.DataDir)},
		},
		Server:  cfg.Server,
		Workers: cfg.Workers,
	}

	return daemonCfg, daemonCfg.validate()
}

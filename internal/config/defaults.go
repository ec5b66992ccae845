package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultACLBaseURL hosts the published rule lists.
	DefaultACLBaseURL = "https://raw.githubusercontent.com/shadowsocksr/shadowsocksr-android/nokcp/src/main/assets/acl"

	defaultServiceAddress = "127.0.0.1:9091"
	defaultDBFileName     = "jobs.db"
	defaultAppDirName     = "go-proxy-keeper"
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DataDir: defaultDataDir(),
		},
		Service: Service{
			Address:        defaultServiceAddress,
			ConnectTimeout: 10 * time.Second,
			CallTimeout:    5 * time.Second,
		},
		ACL: ACL{
			BaseURL:        DefaultACLBaseURL,
			RequestTimeout: 30 * time.Second,
		},
		Server: Server{
			RateLimit: 5,
			RateBurst: 10,
		},
		Workers: Workers{
			PollInterval:      time.Minute,
			ScheduleRoutes:    []string{"self"},
			MeteredInterfaces: []string{"wwan", "ppp", "rmnet"},
			PowerSupplyDir:    "/sys/class/power_supply",
		},
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, defaultAppDirName)
	}
	return filepath.Join(os.TempDir(), defaultAppDirName)
}

// dbDSN returns the configured DSN, or the SQLite file inside dataDir.
func dbDSN(dsn, dataDir string) string {
	if dsn != "" {
		return dsn
	}
	return filepath.Join(dataDir, defaultDBFileName)
}

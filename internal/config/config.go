// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by
// proxyctl and proxykeeperd. It is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the private data directory and the application version.
	App App `envPrefix:"APP_"`

	// Service holds how to reach the background proxy service.
	Service Service `envPrefix:"SERVICE_"`

	// ACL holds where rule lists are downloaded from.
	ACL ACL `envPrefix:"ACL_"`

	// Storage holds the job request database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the control API listener settings of the daemon.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds the job dispatcher settings of the daemon.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DataDir is the private data directory. ACL files are written here and
	// the default job database lives here.
	// Env: APP_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// Version is the semantic version string exposed by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Service describes the gRPC endpoint of the background proxy service.
type Service struct {
	// Address is a gRPC target, e.g. "127.0.0.1:9091" or
	// "unix:///run/proxy-keeper.sock".
	// Env: SERVICE_ADDRESS
	Address string `env:"ADDRESS"`

	// ConnectTimeout bounds how long a toggle waits for the binding to
	// become ready before giving up.
	// Env: SERVICE_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// CallTimeout bounds each GetState/Start/Stop call.
	// Env: SERVICE_CALL_TIMEOUT
	CallTimeout time.Duration `env:"CALL_TIMEOUT"`
}

// ACL configures the rule list source.
type ACL struct {
	// BaseURL is the URL prefix; "<route>.acl" is appended to it.
	// Env: ACL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds one download.
	// Env: ACL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the job request database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the job request database.
type DB struct {
	// DSN is a SQLite file path, or a "postgres://" URL to use PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the control API settings.
type Server struct {
	// HTTPAddress is the "host:port" the control API listens on. The API is
	// disabled when empty.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP.
	// Env: SERVER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the per-IP limiter.
	// Env: SERVER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Workers holds configuration for the job dispatcher.
type Workers struct {
	// PollInterval is how often due job requests are looked up.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// ScheduleRoutes are scheduled for ACL sync when the daemon starts.
	// Env: WORKERS_SCHEDULE_ROUTES (comma separated)
	ScheduleRoutes []string `env:"SCHEDULE_ROUTES" envSeparator:","`

	// MeteredInterfaces are interface name prefixes considered metered.
	// Env: WORKERS_METERED_INTERFACES (comma separated)
	MeteredInterfaces []string `env:"METERED_INTERFACES" envSeparator:","`

	// ForceUnmetered reports the network as unmetered regardless of the
	// interfaces that are up.
	// Env: WORKERS_FORCE_UNMETERED
	ForceUnmetered bool `env:"FORCE_UNMETERED"`

	// ForceCharging reports the device as charging regardless of sysfs.
	// Env: WORKERS_FORCE_CHARGING
	ForceCharging bool `env:"FORCE_CHARGING"`

	// PowerSupplyDir is the sysfs power supply class directory.
	// Env: WORKERS_POWER_SUPPLY_DIR
	PowerSupplyDir string `env:"POWER_SUPPLY_DIR"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags bound by [RegisterFlags]
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

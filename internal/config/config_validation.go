// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the invariants shared by every binary. Binary-specific
// checks live on [ClientConfig] and [DaemonConfig].
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.DataDir) == "" {
		return ErrInvalidAppConfigs
	}

	u, err := url.Parse(cfg.ACL.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" || cfg.ACL.RequestTimeout <= 0 {
		return ErrInvalidACLConfigs
	}

	if isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Service.Address == "" || cfg.Service.ConnectTimeout <= 0 || cfg.Service.CallTimeout <= 0 {
		return ErrInvalidServiceConfigs
	}

	return nil
}

func (cfg *DaemonConfig) validate() error {
	if cfg.Server.HTTPAddress != "" && (cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0) {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.PollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Job requests have to survive restarts, so an in-memory SQLite database is
// rejected.
func isInMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

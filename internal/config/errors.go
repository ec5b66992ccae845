package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing data directory.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServiceConfigs indicates a missing service address or a
	// non-positive timeout.
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
	// ErrInvalidACLConfigs indicates an empty or unparsable base URL.
	ErrInvalidACLConfigs = errors.New("invalid acl configuration")
	// ErrInvalidStorageConfigs indicates an unsupported in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a non-positive rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid dispatcher settings
	// (for example, zero poll interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

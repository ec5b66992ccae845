// Package config provides configuration loading, merging, and validation
// facilities for proxyctl and proxykeeperd.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for proxyctl and
// [GetDaemonConfig] for the maintenance daemon. Flags are bound with
// [RegisterFlags] on the cobra command's flag set.
package config

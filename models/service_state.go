// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// ServiceState is the lifecycle state reported by the background proxy
// service. The numeric values are the ones carried on the wire.
type ServiceState int32

const (
	// StateStarting is reported while the service is bringing the proxy up.
	StateStarting ServiceState = 1

	// StateConnected is reported when the proxy is up and routing traffic.
	StateConnected ServiceState = 2

	// StateStopping is reported while the service is tearing the proxy down.
	StateStopping ServiceState = 3

	// StateStopped is reported when the proxy is not running.
	StateStopped ServiceState = 4
)

// String returns the upper-case state name, or "UNKNOWN(n)" for values the
// service is not expected to report.
func (s ServiceState) String() string {
	switch s {
	case StateStarting:
		return "STARTING"
	case StateConnected:
		return "CONNECTED"
	case StateStopping:
		return "STOPPING"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
}

// Actionable reports whether a toggle can act on the state. Only STOPPED and
// CONNECTED are; transitional and unknown states are left alone.
func (s ServiceState) Actionable() bool {
	return s == StateStopped || s == StateConnected
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// JobOutcome is the result a job reports back to the dispatcher.
type JobOutcome int

const (
	// JobSuccess means the job finished and the request can be dropped.
	JobSuccess JobOutcome = iota

	// JobReschedule means the job hit a transient failure and should be
	// attempted again under the same constraints.
	JobReschedule

	// JobFailure is terminal for the invocation. It is not retried.
	JobFailure
)

// String returns the outcome name used in logs and API responses.
func (o JobOutcome) String() string {
	switch o {
	case JobSuccess:
		return "SUCCESS"
	case JobReschedule:
		return "RESCHEDULE"
	case JobFailure:
		return "FAILURE"
	default:
		return fmt.Sprintf("JobOutcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler so outcomes are rendered by
// name in JSON.
func (o JobOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// NetworkType is the network a job requires before it may run.
type NetworkType int

const (
	// NetworkAny places no requirement on connectivity.
	NetworkAny NetworkType = iota

	// NetworkConnected requires any working network.
	NetworkConnected

	// NetworkUnmetered requires a network that is not billed per byte.
	NetworkUnmetered
)

// String returns the requirement name as stored in the job request table.
func (n NetworkType) String() string {
	switch n {
	case NetworkAny:
		return "ANY"
	case NetworkConnected:
		return "CONNECTED"
	case NetworkUnmetered:
		return "UNMETERED"
	default:
		return fmt.Sprintf("NetworkType(%d)", int(n))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (n NetworkType) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// NetworkState is what the device currently observes.
type NetworkState int

const (
	NetworkOffline NetworkState = iota
	NetworkMetered
	NetworkUnmeteredState
)

func (s NetworkState) String() string {
	switch s {
	case NetworkMetered:
		return "METERED"
	case NetworkUnmeteredState:
		return "UNMETERED"
	default:
		return "OFFLINE"
	}
}

// SatisfiedBy reports whether the observed network state meets the
// requirement.
func (n NetworkType) SatisfiedBy(state NetworkState) bool {
	switch n {
	case NetworkAny:
		return true
	case NetworkConnected:
		return state != NetworkOffline
	case NetworkUnmetered:
		return state == NetworkUnmeteredState
	default:
		return false
	}
}

// SyncJobRequest is a pending request for the dispatcher to run a job.
// Requests are keyed by Tag; the store keeps at most one request per tag.
type SyncJobRequest struct {
	// ID is the opaque handle returned to callers of Schedule.
	ID string `json:"id"`

	// Tag is the uniqueness key, "<kind>:<route>".
	Tag string `json:"tag"`

	Kind  string `json:"kind"`
	Route string `json:"route"`

	// EarliestAt and LatestAt bound the execution window.
	EarliestAt time.Time `json:"earliest_at"`
	LatestAt   time.Time `json:"latest_at"`

	NetworkType          NetworkType `json:"network_type"`
	RequiresCharging     bool        `json:"requires_charging"`
	RequirementsEnforced bool        `json:"requirements_enforced"`

	// UpdateCurrent makes a new request replace a pending one with the
	// same tag instead of leaving the existing one in place.
	UpdateCurrent bool `json:"update_current"`

	// Attempts counts rescheduled runs.
	Attempts int `json:"attempts"`

	// NextRunAt is set after a reschedule; zero means "as soon as the
	// window opens".
	NextRunAt time.Time `json:"next_run_at,omitzero"`

	CreatedAt time.Time `json:"created_at"`
}

// JobTag builds the uniqueness key for a job kind and route.
func JobTag(kind, route string) string {
	return kind + ":" + route
}

// ParseJobTag splits a tag built by JobTag. ok is false when the tag has no
// separator or an empty kind.
func ParseJobTag(tag string) (kind, route string, ok bool) {
	kind, route, ok = strings.Cut(tag, ":")
	if !ok || kind == "" {
		return "", "", false
	}
	return kind, route, true
}

// RunnableAt returns the earliest moment the request may run.
func (r SyncJobRequest) RunnableAt() time.Time {
	if r.NextRunAt.After(r.EarliestAt) {
		return r.NextRunAt
	}
	return r.EarliestAt
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds process-wide pieces shared by both binaries: the
// application [Handle] (private data directory and tracking sink) and the
// message strings written by the control API.
package app

const (
	// MsgInvalidRoute is returned when a route is empty or would escape the
	// data directory.
	MsgInvalidRoute = "invalid route"

	// MsgJobNotFound is returned when a handle does not match a pending
	// job request.
	MsgJobNotFound = "job not found"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRateLimitExceeded is returned when a caller exceeds the per-IP
	// request rate of the control API.
	MsgRateLimitExceeded = "rate limit exceeded"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements proxyctl, the user-facing command line.
//
// It wires the quick toggle to the proxy service binding and exposes the
// ACL sync job: scheduling it, running it on demand and cancelling it.
package client
